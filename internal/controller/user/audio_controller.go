package user

import (
	"net/http"
	"strconv"

	"github.com/fundalabs/funda/internal/audio"
	"github.com/fundalabs/funda/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AudioController struct {
	resolver *audio.Resolver
}

func NewAudioController(resolver *audio.Resolver) *AudioController {
	return &AudioController{resolver: resolver}
}

// GetAudio godoc
// @Summary Fetch a word's audio clip
// @Description Serves the locally downloaded file when the unit's resources flag is set and the file exists; otherwise redirects to the remote audio URL. The flag is advisory, never a guarantee.
// @Tags Audio
// @Produce octet-stream
// @Param filename path string true "Audio filename"
// @Param unit_id query int false "Unit ID for the downloaded-resources check"
// @Param language query string false "Language code for the downloaded-resources check"
// @Success 200 {file} binary
// @Success 302 {string} string "Redirect to remote audio"
// @Failure 404 {object} dto.ErrorResponse "Clip unavailable"
// @Router /word/audio/get/{filename} [get]
func (c *AudioController) GetAudio(ctx *gin.Context) {
	filename := ctx.Param("filename")
	language := ctx.Query("language")

	var unitID uint
	if raw := ctx.Query("unit_id"); raw != "" {
		if val, err := strconv.ParseUint(raw, 10, 32); err == nil {
			unitID = uint(val)
		}
	}

	loc, err := c.resolver.Resolve(unitID, language, filename)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		return
	}

	switch loc.Source {
	case audio.SourceLocal:
		ctx.File(loc.Path)
	case audio.SourceRemote:
		if loc.URL == "" {
			log.Warn().Str("filename", filename).Msg("GetAudio: no remote base URL configured")
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "audio clip unavailable"})
			return
		}
		ctx.Redirect(http.StatusFound, loc.URL)
	}
}
