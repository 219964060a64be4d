package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fundalabs/funda/internal/repository"
)

// Source tells the caller where a clip lives.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Location is a resolved audio clip.
type Location struct {
	Source Source `json:"source"`
	// Path is the filesystem path when Source is local.
	Path string `json:"path,omitempty"`
	// URL is the fetch URL when Source is remote.
	URL string `json:"url,omitempty"`
}

// Resolver maps audio filenames to a local downloaded file or a remote URL.
// The per-unit downloaded flag is advisory only: even when set, a missing
// local file falls back to the remote URL.
type Resolver struct {
	localDir      string
	remoteBaseURL string
	resources     repository.ResourceRepository
}

func NewResolver(localDir, remoteBaseURL string, resources repository.ResourceRepository) *Resolver {
	return &Resolver{
		localDir:      localDir,
		remoteBaseURL: strings.TrimRight(remoteBaseURL, "/"),
		resources:     resources,
	}
}

// Resolve locates the clip for a filename in the context of a unit and
// language. filename must be a bare name; anything path-like resolves remote
// only, never into the local tree.
func (r *Resolver) Resolve(unitID uint, language, filename string) (Location, error) {
	if filename == "" {
		return Location{}, fmt.Errorf("empty audio filename")
	}
	if filepath.Base(filename) != filename {
		return Location{Source: SourceRemote, URL: r.RemoteURL(filepath.Base(filename))}, nil
	}

	downloaded := false
	if r.resources != nil {
		var err error
		downloaded, err = r.resources.Downloaded(unitID, language)
		if err != nil {
			// Flag lookup failure degrades to the remote path.
			downloaded = false
		}
	}

	if downloaded {
		path := filepath.Join(r.localDir, language, filename)
		if _, err := os.Stat(path); err == nil {
			return Location{Source: SourceLocal, Path: path}, nil
		}
	}

	return Location{Source: SourceRemote, URL: r.RemoteURL(filename)}, nil
}

// RemoteURL builds the remote fetch URL for a filename. Empty when no remote
// base is configured.
func (r *Resolver) RemoteURL(filename string) string {
	if r.remoteBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/word/audio/get/%s", r.remoteBaseURL, filename)
}
