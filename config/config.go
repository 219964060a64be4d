package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Scoring      Scoring
	Session      Session
	Audio        Audio
	Upstream     Upstream
	GeminiApiKey string
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Scoring holds the point values and the streak threshold.
type Scoring struct {
	CompletionPoints int
	StreakBonus      int
	StreakThreshold  int
}

type Session struct {
	TTL time.Duration
}

type Audio struct {
	// LocalDir is the root directory holding downloaded per-unit audio files.
	LocalDir string
	// RemoteBaseURL is where audio is fetched from when no local copy exists.
	RemoteBaseURL string
}

// Upstream configures the optional remote content backend. When BaseURL is
// empty the session engine reads content from the local database instead.
type Upstream struct {
	BaseURL string
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("COMPLETION_POINTS", 10)
	viper.SetDefault("STREAK_BONUS", 5)
	viper.SetDefault("STREAK_THRESHOLD", 10)
	viper.SetDefault("SESSION_TTL_MINUTES", 60)
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	viper.SetDefault("AUDIO_LOCAL_DIR", "./audio")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Scoring.CompletionPoints = viper.GetInt("COMPLETION_POINTS")
	config.Scoring.StreakBonus = viper.GetInt("STREAK_BONUS")
	config.Scoring.StreakThreshold = viper.GetInt("STREAK_THRESHOLD")

	config.Session.TTL = time.Duration(viper.GetInt("SESSION_TTL_MINUTES")) * time.Minute

	config.Audio.LocalDir = viper.GetString("AUDIO_LOCAL_DIR")
	config.Audio.RemoteBaseURL = viper.GetString("AUDIO_REMOTE_BASE_URL")

	config.Upstream.BaseURL = viper.GetString("UPSTREAM_BASE_URL")
	config.Upstream.Timeout = time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
