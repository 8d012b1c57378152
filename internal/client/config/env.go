package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually present in the environment overlay the current values.
type envConfig struct {
	BaseURL           *string        `env:"BASE_URL"`
	HTTPTimeout       *time.Duration `env:"HTTP_TIMEOUT"`
	ClientID          *string        `env:"CLIENT_ID"`
	ClientSecret      *string        `env:"CLIENT_SECRET"`
	DataDir           *string        `env:"DATA_DIR"`
	RecordCommand     *string        `env:"RECORD_COMMAND"`
	PlayCommand       *string        `env:"PLAY_COMMAND"`
	SpeakCommand      *string        `env:"SPEAK_COMMAND"`
	MaxRecordDuration *time.Duration `env:"MAX_RECORD_DURATION"`
}

// parseEnv overlays Config with EARTALK_-prefixed environment variables.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Prefix: "EARTALK_"}); err != nil {
		panic(err)
	}

	if ec.BaseURL != nil {
		cfg.BaseURL = *ec.BaseURL
	}
	if ec.HTTPTimeout != nil {
		cfg.HTTPTimeout = *ec.HTTPTimeout
	}
	if ec.ClientID != nil {
		cfg.ClientID = *ec.ClientID
	}
	if ec.ClientSecret != nil {
		cfg.ClientSecret = *ec.ClientSecret
	}
	if ec.DataDir != nil {
		cfg.DataDir = *ec.DataDir
	}
	if ec.RecordCommand != nil {
		cfg.RecordCommand = *ec.RecordCommand
	}
	if ec.PlayCommand != nil {
		cfg.PlayCommand = *ec.PlayCommand
	}
	if ec.SpeakCommand != nil {
		cfg.SpeakCommand = *ec.SpeakCommand
	}
	if ec.MaxRecordDuration != nil {
		cfg.MaxRecordDuration = *ec.MaxRecordDuration
	}
}
