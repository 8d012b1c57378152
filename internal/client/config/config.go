package config

import "time"

// Config holds runtime settings for the EarTalk CLI.
//
// Fields:
//   - BaseURL: scheme://host:port of the backend, no trailing slash.
//   - HTTPTimeout: per-request timeout for API calls.
//   - ClientID/ClientSecret: OAuth2 client credentials sent with the
//     password-grant login form. Empty by default; the backend accepts
//     empty values for the first-party client.
//   - DataDir: directory for captured recordings and the session database.
//     Empty means the current working directory.
//   - RecordCommand/PlayCommand/SpeakCommand: external binaries used for
//     audio capture, playback, and local speech synthesis.
//   - MaxRecordDuration: cap on a single take; 0 disables the cap.
type Config struct {
	BaseURL           string
	HTTPTimeout       time.Duration
	ClientID          string
	ClientSecret      string
	DataDir           string
	RecordCommand     string
	PlayCommand       string
	SpeakCommand      string
	MaxRecordDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://eartalk.site:17004"
	c.HTTPTimeout = 30 * time.Second
	c.RecordCommand = "arecord"
	c.PlayCommand = "ffplay"
	c.SpeakCommand = "espeak"
	c.MaxRecordDuration = 5 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
