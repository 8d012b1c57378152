package config

import (
	"encoding/json"
	"os"

	"github.com/eartalk/eartalk-cli/internal/flagx"
	"github.com/eartalk/eartalk-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// rely on timex.Duration so the file can specify them either as strings
// like "30s" or as integer nanoseconds.
type JsonConfig struct {
	BaseURL           string         `json:"base_url"`
	HTTPTimeout       timex.Duration `json:"http_timeout"`
	ClientID          string         `json:"client_id"`
	ClientSecret      string         `json:"client_secret"`
	DataDir           string         `json:"data_dir"`
	RecordCommand     string         `json:"record_command"`
	PlayCommand       string         `json:"play_command"`
	SpeakCommand      string         `json:"speak_command"`
	MaxRecordDuration timex.Duration `json:"max_record_duration"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flags mean no JSON is loaded. Only fields
// present with non-zero values overlay the current config. Panics on read
// or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.ClientSecret != "" {
		cfg.ClientSecret = jc.ClientSecret
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RecordCommand != "" {
		cfg.RecordCommand = jc.RecordCommand
	}
	if jc.PlayCommand != "" {
		cfg.PlayCommand = jc.PlayCommand
	}
	if jc.SpeakCommand != "" {
		cfg.SpeakCommand = jc.SpeakCommand
	}
	if jc.MaxRecordDuration.Duration != 0 {
		cfg.MaxRecordDuration = jc.MaxRecordDuration.Duration
	}
}
