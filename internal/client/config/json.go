package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dpetrovs/ember/internal/flagx"
	"github.com/dpetrovs/ember/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config.
type JsonConfig struct {
	ServerBaseURL    string         `json:"server_base_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	CredentialDBPath string         `json:"credential_db_path"`
	FeedPageSize     int            `json:"feed_page_size"`
	SwipesPerSecond  float64        `json:"swipes_per_second"`
}

// parseJson overlays Config with values loaded from a JSON file selected
// via the -c/-config flags. Missing file path means no JSON is loaded.
// Fields absent from the file keep their current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		ServerBaseURL:    cfg.ServerBaseURL,
		RequestTimeout:   timex.Duration{Duration: cfg.RequestTimeout},
		CredentialDBPath: cfg.CredentialDBPath,
		FeedPageSize:     cfg.FeedPageSize,
		SwipesPerSecond:  cfg.SwipesPerSecond,
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.CredentialDBPath = jc.CredentialDBPath
	cfg.FeedPageSize = jc.FeedPageSize
	cfg.SwipesPerSecond = jc.SwipesPerSecond
}
