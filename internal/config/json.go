package config

import (
	"encoding/json"
	"os"
	"time"

	"visualnotes/internal/flagx"
	"visualnotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the token lifetime either as a string
// like "12h" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3Region       string         `json:"s3_region"`
	S3Bucket       string         `json:"s3_bucket"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	TokenSecret    string         `json:"token_secret"`
	TokenValidity  timex.Duration `json:"token_validity"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c or -config flag; if neither is set, nothing is loaded.
// Only non-zero JSON fields override the current values.
//
// Panics on read or unmarshal errors (caller should recover if desired).
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
	if jc.TokenSecret != "" {
		cfg.TokenSecret = jc.TokenSecret
	}
	if jc.TokenValidity.Duration != 0 {
		cfg.TokenValidity = time.Duration(jc.TokenValidity.Duration)
	}
}
