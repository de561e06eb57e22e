package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.S3BaseEndpoint)
	assert.Equal(t, "images", cfg.S3Bucket)
	assert.Equal(t, 12*time.Hour, cfg.TokenValidity)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env:env@db:5432/env")
	t.Setenv("S3_BUCKET", "env-bucket")
	t.Setenv("TOKEN_VALIDITY", "30m")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://env:env@db:5432/env", cfg.DatabaseDSN)
	assert.Equal(t, "env-bucket", cfg.S3Bucket)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidity)
}

func TestParseEnv_BadDurationIgnored(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "whenever")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 12*time.Hour, cfg.TokenValidity)
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"app", "-d", "postgres://flag:flag@db:5432/flag", "-b", "flag-bucket"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "postgres://flag:flag@db:5432/flag", cfg.DatabaseDSN)
	assert.Equal(t, "flag-bucket", cfg.S3Bucket)
}

func TestParseJson_OverlaysFile(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	f, err := os.CreateTemp(t.TempDir(), "conf-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{
		"database_dsn": "postgres://json:json@db:5432/json",
		"s3_bucket": "json-bucket",
		"token_validity": "45m"
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	os.Args = []string{"app", "-c", f.Name()}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "postgres://json:json@db:5432/json", cfg.DatabaseDSN)
	assert.Equal(t, "json-bucket", cfg.S3Bucket)
	assert.Equal(t, 45*time.Minute, cfg.TokenValidity)
	// untouched fields keep their defaults
	assert.Equal(t, "http://127.0.0.1:9000", cfg.S3BaseEndpoint)
}
