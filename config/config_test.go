package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CV_STORAGE", "")
	t.Setenv("DEFAULT_TOP_N", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gcs", cfg.CVStorage)
	assert.Equal(t, 10, cfg.DefaultTopN)
	assert.Equal(t, 2.0, cfg.SearchRatePerSecond)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PROJECT_ID", "jobfit-dev")
	t.Setenv("CV_STORAGE", "S3")
	t.Setenv("DEFAULT_TOP_N", "25")
	t.Setenv("DEBUG", "true")
	t.Setenv("SEARCH_RATE_PER_SECOND", "0.5")
	t.Setenv("MAX_JOB_RESULTS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "jobfit-dev", cfg.ProjectID)
	assert.Equal(t, "s3", cfg.CVStorage)
	assert.Equal(t, 25, cfg.DefaultTopN)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 0.5, cfg.SearchRatePerSecond)
	assert.Equal(t, 50, cfg.MaxJobResults)
}

func validConfig() *Config {
	return &Config{
		ProjectID:           "jobfit-dev",
		CVStorage:           "gcs",
		DefaultTopN:         10,
		SearchRatePerSecond: 1,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing project", func(c *Config) { c.ProjectID = "" }, "PROJECT_ID"},
		{"unknown storage", func(c *Config) { c.CVStorage = "ftp" }, "CV_STORAGE"},
		{"s3 without keys", func(c *Config) { c.CVStorage = "s3"; c.S3Bucket = "cvs" }, "S3_ACCESS_KEY"},
		{"s3 without bucket", func(c *Config) {
			c.CVStorage = "s3"
			c.S3AccessKey = "key"
			c.S3SecretKey = "secret"
		}, "S3_BUCKET"},
		{"bad top n", func(c *Config) { c.DefaultTopN = 0 }, "DEFAULT_TOP_N"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantErr, cfgErr.Field)
		})
	}
}

func TestLiveSearchEnabled(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.LiveSearchEnabled())

	cfg.PSEAPIKey = "key"
	cfg.PSEEngineID = "engine"
	assert.True(t, cfg.LiveSearchEnabled())
}
