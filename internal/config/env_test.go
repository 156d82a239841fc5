package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "localhost:9090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "tasks.db")
	t.Setenv("STORAGE_FILES_UPLOAD_DIR", "/var/uploads")
	t.Setenv("STORAGE_FILES_MAX_UPLOAD_SIZE", "1048576")
	t.Setenv("APP_SESSION_SECRET", "s3cret")
	t.Setenv("APP_SESSION_LIFETIME", "30m")
	t.Setenv("CLASSIFIER_URL", "http://classifier:8000/classify")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "tasks.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/uploads", cfg.Storage.Files.UploadDir)
	assert.Equal(t, int64(1048576), cfg.Storage.Files.MaxUploadSize)
	assert.Equal(t, "s3cret", cfg.App.SessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.App.SessionLifetime)
	assert.Equal(t, "http://classifier:8000/classify", cfg.Classifier.URL)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_SESSION_LIFETIME", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestApplyDefaults_FillsUnsetFields(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultUploadDir, cfg.Storage.Files.UploadDir)
	assert.Equal(t, int64(DefaultMaxUploadSize), cfg.Storage.Files.MaxUploadSize)
	assert.Equal(t, DefaultSessionLifetime, cfg.App.SessionLifetime)
	assert.Equal(t, DefaultSweepSchedule, cfg.Workers.SessionSweepSchedule)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = "0.0.0.0:3000"
	cfg.Storage.Files.MaxUploadSize = 1024

	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, int64(1024), cfg.Storage.Files.MaxUploadSize)
}

func TestValidate_MissingSessionSecret(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_Valid(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.SessionSecret = "s3cret"
	cfg.applyDefaults()

	assert.NoError(t, cfg.validate())
}
