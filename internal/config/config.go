package config

import (
	"time"
)

// Default configuration values applied by applyDefaults when a field is not
// provided by any source.
const (
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultDSN               = "app.db"
	DefaultUploadDir         = "uploads"
	DefaultMaxUploadSize     = 5 << 20 // 5 MB
	DefaultSessionLifetime   = 1800 * time.Second
	DefaultSessionsDir       = "sessions"
	DefaultSweepSchedule     = "@every 10m"
	DefaultClassifierTimeout = 15 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-task-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session secret and
	// session lifetime.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the upload file store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Classifier holds configuration for the external zero-shot
	// classification service. An empty URL disables classification.
	Classifier Classifier `envPrefix:"CLASSIFIER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control session
// security and lifecycle.
type App struct {
	// SessionSecret is the key used to authenticate session cookies.
	// Must be kept confidential.
	// Env: APP_SESSION_SECRET
	SessionSecret string `env:"SESSION_SECRET"`

	// SessionLifetime is the inactivity window after which a session is
	// invalidated. Defaults to 30 minutes.
	// Env: APP_SESSION_LIFETIME
	SessionLifetime time.Duration `env:"SESSION_LIFETIME"`

	// SessionsDir is the directory where server-side session files are
	// stored.
	// Env: APP_SESSIONS_DIR
	SessionsDir string `env:"SESSIONS_DIR"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for task attachments.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database location. A "postgres://" prefix selects the
	// PostgreSQL backend; any other value is treated as a SQLite file path
	// (e.g. "app.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the attachment store.
type Files struct {
	// UploadDir is the directory where task attachments are written and
	// served from. Created lazily on first upload.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// MaxUploadSize is the maximum accepted upload size in bytes.
	// Defaults to 5 MB.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Classifier holds connection settings for the external zero-shot
// classification endpoint.
type Classifier struct {
	// URL is the inference endpoint. Empty disables classification; tasks
	// created without an explicit category then receive the sentinel
	// "Undetermined" label.
	// Env: CLASSIFIER_URL
	URL string `env:"URL"`

	// Token is an optional bearer token sent with every inference request.
	// Env: CLASSIFIER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout bounds a single inference call.
	// Env: CLASSIFIER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepSchedule is the cron schedule on which expired
	// server-side session files are removed (robfig/cron syntax,
	// e.g. "@every 10m").
	// Env: WORKERS_SESSION_SWEEP_SCHEDULE
	SessionSweepSchedule string `env:"SESSION_SWEEP_SCHEDULE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
