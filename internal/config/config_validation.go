package config

// applyDefaults fills in documented defaults for every field left unset by
// all configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.Files.UploadDir == "" {
		cfg.Storage.Files.UploadDir = DefaultUploadDir
	}
	if cfg.Storage.Files.MaxUploadSize == 0 {
		cfg.Storage.Files.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.App.SessionLifetime == 0 {
		cfg.App.SessionLifetime = DefaultSessionLifetime
	}
	if cfg.App.SessionsDir == "" {
		cfg.App.SessionsDir = DefaultSessionsDir
	}
	if cfg.Classifier.RequestTimeout == 0 {
		cfg.Classifier.RequestTimeout = DefaultClassifierTimeout
	}
	if cfg.Workers.SessionSweepSchedule == "" {
		cfg.Workers.SessionSweepSchedule = DefaultSweepSchedule
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSecret == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.Files.MaxUploadSize < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}
