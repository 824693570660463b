package config

import "github.com/google/wire"

// ProviderSet is the wire provider set for the config package.
// It provides the main *Config and extracts sub-configurations for
// other modules to use.
//
// Usage:
//
//	wire.Build(
//	    config.ProviderSet,
//	    // ... other providers
//	)
var ProviderSet = wire.NewSet(
	GetConfig,
	ProvideLoggerConfig,
)

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *Logger {
	if cfg == nil {
		return nil
	}
	return cfg.Logger
}
