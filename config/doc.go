// Package config loads application configuration from YAML files with
// environment variable overrides, backed by viper.
//
// Configuration is resolved in order: defaults, config file (config.yaml
// in the working directory, or an explicit path), then PAGER_* environment
// variables (PAGER_SERVER_PORT, PAGER_LOGGER_LEVEL, ...).
//
// # Usage
//
//	cfg, err := config.GetConfig()
//	if err != nil {
//	    // handle
//	}
//	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
//
// The package also exposes a wire ProviderSet supplying *Config and its
// sub-configurations to injected components.
package config
