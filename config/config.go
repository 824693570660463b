package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	config *Config
	once   sync.Once
	v      *viper.Viper
)

// Config represents the configuration implementation.
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Logger  *Logger
}

func init() {
	v = viper.New()
}

// Init initializes and loads the configuration.
func Init() (cfg *Config, err error) {
	once.Do(func() {
		config, err = LoadConfig("")
	})
	return config, err
}

// GetConfig returns the configuration.
// It does not handle errors internally; instead, it returns the error for the caller to handle.
func GetConfig() (*Config, error) {
	if config == nil {
		var err error
		config, err = Init()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	}
	return config, nil
}

// LoadConfig loads configuration from the given file path, falling back
// to defaults and environment variables (PAGER_* overrides).
func LoadConfig(path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("pager")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	return &Config{
		AppName: v.GetString("app_name"),
		RunMode: v.GetString("run_mode"),
		Host:    v.GetString("server.host"),
		Port:    v.GetInt("server.port"),
		Logger:  getLoggerConfig(v),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "pager")
	v.SetDefault("run_mode", "release")
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stdout")
}
