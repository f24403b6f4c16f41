package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type LogLevel string

const (
	LevelInfo    LogLevel = "INFO"
	LevelDebug   LogLevel = "DEBUG"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
)

type Config struct {
	Port     int      `mapstructure:"port"`
	MongoURL string   `mapstructure:"mongodb_url"`
	Database string   `mapstructure:"mongodb_database"`
	LogLevel LogLevel `mapstructure:"log_level"`
}

// Load reads the process configuration from the environment. MONGODB_URL is
// the one required variable; everything else has a default.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("mongodb_database", "test_db")
	v.SetDefault("log_level", string(LevelInfo))

	if err := bindEnvironmentVariables(v); err != nil {
		return nil, err
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func bindEnvironmentVariables(v *viper.Viper) error {
	bindings := map[string]string{
		"port":             "PORT",
		"mongodb_url":      "MONGODB_URL",
		"mongodb_database": "MONGODB_DATABASE",
		"log_level":        "LOG_LEVEL",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

func (config *Config) validate() error {
	var errs []error

	if config.MongoURL == "" {
		errs = append(errs, fmt.Errorf("missing variable: MONGODB_URL"))
	}
	if config.Port <= 0 || config.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid variable: PORT"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config *Config) Addr() string {
	return fmt.Sprintf(":%d", config.Port)
}
