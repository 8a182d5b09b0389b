package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(ConfigName)
	viper.SetConfigType(ConfigFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. PRAXIS_DATABASE_HOST overrides database.host
	viper.SetEnvPrefix("PRAXIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read the config file (optional in Docker environments)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("PRAXIS_DATABASE_HOST") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("authentication.session_ttl_minutes", 60)
	viper.SetDefault("authentication.remember_ttl_days", 30)
	viper.SetDefault("authentication.paseto.mode", "local")
	viper.SetDefault("authentication.paseto.issuer", "praxis")
	viper.SetDefault("authentication.paseto.audience", "praxis-api")
	viper.SetDefault("authorization.casbin_model_path", "casbin_model.conf")
	viper.SetDefault("password.min_length", 8)
	viper.SetDefault("storage.backend", "local")
	viper.SetDefault("storage.local.root", "uploads")
	viper.SetDefault("logging.level", "info")
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}
