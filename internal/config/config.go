package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	DataFile    string
	LogLevel    string
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		DataFile:    v.GetString("FLEET_DATA_FILE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.DataFile == "" {
		cfg.DataFile = "fleet_data.txt"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
