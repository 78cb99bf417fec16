// Package config loads server settings from a config file.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort  string `mapstructure:"server_port"`
	BoardPath   string `mapstructure:"board_path"`
	ArchivePath string `mapstructure:"archive_path"`
	LogLevel    string `mapstructure:"log_level"`
}

func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)

	v.SetDefault("server_port", "8080")
	v.SetDefault("archive_path", "results.db")
	v.SetDefault("log_level", "info")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
