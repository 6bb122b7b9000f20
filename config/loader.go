package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := ParseAppConfig(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// ParseAppConfig decodes and validates a raw configuration document.
func ParseAppConfig(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	// feeds are optional; if present validate each
	for _, f := range cfg.Feeds {
		if err := v.Struct(f); err != nil {
			return AppConfig{}, err
		}
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16282
	}
	return cfg, nil
}

// SelectFeed chooses a feed by name; fallback to the first configured feed.
func SelectFeed(name string) (Feed, bool) {
	if name != "" {
		for _, f := range Config.Feeds {
			if f.Name == name {
				return f, true
			}
		}
		return Feed{}, false
	}
	if len(Config.Feeds) > 0 {
		return Config.Feeds[0], true
	}
	return Feed{}, false
}
