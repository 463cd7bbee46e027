// Package config loads settings shared by the sinaw binaries.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sinaw-id/sinaw/internal/mentor"
	"github.com/sinaw-id/sinaw/internal/model"
	"github.com/spf13/viper"
)

const (
	defaultBindHost = "127.0.0.1"
	defaultAPIPort  = 8080
)

// Config is the merged result of defaults, config file, and environment.
type Config struct {
	MentorAPIKey       string        `mapstructure:"mentor-api-key"`
	MentorModel        string        `mapstructure:"mentor-model"`
	MentorEndpoint     string        `mapstructure:"mentor-endpoint"`
	MentorTemperature  float64       `mapstructure:"mentor-temperature"`
	MentorTimeout      time.Duration `mapstructure:"mentor-timeout"`
	MentorRate         float64       `mapstructure:"mentor-rate"`
	MentorBurst        int           `mapstructure:"mentor-burst"`
	DemoDelay          time.Duration `mapstructure:"demo-delay"`
	SplashDuration     time.Duration `mapstructure:"splash-duration"`
	CatalogPath        string        `mapstructure:"catalog-path"`
	ReverseScrollWheel bool          `mapstructure:"reverse-scroll-wheel"`
	APIPort            int           `mapstructure:"api-port"`
	APIAddr            string        `mapstructure:"api-addr"`
	ConfigPath         string        `mapstructure:"-"` // not from config file
}

// Load reads configuration. An empty configPath means
// $HOME/.config/sinaw/config.yml; a missing file is not an error.
func Load(configPath string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SINAW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("mentor-api-key", "")
	v.SetDefault("mentor-model", model.DefaultMentorModel)
	v.SetDefault("mentor-endpoint", model.DefaultMentorEndpoint)
	v.SetDefault("mentor-temperature", model.DefaultMentorTemperature)
	v.SetDefault("mentor-timeout", model.DefaultMentorTimeout)
	v.SetDefault("mentor-rate", model.DefaultMentorRate)
	v.SetDefault("mentor-burst", model.DefaultMentorBurst)
	v.SetDefault("demo-delay", model.DefaultDemoDelay)
	v.SetDefault("splash-duration", model.DefaultSplashDuration)
	v.SetDefault("catalog-path", "")
	v.SetDefault("reverse-scroll-wheel", false)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("api-addr", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "sinaw", "config.yml"))
	}

	fileRead := true
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
		fileRead = false
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	// Only report a path that was actually read.
	if fileRead {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	// The web build read the key from API_KEY.
	if cfg.MentorAPIKey == "" {
		cfg.MentorAPIKey = os.Getenv("API_KEY")
	}

	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.MentorTemperature < 0 || cfg.MentorTemperature > 2 {
		return cfg, fmt.Errorf("invalid mentor-temperature: %v", cfg.MentorTemperature)
	}
	if cfg.MentorRate < 0 {
		return cfg, fmt.Errorf("invalid mentor-rate: %v", cfg.MentorRate)
	}

	if strings.HasPrefix(cfg.CatalogPath, "~/") {
		cfg.CatalogPath = filepath.Join(home, cfg.CatalogPath[2:])
	}
	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}

// Mentor returns the backend settings for mentor.NewService.
func (c Config) Mentor() mentor.Config {
	return mentor.Config{
		APIKey:      c.MentorAPIKey,
		Model:       c.MentorModel,
		Endpoint:    c.MentorEndpoint,
		Temperature: c.MentorTemperature,
		Rate:        c.MentorRate,
		Burst:       c.MentorBurst,
		DemoDelay:   c.DemoDelay,
	}
}
