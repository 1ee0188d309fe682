package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/CIDgravity/snakelet"
	"github.com/kelseyhightower/envconfig"
)

// config structure
type Config struct {
	API     APIConfig     `mapstructure:"API"`
	Github  GithubConfig  `mapstructure:"GITHUB"`
	Logs    LogsConfig    `mapstructure:"LOGS"`
	Tracing TracingConfig `mapstructure:"TRACING"`
}

type APIConfig struct {
	ListenPort string `mapstructure:"ListenPort"`
}

type GithubConfig struct {
	Token          string `mapstructure:"Token"` // optional, increase the github rate limit
	BaseURL        string `mapstructure:"BaseURL"`
	TimeoutSeconds int    `mapstructure:"TimeoutSeconds"`
	PerPage        int    `mapstructure:"PerPage"` // only the first page is loaded, max 100
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJson"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"Enabled"`
	Exporter    string `mapstructure:"Exporter"` // stdout | none
	ServiceName string `mapstructure:"ServiceName"`
}

// envOverrides are read after the config file and replace values when set
type envOverrides struct {
	ListenPort     string `envconfig:"PORT"`
	GithubToken    string `envconfig:"GITHUB_TOKEN"`
	LogLevel       string `envconfig:"LOG_LEVEL"`
	TracingEnabled *bool  `envconfig:"TRACING_ENABLED"`
}

// Load
func Load() (*Config, error) {
	cfg := GetDefault()

	configFilePath, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	// the config file is optional, defaults and environment are enough to run
	if configFilePath != "" {
		if _, err := snakelet.InitAndLoad(cfg, configFilePath); err != nil {
			return nil, err
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile look for config/config.toml next to the binary then in the working directory
// an empty path is returned when there is no config file
func findConfigFile() (string, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err != nil {
		return "", err
	}

	for _, candidate := range []string{dir + "/config/config.toml", "config/config.toml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	return "", nil
}

func applyEnvOverrides(cfg *Config) error {
	var env envOverrides

	if err := envconfig.Process("", &env); err != nil {
		return err
	}

	if env.ListenPort != "" {
		cfg.API.ListenPort = env.ListenPort
	}

	if env.GithubToken != "" {
		cfg.Github.Token = env.GithubToken
	}

	if env.LogLevel != "" {
		cfg.Logs.Level = env.LogLevel
	}

	if env.TracingEnabled != nil {
		cfg.Tracing.Enabled = *env.TracingEnabled
	}

	return nil
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort: "5000",
		},
		Github: GithubConfig{
			BaseURL:        "https://api.github.com/",
			TimeoutSeconds: 10,
			PerPage:        100,
		},
		Logs: LogsConfig{
			Level:            "info",
			OutputLogsAsJSON: false,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "langs-usage-chart",
		},
	}
}
