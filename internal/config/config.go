package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// API backend flavors. Selection is a pure function of configuration;
// there is no fallback between them.
const (
	APITypeOpenAI = "openai"
	APITypeAzure  = "azure"
)

// Config holds the application configuration
type Config struct {
	API         APIConfig               `mapstructure:"api"`
	Model       string                  `mapstructure:"model"`
	Temperature float32                 `mapstructure:"temperature"`
	Server      ServerConfig            `mapstructure:"server"`
	History     HistoryConfig           `mapstructure:"history"`
	Actions     map[string]ActionConfig `mapstructure:"actions"`
	LogLevel    string                  `mapstructure:"log_level"`
}

// APIConfig holds the chat-completion backend configuration
type APIConfig struct {
	Type    string `mapstructure:"type"`
	BaseURL string `mapstructure:"base_url"`
	Key     string `mapstructure:"key"`
	Version string `mapstructure:"version"` // azure api-version query parameter
}

// ServerConfig holds the invocation endpoint configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// HistoryConfig holds the exchange log configuration
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

// ActionConfig holds per-action settings for the one-time transform actions
type ActionConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	PrimaryLanguage   string `mapstructure:"primary_language"`
	SecondaryLanguage string `mapstructure:"secondary_language"`
	Instruction       string `mapstructure:"instruction"`
}

// Language fills for actions configured without explicit languages.
const (
	DefaultPrimaryLanguage   = "English"
	DefaultSecondaryLanguage = "Simplified Chinese"
)

// Load loads the configuration from config.yaml, or from the file named by
// the CONFIG_PATH environment variable when set.
func Load() (*Config, error) {
	v := viper.New()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetDefault("api.type", APITypeOpenAI)
	v.SetDefault("model", "gpt-4o-mini")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8723")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) validate() error {
	switch c.API.Type {
	case APITypeOpenAI, APITypeAzure:
	default:
		return fmt.Errorf("unsupported api type %q (want %q or %q)", c.API.Type, APITypeOpenAI, APITypeAzure)
	}
	if c.API.Key == "" {
		return fmt.Errorf("api key is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	for id, ac := range c.Actions {
		if ac.PrimaryLanguage == "" {
			ac.PrimaryLanguage = DefaultPrimaryLanguage
		}
		if ac.SecondaryLanguage == "" {
			ac.SecondaryLanguage = DefaultSecondaryLanguage
		}
		c.Actions[id] = ac
	}
}

// Action returns the configuration for a one-time action, zero-valued (and
// therefore disabled) when the action has no entry.
func (c *Config) Action(id string) ActionConfig {
	return c.Actions[id]
}
