// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fireplan-nl/fireplan/pkg/constants"
)

// Configuration holds all configuration for fireplan.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Gemini  GeminiConfig  `yaml:"gemini,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServerConfig holds the HTTP server parameters.
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
	// RequestTimeoutSeconds is the full plan-request budget advertised to
	// clients. It must exceed the upstream budget so the provider call is
	// always the first to abort.
	RequestTimeoutSeconds int `yaml:"requestTimeoutSeconds,omitempty"`
}

// GeminiConfig holds the AI provider parameters. The API key is only ever
// read from the environment (GEMINI_API_KEY), never from file.
type GeminiConfig struct {
	Endpoint       string `yaml:"endpoint,omitempty"`
	Model          string `yaml:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
	APIKey         string `yaml:"-"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration loads the YAML configuration at the given path, with
// environment overrides. A missing file is not an error; defaults apply.
func LoadConfiguration(configPath string) (*Configuration, error) {
	// Best-effort .env loading so local runs pick up GEMINI_API_KEY.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.requestTimeoutSeconds", constants.DefaultRequestTimeoutSeconds)
	v.SetDefault("gemini.endpoint", constants.DefaultGeminiEndpoint)
	v.SetDefault("gemini.model", constants.DefaultGeminiModel)
	v.SetDefault("gemini.timeoutSeconds", constants.DefaultUpstreamTimeoutSeconds)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	return &configuration, nil
}

// RequestTimeout returns the plan-request budget as a duration.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the upstream call budget as a duration.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// EffectiveYAML renders the loaded configuration as YAML for startup logging.
// The API key is excluded from marshalling and never appears in the output.
func (c *Configuration) EffectiveYAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to render configuration, %s", err)
	}
	return string(out), nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Gemini.APIKey == "" {
		warnings = append(warnings, "GEMINI_API_KEY is not set - plan submissions will fail")
	}
	if c.Server.RequestTimeoutSeconds <= c.Gemini.TimeoutSeconds {
		warnings = append(warnings, fmt.Sprintf(
			"server request timeout (%ds) does not exceed the upstream timeout (%ds) - clients may abort before the provider call does",
			c.Server.RequestTimeoutSeconds, c.Gemini.TimeoutSeconds))
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		warnings = append(warnings, "upstream timeout must be positive - using it as configured will fail every call")
	}

	return warnings
}
