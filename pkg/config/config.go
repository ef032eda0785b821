// Package config provides centralized configuration management for the
// nutrition bridge.
package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds the complete configuration for the application
type Config struct {
	// USDA FoodData Central configuration
	FDC struct {
		APIKey          string
		BaseURL         string
		RequestTimeout  time.Duration
		MaxPageSize     int
		MaxCompareFoods int
	}

	// OpenAI configuration (agent front end)
	OpenAI struct {
		APIKey string
		Model  string
	}

	// Anthropic configuration (agent front end)
	Anthropic struct {
		APIKey string
		Model  string
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes and loads the configuration from environment variables
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		// Set default values
		v.SetDefault("fdc.base_url", "https://api.nal.usda.gov/fdc/v1")
		v.SetDefault("fdc.request_timeout", "30s")
		v.SetDefault("fdc.max_page_size", 50)
		v.SetDefault("fdc.max_compare_foods", 5)
		v.SetDefault("openai.model", "gpt-4o-mini")
		v.SetDefault("anthropic.model", "claude-3-5-sonnet-20240620")

		// Load from environment variables
		v.AutomaticEnv()

		config = &Config{}

		// FoodData Central
		config.FDC.APIKey = os.Getenv("FDC_API_KEY")
		config.FDC.BaseURL = os.Getenv("FDC_BASE_URL")
		if config.FDC.BaseURL == "" {
			config.FDC.BaseURL = v.GetString("fdc.base_url")
		}
		config.FDC.RequestTimeout = v.GetDuration("fdc.request_timeout")
		if timeout := os.Getenv("FDC_REQUEST_TIMEOUT"); timeout != "" {
			if parsed, err := time.ParseDuration(timeout); err == nil {
				config.FDC.RequestTimeout = parsed
			}
		}
		config.FDC.MaxPageSize = v.GetInt("fdc.max_page_size")
		config.FDC.MaxCompareFoods = v.GetInt("fdc.max_compare_foods")

		// OpenAI
		config.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
		config.OpenAI.Model = os.Getenv("OPENAI_MODEL")
		if config.OpenAI.Model == "" {
			config.OpenAI.Model = v.GetString("openai.model")
		}

		// Anthropic
		config.Anthropic.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		config.Anthropic.Model = os.Getenv("ANTHROPIC_MODEL")
		if config.Anthropic.Model == "" {
			config.Anthropic.Model = v.GetString("anthropic.model")
		}
	})

	return config
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	// List of validation errors
	var errors []string

	if c.FDC.APIKey == "" {
		errors = append(errors, "FDC_API_KEY is required to reach FoodData Central")
	}

	if c.FDC.BaseURL == "" {
		errors = append(errors, "FoodData Central base URL must not be empty")
	}

	// The agent front end needs at least one LLM provider configured
	if c.OpenAI.APIKey == "" && c.Anthropic.APIKey == "" {
		errors = append(errors, "At least one LLM provider (OpenAI or Anthropic) must be configured for the agent")
	}

	// If any errors were found, return them as a combined error
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}
