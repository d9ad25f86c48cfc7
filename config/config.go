package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// Text Generation Configuration
	LLMProvider       string `mapstructure:"LLM_PROVIDER"`        // "openai" or "gemini"
	OpenAIKey         string `mapstructure:"OPENAI_API_KEY"`      // API key for OpenAI
	GeminiKey         string `mapstructure:"GEMINI_API_KEY"`      // API key for Google Gemini
	LLMModel          string `mapstructure:"LLM_MODEL"`           // Optional model override; providers have defaults
	LLMTimeoutSeconds int    `mapstructure:"LLM_TIMEOUT_SECONDS"` // Per-request generation budget

	// Storage Configuration
	DatabasePath string `mapstructure:"DATABASE_PATH"` // SQLite file for the project store

	// Component Generation Configuration
	ComponentCacheSize int `mapstructure:"COMPONENT_CACHE_SIZE"` // LRU entries for rendered component bodies
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	// Defaults register every key with viper so AutomaticEnv picks up the
	// matching environment variables during Unmarshal.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("LLM_PROVIDER", "openai")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("LLM_MODEL", "")
	viper.SetDefault("LLM_TIMEOUT_SECONDS", 60)
	viper.SetDefault("DATABASE_PATH", "data/projects.db")
	viper.SetDefault("COMPONENT_CACHE_SIZE", 128)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			// If another error occurred reading the config file, return it
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" && config.GeminiKey == "" {
		log.Println("WARN: No OPENAI_API_KEY or GEMINI_API_KEY set; spec generation will use the rule-based fallback and site generation will be unavailable.")
	}

	return
}

// Credential returns the API key for the configured provider.
func (c Config) Credential() string {
	if c.LLMProvider == "gemini" {
		return c.GeminiKey
	}
	return c.OpenAIKey
}
