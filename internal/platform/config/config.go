package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	AppVersion   string
	IsProduction bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("APP_VERSION", "unknown")
	viper.SetDefault("IS_PRODUCTION", false)

	// Environment variables override defaults and .env file values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.AppVersion = viper.GetString("APP_VERSION")
	if cfg.AppVersion == "" {
		// The info endpoint reports whatever is configured; an empty version
		// gets the placeholder rather than failing startup.
		cfg.AppVersion = "unknown"
		log.Println("Warning: APP_VERSION environment variable not set. Using placeholder.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	return cfg, nil
}
