package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage
	StorageBackend string `mapstructure:"STORAGE_BACKEND"` // file | redis
	DataDir        string `mapstructure:"DATA_DIR"`
	RedisURL       string `mapstructure:"REDIS_URL"`

	// Receipts
	ReciboStoragePath string `mapstructure:"RECIBO_STORAGE_PATH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("RECIBO_STORAGE_PATH", "/tmp/gestor/recibos")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
