package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// NumberServiceConfig configures the standalone WhatsApp number service.
type NumberServiceConfig struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	// AdminPassword is the shared secret required on writes.
	AdminPassword string
	LogLevel      string
}

// LoadNumberService reads plain environment variables, loading a .env file first when one exists.
func LoadNumberService() *NumberServiceConfig {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "5000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "reddy")
	v.SetDefault("LOG_LEVEL", "info")

	return &NumberServiceConfig{
		Port:          v.GetString("PORT"),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DB"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}
}
