package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	MongoURL   string
	Database   string
	SigningKey string
}

//Load reads process configuration from the environment, after loading
// a .env file if one is present. SigningKey has no default; the caller
// decides whether to treat an empty key as fatal.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	return &Config{
		Port:       getenv("PORT", "8080"),
		MongoURL:   getenv("MONGO_URL", "mongodb://127.0.0.1:27017"),
		Database:   getenv("MONGO_DB", "employeedb"),
		SigningKey: os.Getenv("JWT_SECRET"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
