package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("MONGO_URL")
	os.Unsetenv("MONGO_DB")
	os.Unsetenv("JWT_SECRET")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURL)
	assert.Equal(t, "employeedb", cfg.Database)
	assert.Equal(t, "", cfg.SigningKey)
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("PORT", "9999")
	os.Setenv("MONGO_URL", "mongodb://db:27017")
	os.Setenv("MONGO_DB", "staff")
	os.Setenv("JWT_SECRET", "s3cret")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("MONGO_URL")
		os.Unsetenv("MONGO_DB")
		os.Unsetenv("JWT_SECRET")
	}()

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURL)
	assert.Equal(t, "staff", cfg.Database)
	assert.Equal(t, "s3cret", cfg.SigningKey)
}
