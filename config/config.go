package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Default CORS allow-list: the public site plus local development servers.
const defaultOrigins = "https://www.sarangch.or.kr,https://sarangch.or.kr,http://localhost:3000,http://localhost:5173"

type Config struct {
	// Server
	Port      string
	GinMode   string
	StaticDir string

	// MongoDB Atlas
	MongoURI       string
	MongoDB        string
	NewsCollection string

	// Shared secret for mutating endpoints. May be empty; the admin guard
	// then rejects every mutation as misconfigured.
	AdminToken string

	// Origins allowed unrestricted CORS access
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		StaticDir:      getEnv("STATIC_DIR", "./public"),
		MongoURI:       getEnv("MONGODB_URI", ""),
		MongoDB:        getEnv("MONGODB_DB", "church"),
		NewsCollection: getEnv("NEWS_COLLECTION", "news"),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", defaultOrigins)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
