package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port         int
	APIKey       string
	BaseURL      string // override for the places API host, used in tests
	TemplatePath string
	LogLevel     string
}

// Load reads an optional .env file and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	return Config{
		Port:         GetInt("PORT", 3000),
		APIKey:       os.Getenv("GOOGLE_MAPS_API_KEY"),
		BaseURL:      os.Getenv("PLACES_BASE_URL"),
		TemplatePath: GetString("EXPORT_TEMPLATE_PATH", "templates/export_template.xlsx"),
		LogLevel:     GetString("LOG_LEVEL", "info"),
	}
}

func GetString(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func GetInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
