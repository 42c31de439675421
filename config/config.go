package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
}

type ServerConfig struct {
	Addr string
}

type StorageConfig struct {
	// Dir is the directory holding the four collection files.
	Dir string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Addr: getEnv("LISTEN_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Dir: getEnv("TICKET_DATA_DIR", defaultDataDir()),
		},
	}
}

func defaultDataDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
