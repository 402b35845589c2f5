package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbParams   string
	Lang       string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		DbHost:     getEnv("DB_HOST", "localhost"),
		DbPort:     getEnv("DB_PORT", "3306"),
		DbUser:     getEnv("DB_USER", "root"),
		DbPassword: getEnv("DB_PASSWORD", ""),
		DbName:     getEnv("DB_NAME", "task_management"),
		DbParams:   getEnv("DB_PARAMS", "parseTime=true&multiStatements=true"),
		Lang:       getEnv("APP_LANG", "en"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
