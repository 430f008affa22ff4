package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	DatabaseURI      string
	RollCooldown     time.Duration
	RollCardCount    int
	RollLevelMin     int
	RollLevelMax     int
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	ServerRunAddress = os.Getenv("SERVER_RUN_ADDRESS")
	if ServerRunAddress == "" {
		ServerRunAddress = "0.0.0.0:8080"
	}

	DatabaseURI = os.Getenv("DATABASE_URI")
	if DatabaseURI == "" {
		DatabaseURI = "host=db user=postgres password=password dbname=cardex sslmode=disable"
	}

	RollCooldown = durationEnv("ROLL_COOLDOWN", 24*time.Hour)
	RollCardCount = intEnv("ROLL_CARD_COUNT", 10)
	RollLevelMin = intEnv("ROLL_LEVEL_MIN", 1)
	RollLevelMax = intEnv("ROLL_LEVEL_MAX", 5)
}

func durationEnv(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %s", name, raw, fallback)
		return fallback
	}
	return d
}

func intEnv(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s value %q, using default %d", name, raw, fallback)
		return fallback
	}
	return n
}
