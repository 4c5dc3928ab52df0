package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	MaxRetries int
	PartySize  int

	// Settle delay after navigation, before the page is read.
	SettleMinMs int
	SettleMaxMs int
	// Pause between (hotel, date) passes.
	PassDelayMinMs int
	PassDelayMaxMs int

	CSVOutputPath string
	ChromeBin     string

	// CronSpec schedules repeated runs when set; empty means run once.
	CronSpec string
	Verbose  bool
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "monitor"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "monitor123"),
		PostgresDB:       getEnv("POSTGRES_DB", "hotel_prices_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		MaxRetries: getEnvInt("MAX_RETRIES", 3),
		PartySize:  getEnvInt("PARTY_SIZE", 2),

		SettleMinMs:    getEnvInt("SETTLE_MIN_MS", 5000),
		SettleMaxMs:    getEnvInt("SETTLE_MAX_MS", 8000),
		PassDelayMinMs: getEnvInt("PASS_DELAY_MIN_MS", 3000),
		PassDelayMaxMs: getEnvInt("PASS_DELAY_MAX_MS", 6000),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/price_records.csv"),
		ChromeBin:     getEnv("CHROME_BIN", ""),

		CronSpec: getEnv("MONITOR_CRON", ""),
		Verbose:  getEnvBool("VERBOSE", false),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
