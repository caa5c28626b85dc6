package config

import "os"

// Config is the process configuration, read once at startup from the
// environment (a .env file is loaded first when present).
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	HTTPAddr  string

	// BaseURL is used to build the verification link put into emails.
	BaseURL string

	// Telegram notifier; the notifier stays off while either is empty.
	TelegramBotToken string
	TelegramChatID   string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "user"),
		DBPassword: getenv("DB_PASSWORD", "password"),
		DBName:     getenv("DB_NAME", "greensentineldb"),
		DBPort:     getenv("DB_PORT", "5432"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: getenv("JWT_SECRET", "dev-only-secret"),
		HTTPAddr:  getenv("HTTP_ADDR", ":8080"),

		BaseURL: getenv("BASE_URL", "http://localhost:8080"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
}
