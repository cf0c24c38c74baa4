package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config — конфигурация процесса, читается один раз при старте
// и передаётся компонентам явно.
type Config struct {
	TelegramBotToken  string        // обязателен, без него бот не стартует
	SpoonacularAPIKey string        // опционален, без него — локальные рецепты
	DatabasePath      string        // путь к файлу sqlite
	LogLevel          string        // "debug" | "info" | "warn" | "error"
	HTTPTimeout       time.Duration // таймаут одного запроса к Spoonacular
}

// Load читает конфигурацию из .env (если есть) и переменных окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		SpoonacularAPIKey: os.Getenv("SPOONACULAR_API_KEY"),
		DatabasePath:      getenv("DATABASE_PATH", "recipes.db"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		HTTPTimeout:       getenvDuration("HTTP_TIMEOUT", 10*time.Second),
	}

	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("переменная TELEGRAM_BOT_TOKEN не задана")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
