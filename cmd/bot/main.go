package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/YaroslavGliznitsaYa/recipebot/internal/bot"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/config"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/database"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/logger"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/recipes"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/spoonacular"
)

func main() {
	// Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Не удалось создать логгер: %v", err)
	}
	defer lg.Sync()

	// Создание базы данных
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		lg.Fatalf("Не удалось создать базу данных: %v", err)
	}
	defer db.Close()

	// Без ключа Spoonacular бот работает на локальной таблице рецептов
	var client *spoonacular.Client
	if cfg.SpoonacularAPIKey != "" {
		client = spoonacular.New(cfg.SpoonacularAPIKey, cfg.HTTPTimeout, lg)
	} else {
		lg.Warn("Ключ Spoonacular не задан — используются локальные рецепты")
	}

	recipeService := recipes.NewService(client, lg)

	b, err := bot.New(cfg.TelegramBotToken, db, recipeService, lg)
	if err != nil {
		lg.Fatalf("Не удалось создать бота: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lg.Info("Бот запущен")
	if err := b.Start(ctx); err != nil {
		lg.Fatalf("Ошибка обработки обновлений: %v", err)
	}
}
