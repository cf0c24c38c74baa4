// Package recipes — источник рецептов: внешний поиск через Spoonacular
// с откатом на локальную демо-таблицу.
package recipes

import (
	"context"

	"go.uber.org/zap"

	"github.com/YaroslavGliznitsaYa/recipebot/internal/spoonacular"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// Service объединяет внешний клиент и локальную таблицу.
// client == nil означает работу только с локальными рецептами
// (ключ API не задан).
type Service struct {
	client *spoonacular.Client
	log    *zap.SugaredLogger
}

// NewService создаёт источник рецептов.
func NewService(client *spoonacular.Client, log *zap.SugaredLogger) *Service {
	return &Service{
		client: client,
		log:    log,
	}
}

// Search ищет рецепты по тексту с ингредиентами. Ошибка или пустой
// ответ внешнего поиска не поднимаются наверх — происходит откат
// на локальную таблицу.
func (s *Service) Search(ctx context.Context, ingredients string) []models.Recipe {
	if s.client == nil {
		return localSearch(ingredients)
	}

	found, err := s.client.FindByIngredients(ctx, ingredients)
	if err != nil {
		s.log.Errorf("Поиск через Spoonacular не удался: %v", err)
	}
	if len(found) > 0 {
		return found
	}

	return localSearch(ingredients)
}

// Detail возвращает детали рецепта. При ошибке внешнего запроса
// возвращает пустые детали — отображение подставит "Не указаны".
func (s *Service) Detail(ctx context.Context, recipeID int) models.RecipeDetail {
	if s.client == nil {
		return localDetail(recipeID)
	}

	detail, err := s.client.Information(ctx, recipeID)
	if err != nil {
		s.log.Errorf("Не удалось получить детали рецепта %d: %v", recipeID, err)
		return models.RecipeDetail{}
	}

	return detail
}
