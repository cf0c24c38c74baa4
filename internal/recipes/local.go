package recipes

import (
	"strings"

	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// rule — правило локального подбора: рецепт предлагается, если текст
// пользователя содержит хотя бы один токен из каждой группы
// (группа — синонимы одного ингредиента).
type rule struct {
	tokens [][]string
	recipe models.Recipe
}

var localRules = []rule{
	{
		tokens: [][]string{
			{"яйца", "eggs"},
			{"молоко", "milk"},
		},
		recipe: models.Recipe{
			ID:                    1,
			Title:                 "Омлет с молоком",
			Image:                 "https://spoonacular.com/recipeImages/1-312x231.jpg",
			UsedIngredientCount:   2,
			MissedIngredientCount: 1,
		},
	},
	{
		tokens: [][]string{
			{"яйца", "eggs"},
			{"молоко", "milk"},
		},
		recipe: models.Recipe{
			ID:                    2,
			Title:                 "Блины на молоке",
			Image:                 "https://spoonacular.com/recipeImages/2-312x231.jpg",
			UsedIngredientCount:   3,
			MissedIngredientCount: 2,
		},
	},
}

var localDetails = map[int]models.RecipeDetail{
	1: {
		Ingredients:  "- Яйца\n- Молоко\n- Соль",
		Instructions: "1. Взбить яйца с молоком\n2. Добавить соль\n3. Жарить на сковороде",
	},
	2: {
		Ingredients:  "- Молоко\n- Мука\n- Яйца\n- Сахар",
		Instructions: "1. Смешать ингредиенты\n2. Жарить на раскаленной сковороде",
	},
}

// localSearch подбирает демо-рецепты по правилам выше.
func localSearch(ingredients string) []models.Recipe {
	text := strings.ToLower(ingredients)

	var found []models.Recipe
	for _, r := range localRules {
		if r.matches(text) {
			found = append(found, r.recipe)
		}
	}
	return found
}

// localDetail возвращает детали демо-рецепта, пустые — если id неизвестен.
func localDetail(recipeID int) models.RecipeDetail {
	return localDetails[recipeID]
}

func (r rule) matches(text string) bool {
	for _, group := range r.tokens {
		if !containsAny(text, group) {
			return false
		}
	}
	return true
}

func containsAny(text string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}
