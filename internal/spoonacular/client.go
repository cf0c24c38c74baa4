// Package spoonacular предоставляет клиент для Spoonacular API
// (поиск рецептов по ингредиентам и получение деталей рецепта).
package spoonacular

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

const defaultBaseURL = "https://api.spoonacular.com"

// searchLimit — максимум результатов одного поиска.
const searchLimit = 10

// Client — клиент Spoonacular. Каждый вызов — один запрос
// с ограниченным таймаутом, без повторов.
type Client struct {
	// BaseURL можно переопределить (например, в тестах).
	BaseURL string

	apiKey     string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// New создаёт клиент с ключом API и таймаутом запросов.
func New(apiKey string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FindByIngredients ищет рецепты по списку ингредиентов.
// Ранжирование — максимизация совпавших ингредиентов, без учёта
// "кладовых" продуктов. При статусе 402 (исчерпан лимит) возвращает
// пустой список без ошибки.
func (c *Client) FindByIngredients(ctx context.Context, ingredients string) ([]models.Recipe, error) {
	params := url.Values{}
	params.Set("ingredients", normalizeIngredients(ingredients))
	params.Set("apiKey", c.apiKey)
	params.Set("number", strconv.Itoa(searchLimit))
	params.Set("ranking", "2")
	params.Set("ignorePantry", "true")

	reqURL := c.BaseURL + "/recipes/findByIngredients?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса поиска: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к Spoonacular: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		c.log.Errorf("Лимит Spoonacular API исчерпан (402 Payment Required)")
		return nil, nil
	}

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("поиск вернул статус %d: %s", resp.StatusCode, string(body))
	}

	var recipes []models.Recipe
	if err := json.Unmarshal(body, &recipes); err != nil {
		return nil, fmt.Errorf("неверный JSON в ответе поиска: %w", err)
	}

	if len(recipes) > searchLimit {
		recipes = recipes[:searchLimit]
	}

	return recipes, nil
}

// informationResponse — ответ /recipes/{id}/information.
type informationResponse struct {
	ExtendedIngredients []struct {
		Name string `json:"name"`
	} `json:"extendedIngredients"`
	AnalyzedInstructions []struct {
		Steps []struct {
			Number int    `json:"number"`
			Step   string `json:"step"`
		} `json:"steps"`
	} `json:"analyzedInstructions"`
}

// Information запрашивает детали рецепта: ингредиенты маркированным
// списком, шаги приготовления — нумерованным.
func (c *Client) Information(ctx context.Context, recipeID int) (models.RecipeDetail, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("includeNutrition", "false")

	reqURL := fmt.Sprintf("%s/recipes/%d/information?%s", c.BaseURL, recipeID, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.RecipeDetail{}, fmt.Errorf("ошибка создания запроса деталей: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.RecipeDetail{}, fmt.Errorf("ошибка запроса деталей: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return models.RecipeDetail{}, fmt.Errorf("детали вернули статус %d: %s", resp.StatusCode, string(body))
	}

	var info informationResponse
	if err := json.Unmarshal(body, &info); err != nil {
		return models.RecipeDetail{}, fmt.Errorf("неверный JSON в ответе деталей: %w", err)
	}

	return models.RecipeDetail{
		Ingredients:  formatIngredients(info),
		Instructions: formatInstructions(info),
	}, nil
}

// normalizeIngredients приводит текст пользователя к виду для API:
// обрезка, нижний регистр, пробелы схлопываются в "+".
func normalizeIngredients(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "+")
}

func formatIngredients(info informationResponse) string {
	lines := make([]string, 0, len(info.ExtendedIngredients))
	for _, ing := range info.ExtendedIngredients {
		lines = append(lines, "- "+ing.Name)
	}
	return strings.Join(lines, "\n")
}

func formatInstructions(info informationResponse) string {
	if len(info.AnalyzedInstructions) == 0 {
		return ""
	}
	steps := info.AnalyzedInstructions[0].Steps
	lines := make([]string, 0, len(steps))
	for _, step := range steps {
		lines = append(lines, fmt.Sprintf("%d. %s", step.Number, step.Step))
	}
	return strings.Join(lines, "\n")
}
