package models

// Recipe — краткая карточка рецепта из результатов поиска.
// JSON-теги совпадают с форматом Spoonacular; те же поля
// сохраняются снимком в избранное.
type Recipe struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
}

// RecipeDetail — подробности рецепта, запрашиваются отдельно при показе.
// Пустые поля означают "не указано" — подстановку текста делает отображение.
type RecipeDetail struct {
	Ingredients  string
	Instructions string
}

// Status — итог обработки действия пользователя.
type Status int

const (
	// StatusContinue — сессия открыта, ждём следующее действие.
	StatusContinue Status = iota
	// StatusEnd — сессия закрыта, её состояние сброшено.
	StatusEnd
)

// String возвращает читаемое имя статуса.
func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusEnd:
		return "end"
	default:
		return "unknown"
	}
}
