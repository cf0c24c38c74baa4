package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	Start     Start     `json:"start"`
	Help      Help      `json:"help"`
	Search    Search    `json:"search"`
	Favorites Favorites `json:"favorites"`
	Recipe    Recipe    `json:"recipe"`
	Buttons   Buttons   `json:"buttons"`
	Cancel    Cancel    `json:"cancel"`
}

// Start — приветствие по /start, подставляется имя пользователя.
type Start struct {
	Text string `json:"text"`
}

// Help — справка по /help.
type Help struct {
	Text string `json:"text"`
}

// Search — тексты сценария поиска рецептов.
type Search struct {
	Prompt    string `json:"prompt"`
	Progress  string `json:"progress"`
	NoResults string `json:"no_results"`
	Failed    string `json:"failed"`
	Finished  string `json:"finished"`
}

// Favorites — тексты сценария просмотра избранного.
type Favorites struct {
	Empty    string `json:"empty"`
	NoneLeft string `json:"none_left"`
}

// Recipe — шаблон карточки рецепта.
type Recipe struct {
	Caption      string `json:"caption"`
	NotSpecified string `json:"not_specified"`
}

// Buttons — подписи inline-кнопок.
type Buttons struct {
	FavAdd   string `json:"fav_add"`
	FavAdded string `json:"fav_added"`
	Prev     string `json:"prev"`
	Next     string `json:"next"`
	Done     string `json:"done"`
	Remove   string `json:"remove"`
}

// Cancel — ответ на /cancel.
type Cancel struct {
	Text string `json:"text"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
