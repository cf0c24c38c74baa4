package bot

import (
	"strconv"
	"strings"
)

// actionKind — тип действия, закодированного в callback-данных кнопки.
type actionKind int

const (
	actionNone actionKind = iota
	actionPrev
	actionNext
	actionDone
	actionToggleFavorite
	actionRemove
)

// action — разобранное нажатие кнопки.
type action struct {
	kind     actionKind
	recipeID int
}

// parseAction разбирает callback-данные: навигация ("prev", "next",
// "fav_prev", "fav_next"), завершение ("done", "fav_done"), переключение
// избранного ("fav_<id>") и удаление ("remove_<id>"). Счётчики позиции
// ("count", "fav_count") — нейтральные кнопки без действия.
func parseAction(data string) action {
	switch data {
	case "prev", "fav_prev":
		return action{kind: actionPrev}
	case "next", "fav_next":
		return action{kind: actionNext}
	case "done", "fav_done":
		return action{kind: actionDone}
	case "count", "fav_count":
		return action{kind: actionNone}
	}

	if id, ok := strings.CutPrefix(data, "fav_"); ok {
		if recipeID, err := strconv.Atoi(id); err == nil {
			return action{kind: actionToggleFavorite, recipeID: recipeID}
		}
	}
	if id, ok := strings.CutPrefix(data, "remove_"); ok {
		if recipeID, err := strconv.Atoi(id); err == nil {
			return action{kind: actionRemove, recipeID: recipeID}
		}
	}

	return action{kind: actionNone}
}
