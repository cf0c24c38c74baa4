// Package session хранит состояние просмотра рецептов: курсор по списку
// результатов поиска или избранного, отдельно для каждого пользователя.
package session

import (
	"sync"

	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// Mode — режим просмотра.
type Mode int

const (
	// ModeSearch — просмотр результатов поиска.
	ModeSearch Mode = iota
	// ModeFavorites — просмотр избранного.
	ModeFavorites
)

// String возвращает читаемое имя режима.
func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeFavorites:
		return "favorites"
	default:
		return "unknown"
	}
}

// Session — просмотр одного списка рецептов. Курсор всегда остаётся
// в границах списка: на краях навигация упирается, а не заворачивает.
// Методы безопасны для конкурентного вызова.
type Session struct {
	mu sync.Mutex

	userID        int64
	chatID        int64
	mode          Mode
	items         []models.Recipe
	cursor        int
	lastMessageID int
}

// New создаёт сессию с курсором на первом элементе.
// Список не должен быть пустым — пустой результат обрабатывается
// до создания сессии.
func New(userID, chatID int64, mode Mode, items []models.Recipe) *Session {
	return &Session{
		userID: userID,
		chatID: chatID,
		mode:   mode,
		items:  items,
	}
}

// UserID возвращает владельца сессии.
func (s *Session) UserID() int64 { return s.userID }

// ChatID возвращает чат, в котором идёт просмотр.
func (s *Session) ChatID() int64 { return s.chatID }

// Mode возвращает режим просмотра.
func (s *Session) Mode() Mode { return s.mode }

// Current возвращает рецепт под курсором.
func (s *Session) Current() models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[s.cursor]
}

// Position возвращает позицию для показа пользователю (с единицы)
// и размер списка.
func (s *Session) Position() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor + 1, len(s.items)
}

// Next сдвигает курсор вперёд. На последнем элементе ничего не меняет
// и возвращает false.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor+1 >= len(s.items) {
		return false
	}
	s.cursor++
	return true
}

// Prev сдвигает курсор назад. На первом элементе ничего не меняет
// и возвращает false.
func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Find ищет рецепт в списке по id.
func (s *Session) Find(recipeID int) (models.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if r.ID == recipeID {
			return r, true
		}
	}
	return models.Recipe{}, false
}

// Remove убирает рецепт из списка и прижимает курсор к границе.
// Возвращает количество оставшихся элементов; ноль означает,
// что сессию пора завершить.
func (s *Session) Remove(recipeID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, r := range s.items {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	s.items = kept

	if s.cursor >= len(s.items) && len(s.items) > 0 {
		s.cursor = len(s.items) - 1
	}

	return len(s.items)
}

// LastMessageID возвращает id последней отправленной карточки.
func (s *Session) LastMessageID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMessageID
}

// SetLastMessageID запоминает id карточки, чтобы удалить её
// перед следующей отправкой.
func (s *Session) SetLastMessageID(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastMessageID = id
}
