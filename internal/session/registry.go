package session

import (
	"sync"

	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// Registry хранит сессии просмотра по id пользователя — не больше одной
// на пользователя. Там же живёт флаг "ждём ингредиенты" после /search.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	awaiting map[int64]bool
}

// NewRegistry создаёт пустой реестр сессий.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*Session),
		awaiting: make(map[int64]bool),
	}
}

// Start создаёт сессию для пользователя, молча заменяя предыдущую,
// и снимает флаг ожидания ингредиентов.
func (r *Registry) Start(userID, chatID int64, mode Mode, items []models.Recipe) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := New(userID, chatID, mode, items)
	r.sessions[userID] = s
	delete(r.awaiting, userID)
	return s
}

// Get возвращает текущую сессию пользователя.
func (r *Registry) Get(userID int64) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	return s, ok
}

// End сбрасывает сессию и флаг ожидания.
func (r *Registry) End(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	delete(r.awaiting, userID)
}

// AwaitIngredients помечает, что следующее текстовое сообщение
// пользователя — список ингредиентов для поиска.
func (r *Registry) AwaitIngredients(userID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.awaiting[userID] = true
}

// ConsumeAwaiting снимает флаг ожидания и сообщает, стоял ли он.
func (r *Registry) ConsumeAwaiting(userID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	was := r.awaiting[userID]
	delete(r.awaiting, userID)
	return was
}
