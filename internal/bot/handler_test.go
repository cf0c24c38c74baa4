package bot

import (
	"context"
	"path/filepath"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/YaroslavGliznitsaYa/recipebot/internal/database"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/recipes"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/session"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/locales"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// fakeAPI записывает отправленное вместо похода в Telegram.
type fakeAPI struct {
	sent []tgbotapi.Chattable
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeAPI) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return nil
}

// lastMessageText возвращает текст последнего отправленного сообщения.
func (f *fakeAPI) lastMessageText() string {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if msg, ok := f.sent[i].(tgbotapi.MessageConfig); ok {
			return msg.Text
		}
	}
	return ""
}

func newTestBot(t *testing.T) (*Bot, *fakeAPI) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("не удалось открыть тестовую базу: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	api := &fakeAPI{}
	return &Bot{
		api:      api,
		db:       db,
		recipes:  recipes.NewService(nil, zap.NewNop().Sugar()),
		sessions: session.NewRegistry(),
		log:      zap.NewNop().Sugar(),
	}, api
}

func callbackFrom(userID, chatID int64, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "1",
		From: &tgbotapi.User{ID: userID},
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 5,
			Chat:      &tgbotapi.Chat{ID: chatID},
		},
	}
}

func TestAcceptsIngredients(t *testing.T) {
	items := []models.Recipe{{ID: 1, Title: "Омлет с молоком"}}

	t.Run("без /search и сессии текст игнорируется", func(t *testing.T) {
		b, _ := newTestBot(t)
		if b.acceptsIngredients(1) {
			t.Error("текст принят без /search и без сессии")
		}
	})

	t.Run("после /search флаг срабатывает один раз", func(t *testing.T) {
		b, _ := newTestBot(t)
		b.sessions.AwaitIngredients(1)
		if !b.acceptsIngredients(1) {
			t.Fatal("текст не принят после /search")
		}
		if b.acceptsIngredients(1) {
			t.Error("флаг ожидания не сброшен после первого сообщения")
		}
	})

	t.Run("во время листания результатов текст начинает новый поиск", func(t *testing.T) {
		b, _ := newTestBot(t)
		b.sessions.Start(1, 10, session.ModeSearch, items)
		if !b.acceptsIngredients(1) {
			t.Fatal("текст не принят при открытой сессии поиска")
		}
		// Сессия остаётся открытой, так что принят и следующий список.
		if !b.acceptsIngredients(1) {
			t.Error("повторный список во время листания не принят")
		}
	})

	t.Run("во время листания избранного текст игнорируется", func(t *testing.T) {
		b, _ := newTestBot(t)
		b.sessions.Start(1, 10, session.ModeFavorites, items)
		if b.acceptsIngredients(1) {
			t.Error("текст принят при открытой сессии избранного")
		}
	})

	t.Run("после завершения сессии текст игнорируется", func(t *testing.T) {
		b, _ := newTestBot(t)
		b.sessions.Start(1, 10, session.ModeSearch, items)
		b.sessions.End(1)
		if b.acceptsIngredients(1) {
			t.Error("текст принят после завершения сессии")
		}
	})
}

func TestHandleCallbackWithoutMessage(t *testing.T) {
	b, _ := newTestBot(t)

	// Для нажатий на карточках старше 48 часов Telegram присылает
	// callback без исходного сообщения — обработчик должен молча
	// выйти, а не паниковать.
	b.handleCallback(context.Background(), &tgbotapi.CallbackQuery{
		ID:   "1",
		From: &tgbotapi.User{ID: 7},
		Data: "next",
	})
}

func TestRemoveLastFavoriteEndsSession(t *testing.T) {
	b, api := newTestBot(t)
	const userID, chatID = int64(7), int64(10)

	r := models.Recipe{ID: 1, Title: "Омлет с молоком"}
	if err := b.db.AddFavorite(r, userID); err != nil {
		t.Fatalf("не удалось добавить в избранное: %v", err)
	}
	favs, err := b.db.Favorites(userID)
	if err != nil {
		t.Fatalf("не удалось получить избранное: %v", err)
	}
	b.sessions.Start(userID, chatID, session.ModeFavorites, favs)

	b.handleCallback(context.Background(), callbackFrom(userID, chatID, "remove_1"))

	if _, ok := b.sessions.Get(userID); ok {
		t.Error("сессия осталась открытой после удаления последнего рецепта")
	}
	favs, err = b.db.Favorites(userID)
	if err != nil {
		t.Fatalf("не удалось получить избранное: %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("в избранном осталось %d рецептов, ожидалось 0", len(favs))
	}
	if got, want := api.lastMessageText(), locales.Get().Favorites.NoneLeft; got != want {
		t.Errorf("последнее сообщение = %q, ожидалось %q", got, want)
	}
}

func TestRemoveFavoriteKeepsSessionWhileItemsRemain(t *testing.T) {
	b, _ := newTestBot(t)
	const userID, chatID = int64(7), int64(10)

	for _, r := range []models.Recipe{
		{ID: 1, Title: "Омлет с молоком"},
		{ID: 2, Title: "Блины на молоке"},
	} {
		if err := b.db.AddFavorite(r, userID); err != nil {
			t.Fatalf("не удалось добавить в избранное: %v", err)
		}
	}
	favs, err := b.db.Favorites(userID)
	if err != nil {
		t.Fatalf("не удалось получить избранное: %v", err)
	}
	b.sessions.Start(userID, chatID, session.ModeFavorites, favs)

	b.handleCallback(context.Background(), callbackFrom(userID, chatID, "remove_1"))

	s, ok := b.sessions.Get(userID)
	if !ok {
		t.Fatal("сессия завершена, хотя в избранном остались рецепты")
	}
	if cur := s.Current(); cur.ID != 2 {
		t.Errorf("текущий рецепт после удаления = %+v, ожидался ID 2", cur)
	}
	favs, err = b.db.Favorites(userID)
	if err != nil {
		t.Fatalf("не удалось получить избранное: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != 2 {
		t.Errorf("в базе осталось %v, ожидался только рецепт 2", favs)
	}
}
