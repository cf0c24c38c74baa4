package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/YaroslavGliznitsaYa/recipebot/internal/database"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/recipes"
	"github.com/YaroslavGliznitsaYa/recipebot/internal/session"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/locales"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// telegramAPI — подмножество методов tgbotapi.BotAPI, которым
// пользуется бот.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot представляет Telegram бота
type Bot struct {
	api      telegramAPI
	db       *database.DB
	recipes  *recipes.Service
	sessions *session.Registry
	log      *zap.SugaredLogger
}

// New создает нового бота
func New(token string, db *database.DB, recipeService *recipes.Service, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	log.Infof("Авторизован как @%s", api.Self.UserName)

	return &Bot{
		api:      api,
		db:       db,
		recipes:  recipeService,
		sessions: session.NewRegistry(),
		log:      log,
	}, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			go b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate обрабатывает входящее обновление
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает текстовые сообщения
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	l := locales.Get()

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.reply(chatID, fmt.Sprintf(l.Start.Text, msg.From.FirstName))
		case "help":
			b.reply(chatID, l.Help.Text)
		case "search":
			b.sessions.AwaitIngredients(userID)
			b.reply(chatID, l.Search.Prompt)
		case "favorites":
			b.startFavorites(ctx, chatID, userID)
		case "cancel":
			b.cancel(chatID, userID)
		}
		return
	}

	// Текст вне сценария поиска игнорируем.
	if !b.acceptsIngredients(userID) {
		return
	}

	b.runSearch(ctx, chatID, userID, msg.Text)
}

// acceptsIngredients решает, считать ли текстовое сообщение списком
// ингредиентов: либо взведён флаг после /search, либо открыта сессия
// просмотра результатов — новый список прямо во время листания
// начинает новый поиск.
func (b *Bot) acceptsIngredients(userID int64) bool {
	if b.sessions.ConsumeAwaiting(userID) {
		return true
	}
	s, ok := b.sessions.Get(userID)
	return ok && s.Mode() == session.ModeSearch
}

// runSearch выполняет поиск и открывает сессию просмотра результатов
func (b *Bot) runSearch(ctx context.Context, chatID, userID int64, ingredients string) {
	l := locales.Get()

	b.reply(chatID, fmt.Sprintf(l.Search.Progress, ingredients))

	found := b.recipes.Search(ctx, ingredients)
	if len(found) == 0 {
		b.reply(chatID, l.Search.NoResults)
		return
	}

	s := b.sessions.Start(userID, chatID, session.ModeSearch, found)
	b.render(ctx, s)
}

// startFavorites открывает сессию просмотра избранного
func (b *Bot) startFavorites(ctx context.Context, chatID, userID int64) {
	l := locales.Get()

	favs, err := b.db.Favorites(userID)
	if err != nil {
		b.log.Errorf("Не удалось получить избранное: %v", err)
		b.reply(chatID, l.Search.Failed)
		return
	}

	if len(favs) == 0 {
		b.reply(chatID, l.Favorites.Empty)
		return
	}

	s := b.sessions.Start(userID, chatID, session.ModeFavorites, favs)
	b.render(ctx, s)
}

// cancel принудительно завершает текущую сессию
func (b *Bot) cancel(chatID, userID int64) {
	l := locales.Get()

	if s, ok := b.sessions.Get(userID); ok {
		b.stripKeyboard(s.ChatID(), s.LastMessageID())
	}
	b.sessions.End(userID)

	b.reply(chatID, l.Cancel.Text)
}

// handleCallback обрабатывает нажатия на inline-кнопки
func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	// Отвечаем на callback чтобы убрать "часики"
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		b.log.Debugf("Не удалось ответить на callback: %v", err)
	}

	// Для нажатий на старых карточках Telegram не присылает само
	// сообщение — обрабатывать такое нажатие нечем.
	if callback.Message == nil {
		return
	}

	userID := callback.From.ID
	chatID := callback.Message.Chat.ID
	msgID := callback.Message.MessageID

	s, ok := b.sessions.Get(userID)
	if !ok {
		// Кнопки от завершённой сессии — просто убираем их.
		b.stripKeyboard(chatID, msgID)
		return
	}
	s.SetLastMessageID(msgID)

	status := b.dispatch(ctx, s, parseAction(callback.Data))
	if status == models.StatusEnd {
		b.sessions.End(userID)
	}
}

// dispatch применяет действие кнопки к сессии и сообщает,
// продолжается просмотр или закончен
func (b *Bot) dispatch(ctx context.Context, s *session.Session, act action) models.Status {
	l := locales.Get()

	switch act.kind {
	case actionPrev:
		s.Prev()
		b.render(ctx, s)

	case actionNext:
		s.Next()
		b.render(ctx, s)

	case actionToggleFavorite:
		b.toggleFavorite(s, act.recipeID)

	case actionRemove:
		if s.Mode() != session.ModeFavorites {
			return models.StatusContinue
		}
		if err := b.db.RemoveFavorite(act.recipeID, s.UserID()); err != nil {
			b.log.Errorf("Не удалось удалить из избранного: %v", err)
		}
		if s.Remove(act.recipeID) == 0 {
			b.reply(s.ChatID(), l.Favorites.NoneLeft)
			return models.StatusEnd
		}
		b.render(ctx, s)

	case actionDone:
		b.stripKeyboard(s.ChatID(), s.LastMessageID())
		if s.Mode() == session.ModeSearch {
			b.reply(s.ChatID(), l.Search.Finished)
		}
		return models.StatusEnd
	}

	return models.StatusContinue
}

// toggleFavorite добавляет или убирает рецепт из избранного
// и обновляет только клавиатуру текущей карточки
func (b *Bot) toggleFavorite(s *session.Session, recipeID int) {
	r, ok := s.Find(recipeID)
	if !ok {
		return
	}
	userID := s.UserID()

	fav, _ := b.db.IsFavorite(recipeID, userID)
	if fav {
		if err := b.db.RemoveFavorite(recipeID, userID); err != nil {
			b.log.Errorf("Не удалось удалить из избранного: %v", err)
			return
		}
	} else {
		if err := b.db.AddFavorite(r, userID); err != nil {
			b.log.Errorf("Не удалось добавить в избранное: %v", err)
			return
		}
	}

	cur, total := s.Position()
	nowFav, _ := b.db.IsFavorite(recipeID, userID)
	keyboard := searchKeyboard(recipeID, nowFav, cur, total)

	edit := tgbotapi.NewEditMessageReplyMarkup(s.ChatID(), s.LastMessageID(), keyboard)
	if _, err := b.api.Send(edit); err != nil {
		b.log.Debugf("Не удалось обновить клавиатуру: %v", err)
	}
}
