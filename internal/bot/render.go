package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/YaroslavGliznitsaYa/recipebot/internal/session"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/locales"
	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// render показывает карточку рецепта под курсором: удаляет предыдущую
// карточку (ошибка удаления глотается), запрашивает свежие детали
// и отправляет фото с подписью и клавиатурой
func (b *Bot) render(ctx context.Context, s *session.Session) {
	r := s.Current()
	detail := b.recipes.Detail(ctx, r.ID)
	caption := buildCaption(r, detail)

	cur, total := s.Position()
	var keyboard tgbotapi.InlineKeyboardMarkup
	if s.Mode() == session.ModeFavorites {
		keyboard = favoritesKeyboard(r.ID, cur, total)
	} else {
		fav, _ := b.db.IsFavorite(r.ID, s.UserID())
		keyboard = searchKeyboard(r.ID, fav, cur, total)
	}

	// Удаляем предыдущую карточку (если есть)
	if lastID := s.LastMessageID(); lastID > 0 {
		if _, err := b.api.Request(tgbotapi.NewDeleteMessage(s.ChatID(), lastID)); err != nil {
			b.log.Debugf("Не удалось удалить сообщение %d: %v", lastID, err)
		}
	}

	if r.Image != "" {
		photo := tgbotapi.NewPhoto(s.ChatID(), tgbotapi.FileURL(r.Image))
		photo.Caption = caption
		photo.ParseMode = tgbotapi.ModeHTML
		photo.ReplyMarkup = keyboard

		sent, err := b.api.Send(photo)
		if err == nil {
			s.SetLastMessageID(sent.MessageID)
			return
		}
		// Фото не отправилось — шлём карточку текстом.
		b.log.Debugf("Не удалось отправить фото: %v", err)
	}

	msg := tgbotapi.NewMessage(s.ChatID(), caption)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard

	sent, err := b.api.Send(msg)
	if err != nil {
		b.log.Errorf("Не удалось отправить карточку: %v", err)
		return
	}
	s.SetLastMessageID(sent.MessageID)
}

// buildCaption собирает подпись карточки, подставляя "Не указаны"
// вместо пустых деталей
func buildCaption(r models.Recipe, detail models.RecipeDetail) string {
	l := locales.Get()

	ingredients := detail.Ingredients
	if ingredients == "" {
		ingredients = l.Recipe.NotSpecified
	}
	instructions := detail.Instructions
	if instructions == "" {
		instructions = l.Recipe.NotSpecified
	}

	return fmt.Sprintf(l.Recipe.Caption, r.Title, ingredients, instructions,
		r.UsedIngredientCount, r.MissedIngredientCount)
}

// searchKeyboard — клавиатура карточки в режиме поиска
func searchKeyboard(recipeID int, isFavorite bool, current, total int) tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()

	favLabel := l.Buttons.FavAdd
	if isFavorite {
		favLabel = l.Buttons.FavAdded
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(favLabel, fmt.Sprintf("fav_%d", recipeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Prev, "prev"),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", current, total), "count"),
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Next, "next"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Done, "done"),
		),
	)
}

// favoritesKeyboard — клавиатура карточки в режиме избранного
func favoritesKeyboard(recipeID int, current, total int) tgbotapi.InlineKeyboardMarkup {
	l := locales.Get()

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Remove, fmt.Sprintf("remove_%d", recipeID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Prev, "fav_prev"),
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d/%d", current, total), "fav_count"),
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Next, "fav_next"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(l.Buttons.Done, "fav_done"),
		),
	)
}

// reply отправляет обычное текстовое сообщение
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Errorf("Не удалось отправить сообщение: %v", err)
	}
}

// stripKeyboard убирает кнопки у карточки завершённой сессии.
// Сообщение могло быть уже удалено — такая ошибка глотается.
func (b *Bot) stripKeyboard(chatID int64, messageID int) {
	if messageID <= 0 {
		return
	}
	empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, empty)
	if _, err := b.api.Send(edit); err != nil {
		b.log.Debugf("Не удалось убрать клавиатуру: %v", err)
	}
}
