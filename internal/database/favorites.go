package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/YaroslavGliznitsaYa/recipebot/pkg/models"
)

// AddFavorite сохраняет снимок рецепта в избранное пользователя.
// Проверка на дубликат — ответственность вызывающего (IsFavorite).
func (db *DB) AddFavorite(r models.Recipe, userID int64) error {
	_, err := db.conn.Exec(`
		INSERT INTO favorites (recipe_id, title, image, used_ingredients, missed_ingredients, user_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Title, r.Image, r.UsedIngredientCount, r.MissedIngredientCount, userID,
	)
	if err != nil {
		return fmt.Errorf("не удалось добавить в избранное: %w", err)
	}
	return nil
}

// RemoveFavorite удаляет рецепт из избранного пользователя.
// Если записи нет — ничего не делает.
func (db *DB) RemoveFavorite(recipeID int, userID int64) error {
	_, err := db.conn.Exec(`
		DELETE FROM favorites
		WHERE recipe_id = ? AND user_id = ?`,
		recipeID, userID,
	)
	if err != nil {
		return fmt.Errorf("не удалось удалить из избранного: %w", err)
	}
	return nil
}

// Favorites возвращает все избранные рецепты пользователя,
// спроецированные обратно в форму Recipe.
func (db *DB) Favorites(userID int64) ([]models.Recipe, error) {
	rows, err := db.conn.Query(`
		SELECT recipe_id, title, image, used_ingredients, missed_ingredients
		FROM favorites
		WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("не удалось получить избранное: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var r models.Recipe
		if err := rows.Scan(&r.ID, &r.Title, &r.Image, &r.UsedIngredientCount, &r.MissedIngredientCount); err != nil {
			return nil, fmt.Errorf("не удалось прочитать запись избранного: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения избранного: %w", err)
	}

	return recipes, nil
}

// IsFavorite проверяет, сохранён ли рецепт в избранном пользователя.
func (db *DB) IsFavorite(recipeID int, userID int64) (bool, error) {
	var one int
	err := db.conn.QueryRow(`
		SELECT 1 FROM favorites
		WHERE recipe_id = ? AND user_id = ?
		LIMIT 1`,
		recipeID, userID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("не удалось проверить избранное: %w", err)
	}
	return true, nil
}
