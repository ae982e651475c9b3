package models

import (
	"time"

	"github.com/google/uuid"
)

// Review описывает рецензию пользователя на контент.
// Текст рецензии попадает в хранилище только после проверки фильтром.
type Review struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ContentID uuid.UUID `db:"content_id" json:"content_id"`
	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Score     int       `db:"score" json:"score"`
	Text      string    `db:"review_text" json:"review_text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Comments  []Comment `db:"-" json:"comments"`
}

// Comment описывает комментарий к рецензии.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ReviewID  uuid.UUID `db:"review_id" json:"review_id"`
	AuthorID  uuid.UUID `db:"author_id" json:"author_id"`
	Text      string    `db:"comment_text" json:"comment_text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
