package models

import (
	"time"

	"github.com/google/uuid"
)

// Content описывает элемент каталога, на который пишутся рецензии.
type Content struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
