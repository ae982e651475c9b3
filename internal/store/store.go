package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/models"
)

// EntityStore — хранилище сущностей платформы: пользователей, контента,
// рецензий и комментариев. Операции только создают и читают записи,
// на отсутствующие ключи возвращается apperror с кодом NOT_FOUND.
type EntityStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	CreateContent(ctx context.Context, content *models.Content) error
	FindContentByTitle(ctx context.Context, title string) (*models.Content, error)
	ListContents(ctx context.Context) ([]models.Content, error)

	AppendReview(ctx context.Context, review *models.Review) error
	GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)

	AppendComment(ctx context.Context, comment *models.Comment) error
}
