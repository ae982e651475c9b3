package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
)

// PostgresStore — хранилище сущностей в PostgreSQL.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore создаёт хранилище поверх готового подключения.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// CreateUser сохраняет пользователя.
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO users (email, username, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, user.Email, user.Username, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil && isUniqueViolation(err) {
		return apperror.ErrEmailTaken
	}
	return err
}

// GetUserByEmail возвращает пользователя по email.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE lower(email) = lower($1)`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID возвращает пользователя по идентификатору.
func (s *PostgresStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateContent сохраняет элемент контента.
func (s *PostgresStore) CreateContent(ctx context.Context, content *models.Content) error {
	return s.db.QueryRowxContext(ctx, `
		INSERT INTO contents (title, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, content.Title, content.Description).
		Scan(&content.ID, &content.CreatedAt)
}

// FindContentByTitle ищет контент по точному названию.
func (s *PostgresStore) FindContentByTitle(ctx context.Context, title string) (*models.Content, error) {
	var content models.Content
	err := s.db.GetContext(ctx, &content, `SELECT * FROM contents WHERE title = $1`, title)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// ListContents возвращает контент в порядке добавления.
func (s *PostgresStore) ListContents(ctx context.Context) ([]models.Content, error) {
	contents := []models.Content{}
	err := s.db.SelectContext(ctx, &contents, `SELECT * FROM contents ORDER BY created_at ASC`)
	return contents, err
}

// AppendReview добавляет рецензию.
func (s *PostgresStore) AppendReview(ctx context.Context, review *models.Review) error {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO reviews (content_id, author_id, score, review_text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, review.ContentID, review.AuthorID, review.Score, review.Text).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return err
	}
	if review.Comments == nil {
		review.Comments = []models.Comment{}
	}
	return nil
}

// GetReview возвращает рецензию с комментариями.
func (s *PostgresStore) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := s.db.GetContext(ctx, &review, `SELECT * FROM reviews WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}

	review.Comments = []models.Comment{}
	err = s.db.SelectContext(ctx, &review.Comments, `
		SELECT * FROM comments WHERE review_id = $1 ORDER BY created_at ASC
	`, id)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListReviews возвращает рецензии с комментариями в порядке добавления.
func (s *PostgresStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.SelectContext(ctx, &reviews, `SELECT * FROM reviews ORDER BY created_at ASC`); err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	if err := s.db.SelectContext(ctx, &comments, `SELECT * FROM comments ORDER BY created_at ASC`); err != nil {
		return nil, err
	}

	byReview := make(map[uuid.UUID][]models.Comment, len(reviews))
	for _, comment := range comments {
		byReview[comment.ReviewID] = append(byReview[comment.ReviewID], comment)
	}
	for i := range reviews {
		reviews[i].Comments = byReview[reviews[i].ID]
		if reviews[i].Comments == nil {
			reviews[i].Comments = []models.Comment{}
		}
	}
	return reviews, nil
}

// AppendComment добавляет комментарий к существующей рецензии.
func (s *PostgresStore) AppendComment(ctx context.Context, comment *models.Comment) error {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO comments (review_id, author_id, comment_text)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, comment.ReviewID, comment.AuthorID, comment.Text).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil && isForeignKeyViolation(err) {
		return apperror.ErrReviewNotFound
	}
	return err
}

// Коды ошибок PostgreSQL: 23505 unique_violation, 23503 foreign_key_violation.
func isUniqueViolation(err error) bool {
	return hasPGCode(err, "23505")
}

func isForeignKeyViolation(err error) bool {
	return hasPGCode(err, "23503")
}

func hasPGCode(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
