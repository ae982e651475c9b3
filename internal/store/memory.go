package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
)

// MemoryStore — хранилище сущностей в памяти. Используется в тестах
// и как режим запуска без базы данных. Каждая операция атомарна
// относительно общего мьютекса.
type MemoryStore struct {
	mu           sync.RWMutex
	users        []models.User
	usersByEmail map[string]int
	usersByID    map[uuid.UUID]int

	contents       []models.Content
	contentByTitle map[string]int

	reviews     []models.Review
	reviewsByID map[uuid.UUID]int
}

// NewMemoryStore создаёт пустое хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByEmail:   make(map[string]int),
		usersByID:      make(map[uuid.UUID]int),
		contentByTitle: make(map[string]int),
		reviewsByID:    make(map[uuid.UUID]int),
	}
}

// CreateUser сохраняет пользователя, присваивая идентификатор.
func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := s.usersByEmail[email]; ok {
		return apperror.ErrEmailTaken
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	s.usersByEmail[email] = len(s.users)
	s.usersByID[user.ID] = len(s.users)
	s.users = append(s.users, *user)
	return nil
}

// GetUserByEmail возвращает пользователя по email.
func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.usersByEmail[strings.ToLower(email)]
	if !ok {
		return nil, apperror.ErrUserNotFound
	}
	user := s.users[pos]
	return &user, nil
}

// GetUserByID возвращает пользователя по идентификатору.
func (s *MemoryStore) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.usersByID[id]
	if !ok {
		return nil, apperror.ErrUserNotFound
	}
	user := s.users[pos]
	return &user, nil
}

// CreateContent сохраняет элемент контента.
func (s *MemoryStore) CreateContent(_ context.Context, content *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content.ID = uuid.New()
	content.CreatedAt = time.Now()

	s.contentByTitle[content.Title] = len(s.contents)
	s.contents = append(s.contents, *content)
	return nil
}

// FindContentByTitle ищет контент по точному названию.
func (s *MemoryStore) FindContentByTitle(_ context.Context, title string) (*models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.contentByTitle[title]
	if !ok {
		return nil, apperror.ErrContentNotFound
	}
	content := s.contents[pos]
	return &content, nil
}

// ListContents возвращает контент в порядке добавления.
func (s *MemoryStore) ListContents(_ context.Context) ([]models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Content, len(s.contents))
	copy(out, s.contents)
	return out, nil
}

// AppendReview добавляет рецензию.
func (s *MemoryStore) AppendReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = uuid.New()
	review.CreatedAt = time.Now()
	if review.Comments == nil {
		review.Comments = []models.Comment{}
	}

	s.reviewsByID[review.ID] = len(s.reviews)
	s.reviews = append(s.reviews, *review)
	return nil
}

// GetReview возвращает рецензию с комментариями.
func (s *MemoryStore) GetReview(_ context.Context, id uuid.UUID) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.reviewsByID[id]
	if !ok {
		return nil, apperror.ErrReviewNotFound
	}
	review := s.reviews[pos]
	review.Comments = append([]models.Comment{}, s.reviews[pos].Comments...)
	return &review, nil
}

// ListReviews возвращает рецензии в порядке добавления.
func (s *MemoryStore) ListReviews(_ context.Context) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Review, len(s.reviews))
	for i, review := range s.reviews {
		out[i] = review
		out[i].Comments = append([]models.Comment{}, review.Comments...)
	}
	return out, nil
}

// AppendComment добавляет комментарий к существующей рецензии.
func (s *MemoryStore) AppendComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.reviewsByID[comment.ReviewID]
	if !ok {
		return apperror.ErrReviewNotFound
	}

	comment.ID = uuid.New()
	comment.CreatedAt = time.Now()
	s.reviews[pos].Comments = append(s.reviews[pos].Comments, *comment)
	return nil
}
