package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/moderation"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
	"github.com/ignatzorin/review-platform/internal/store"
)

// ReviewService — единственная точка, через которую рецензии попадают
// в хранилище. Перед записью текст проверяется фильтром запрещённых
// терминов; отклонение фильтром — штатный исход, а не ошибка.
type ReviewService struct {
	store    store.EntityStore
	filter   *moderation.TermFilter
	scoreMin int
	scoreMax int
}

// NewReviewService создаёт сервис рецензий с границами допустимой оценки.
func NewReviewService(st store.EntityStore, filter *moderation.TermFilter, scoreMin, scoreMax int) *ReviewService {
	return &ReviewService{
		store:    st,
		filter:   filter,
		scoreMin: scoreMin,
		scoreMax: scoreMax,
	}
}

// SubmitReview проверяет и записывает рецензию. Возвращает accepted=false
// без ошибки, если текст содержит запрещённый термин; хранилище при этом
// не меняется. Проверка фильтра и запись выполняются как одна критическая
// секция относительно изменений списка терминов.
func (s *ReviewService) SubmitReview(ctx context.Context, authorID uuid.UUID, contentTitle string, score int, text string) (review *models.Review, accepted bool, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, false, apperror.ErrEmptyReviewText
	}
	if score < s.scoreMin || score > s.scoreMax {
		return nil, false, apperror.Validationf("оценка должна быть от %d до %d", s.scoreMin, s.scoreMax)
	}

	content, err := s.store.FindContentByTitle(ctx, contentTitle)
	if err != nil {
		return nil, false, err
	}

	candidate := &models.Review{
		ContentID: content.ID,
		AuthorID:  authorID,
		Score:     score,
		Text:      text,
	}

	accepted, err = s.filter.Admit(text, func() error {
		return s.store.AppendReview(ctx, candidate)
	})
	if err != nil {
		return nil, false, err
	}
	if !accepted {
		return nil, false, nil
	}
	return candidate, true, nil
}

// GetReview возвращает рецензию по идентификатору.
func (s *ReviewService) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	return s.store.GetReview(ctx, id)
}

// ListReviews возвращает все рецензии в порядке добавления.
func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.store.ListReviews(ctx)
}

// AddComment добавляет комментарий к существующей рецензии.
func (s *ReviewService) AddComment(ctx context.Context, reviewID, authorID uuid.UUID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperror.ErrEmptyCommentText
	}

	if _, err := s.store.GetReview(ctx, reviewID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: reviewID,
		AuthorID: authorID,
		Text:     text,
	}
	if err := s.store.AppendComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
