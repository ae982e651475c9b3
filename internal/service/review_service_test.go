package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/review-platform/internal/config"
	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/moderation"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
	"github.com/ignatzorin/review-platform/internal/store"
)

type mockEntityStore struct {
	mock.Mock
}

func (m *mockEntityStore) CreateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockEntityStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockEntityStore) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockEntityStore) CreateContent(ctx context.Context, content *models.Content) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *mockEntityStore) FindContentByTitle(ctx context.Context, title string) (*models.Content, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Content), args.Error(1)
}

func (m *mockEntityStore) ListContents(ctx context.Context) ([]models.Content, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Content), args.Error(1)
}

func (m *mockEntityStore) AppendReview(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil {
		review.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockEntityStore) GetReview(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *mockEntityStore) ListReviews(ctx context.Context) ([]models.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *mockEntityStore) AppendComment(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func newFilter(terms ...string) *moderation.TermFilter {
	filter := moderation.NewTermFilter(config.MatchModeSubstring)
	for _, term := range terms {
		_ = filter.AddTerm(term)
	}
	return filter
}

func TestReviewService_SubmitReview_Success(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter(), 0, 10)
	ctx := context.Background()

	authorID := uuid.New()
	content := &models.Content{ID: uuid.New(), Title: "ContentTitle"}

	st.On("FindContentByTitle", ctx, "ContentTitle").Return(content, nil)
	st.On("AppendReview", ctx, mock.AnythingOfType("*models.Review")).Return(nil)

	review, accepted, err := svc.SubmitReview(ctx, authorID, "ContentTitle", 10, "ReviewText")

	assert.NoError(t, err)
	assert.True(t, accepted)
	assert.NotNil(t, review)
	assert.Equal(t, "ReviewText", review.Text)
	assert.Equal(t, 10, review.Score)
	assert.Equal(t, content.ID, review.ContentID)
	assert.Equal(t, authorID, review.AuthorID)
}

func TestReviewService_SubmitReview_BlockedTerm(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter("Python"), 0, 10)
	ctx := context.Background()

	content := &models.Content{ID: uuid.New(), Title: "ContentTitle"}
	st.On("FindContentByTitle", ctx, "ContentTitle").Return(content, nil)

	review, accepted, err := svc.SubmitReview(ctx, uuid.New(), "ContentTitle", 10, "Python è il miglior linguaggio del mondo!")

	// Отклонение — штатный исход без ошибки и без записи в хранилище.
	assert.NoError(t, err)
	assert.False(t, accepted)
	assert.Nil(t, review)
	st.AssertNotCalled(t, "AppendReview", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_ScoreOutOfRange(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter(), 0, 10)
	ctx := context.Background()

	_, _, err := svc.SubmitReview(ctx, uuid.New(), "ContentTitle", 11, "текст")
	assert.True(t, apperror.IsValidation(err))

	_, _, err = svc.SubmitReview(ctx, uuid.New(), "ContentTitle", -1, "текст")
	assert.True(t, apperror.IsValidation(err))

	st.AssertNotCalled(t, "FindContentByTitle", mock.Anything, mock.Anything)
}

func TestReviewService_SubmitReview_EmptyText(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter(), 0, 10)

	_, _, err := svc.SubmitReview(context.Background(), uuid.New(), "ContentTitle", 5, "   ")
	assert.True(t, errors.Is(err, apperror.ErrEmptyReviewText))
}

func TestReviewService_SubmitReview_ContentNotFound(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter(), 0, 10)
	ctx := context.Background()

	st.On("FindContentByTitle", ctx, "нет такого").Return(nil, apperror.ErrContentNotFound)

	_, _, err := svc.SubmitReview(ctx, uuid.New(), "нет такого", 5, "текст")
	assert.True(t, apperror.IsNotFound(err))
	st.AssertNotCalled(t, "AppendReview", mock.Anything, mock.Anything)
}

func TestReviewService_AddComment_EmptyText(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter(), 0, 10)

	_, err := svc.AddComment(context.Background(), uuid.New(), uuid.New(), " ")
	assert.True(t, errors.Is(err, apperror.ErrEmptyCommentText))
}

func TestReviewService_AddComment_ReviewNotFound(t *testing.T) {
	st := new(mockEntityStore)
	svc := NewReviewService(st, newFilter(), 0, 10)
	ctx := context.Background()

	reviewID := uuid.New()
	st.On("GetReview", ctx, reviewID).Return(nil, apperror.ErrReviewNotFound)

	_, err := svc.AddComment(ctx, reviewID, uuid.New(), "комментарий")
	assert.True(t, apperror.IsNotFound(err))
}

// Сценарии поверх хранилища в памяти: путь рецензии от подачи до чтения.

func TestReviewService_RoundTrip(t *testing.T) {
	st := store.NewMemoryStore()
	filter := newFilter()
	svc := NewReviewService(st, filter, 0, 10)
	ctx := context.Background()

	content := &models.Content{Title: "ContentTitle", Description: "Description"}
	assert.NoError(t, st.CreateContent(ctx, content))

	review, accepted, err := svc.SubmitReview(ctx, uuid.New(), "ContentTitle", 10, "ReviewText")
	assert.NoError(t, err)
	assert.True(t, accepted)

	stored, err := svc.GetReview(ctx, review.ID)
	assert.NoError(t, err)
	assert.Equal(t, "ReviewText", stored.Text)
	assert.Equal(t, 10, stored.Score)
	assert.Equal(t, content.ID, stored.ContentID)

	comment, err := svc.AddComment(ctx, review.ID, uuid.New(), "CommentText")
	assert.NoError(t, err)

	stored, err = svc.GetReview(ctx, review.ID)
	assert.NoError(t, err)
	assert.Len(t, stored.Comments, 1)
	assert.Equal(t, "CommentText", stored.Comments[0].Text)
	assert.Equal(t, comment.ID, stored.Comments[0].ID)
}

func TestReviewService_RejectionLeavesStoreUnchanged(t *testing.T) {
	st := store.NewMemoryStore()
	filter := newFilter()
	svc := NewReviewService(st, filter, 0, 10)
	ctx := context.Background()

	assert.NoError(t, st.CreateContent(ctx, &models.Content{Title: "ContentTitle"}))

	_, accepted, err := svc.SubmitReview(ctx, uuid.New(), "ContentTitle", 10, "первая рецензия")
	assert.NoError(t, err)
	assert.True(t, accepted)

	before, err := svc.ListReviews(ctx)
	assert.NoError(t, err)

	assert.NoError(t, filter.AddTerm("Python"))

	_, accepted, err = svc.SubmitReview(ctx, uuid.New(), "ContentTitle", 10, "Python è il miglior linguaggio del mondo!")
	assert.NoError(t, err)
	assert.False(t, accepted)

	after, err := svc.ListReviews(ctx)
	assert.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestReviewService_RemovedTermDoesNotReplayRejection(t *testing.T) {
	st := store.NewMemoryStore()
	filter := newFilter("Python")
	svc := NewReviewService(st, filter, 0, 10)
	ctx := context.Background()

	assert.NoError(t, st.CreateContent(ctx, &models.Content{Title: "ContentTitle"}))

	_, accepted, err := svc.SubmitReview(ctx, uuid.New(), "ContentTitle", 10, "Python forever")
	assert.NoError(t, err)
	assert.False(t, accepted)

	// Удаление термина не возвращает ранее отклонённую рецензию:
	// решение фильтра принимается в момент подачи.
	filter.RemoveTerm("Python")

	reviews, err := svc.ListReviews(ctx)
	assert.NoError(t, err)
	assert.Empty(t, reviews)
}
