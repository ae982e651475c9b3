package service

import (
	"context"
	"fmt"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/store"
	"github.com/ignatzorin/review-platform/internal/validation"
)

// ContentService управляет каталогом контента.
type ContentService struct {
	store store.EntityStore
}

// NewContentService создаёт сервис контента.
func NewContentService(st store.EntityStore) *ContentService {
	return &ContentService{store: st}
}

// CreateContent добавляет элемент контента.
func (s *ContentService) CreateContent(ctx context.Context, title, description string) (*models.Content, error) {
	if err := validation.ValidateNonEmpty("название", title); err != nil {
		return nil, fmt.Errorf("content service: %w", err)
	}
	if err := validation.ValidateLength("название", title, validation.MinContentTitleLength, validation.MaxContentTitleLength); err != nil {
		return nil, fmt.Errorf("content service: %w", err)
	}
	if err := validation.ValidateLength("описание", description, 0, validation.MaxDescriptionLength); err != nil {
		return nil, fmt.Errorf("content service: %w", err)
	}

	content := &models.Content{
		Title:       title,
		Description: description,
	}
	if err := s.store.CreateContent(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// ListContents возвращает каталог в порядке добавления.
func (s *ContentService) ListContents(ctx context.Context) ([]models.Content, error) {
	return s.store.ListContents(ctx)
}

// FindByTitle ищет контент по точному названию.
func (s *ContentService) FindByTitle(ctx context.Context, title string) (*models.Content, error) {
	return s.store.FindContentByTitle(ctx, title)
}
