package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/review-platform/internal/config"
	"github.com/ignatzorin/review-platform/internal/dto"
	"github.com/ignatzorin/review-platform/internal/http/middleware"
	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/moderation"
	"github.com/ignatzorin/review-platform/internal/service"
	"github.com/ignatzorin/review-platform/internal/store"
)

func newReviewRouter(t *testing.T, terms ...string) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	filter := moderation.NewTermFilter(config.MatchModeSubstring)
	for _, term := range terms {
		assert.NoError(t, filter.AddTerm(term))
	}
	svc := service.NewReviewService(st, filter, 0, 10)
	handler := NewReviewHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set("userID", uuid.New())
		c.Next()
	})
	r.POST("/reviews", handler.SubmitReview)
	r.GET("/reviews/:id", handler.GetReview)
	return r, st
}

func TestReviewHandler_SubmitReview_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ReviewHandler{reviews: nil}
	r.POST("/reviews", handler.SubmitReview)

	req, _ := http.NewRequest("POST", "/reviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReviewHandler_GetReview_InvalidID(t *testing.T) {
	r, _ := newReviewRouter(t)

	req, _ := http.NewRequest("GET", "/reviews/invalid-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_SubmitReview_Accepted(t *testing.T) {
	r, st := newReviewRouter(t)
	assert.NoError(t, st.CreateContent(context.Background(), &models.Content{Title: "ContentTitle"}))

	body, _ := json.Marshal(gin.H{"content_title": "ContentTitle", "score": 10, "text": "ReviewText"})
	req, _ := http.NewRequest("POST", "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SubmitReviewResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Accepted)
	assert.Equal(t, "ReviewText", resp.Review.Text)
}

func TestReviewHandler_SubmitReview_Blocked(t *testing.T) {
	r, st := newReviewRouter(t, "Python")
	assert.NoError(t, st.CreateContent(context.Background(), &models.Content{Title: "ContentTitle"}))

	body, _ := json.Marshal(gin.H{"content_title": "ContentTitle", "score": 10, "text": "Python è il miglior linguaggio del mondo!"})
	req, _ := http.NewRequest("POST", "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Отклонённая рецензия — не ошибка клиента.
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SubmitReviewResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Accepted)
	assert.Nil(t, resp.Review)
}

func TestReviewHandler_SubmitReview_UnknownContent(t *testing.T) {
	r, _ := newReviewRouter(t)

	body, _ := json.Marshal(gin.H{"content_title": "нет такого", "score": 5, "text": "текст"})
	req, _ := http.NewRequest("POST", "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewHandler_SubmitReview_ScoreOutOfRange(t *testing.T) {
	r, st := newReviewRouter(t)
	assert.NoError(t, st.CreateContent(context.Background(), &models.Content{Title: "ContentTitle"}))

	body, _ := json.Marshal(gin.H{"content_title": "ContentTitle", "score": 11, "text": "текст"})
	req, _ := http.NewRequest("POST", "/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
