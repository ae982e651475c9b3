package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/review-platform/internal/dto"
	"github.com/ignatzorin/review-platform/internal/http/handlers/common"
	"github.com/ignatzorin/review-platform/internal/service"
)

// ReviewHandler предоставляет HTTP слой подачи и чтения рецензий.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler создаёт хэндлер.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// SubmitReview POST /reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req struct {
		ContentTitle string `json:"content_title" binding:"required"`
		Score        int    `json:"score"`
		Text         string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	review, accepted, err := h.reviews.SubmitReview(c.Request.Context(), userID, req.ContentTitle, req.Score, req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	// Отклонение фильтром — штатный ответ, а не ошибка.
	if !accepted {
		c.JSON(http.StatusOK, dto.SubmitReviewResponse{Accepted: false})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitReviewResponse{Accepted: true, Review: review})
}

// ListReviews GET /reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.reviews.ListReviews(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// GetReview GET /reviews/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	reviewID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	review, err := h.reviews.GetReview(c.Request.Context(), reviewID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// AddComment POST /reviews/:id/comments
func (h *ReviewHandler) AddComment(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	reviewID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	comment, err := h.reviews.AddComment(c.Request.Context(), reviewID, userID, req.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
