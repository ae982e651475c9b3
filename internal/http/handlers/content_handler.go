package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/review-platform/internal/http/handlers/common"
	"github.com/ignatzorin/review-platform/internal/service"
)

// ContentHandler предоставляет HTTP слой каталога контента.
type ContentHandler struct {
	contents *service.ContentService
}

// NewContentHandler создаёт хэндлер.
func NewContentHandler(contents *service.ContentService) *ContentHandler {
	return &ContentHandler{contents: contents}
}

// CreateContent POST /contents
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	content, err := h.contents.CreateContent(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, content)
}

// ListContents GET /contents
func (h *ContentHandler) ListContents(c *gin.Context) {
	contents, err := h.contents.ListContents(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contents": contents})
}
