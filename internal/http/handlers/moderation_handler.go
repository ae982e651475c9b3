package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/review-platform/internal/http/handlers/common"
	"github.com/ignatzorin/review-platform/internal/moderation"
)

// ModerationHandler предоставляет HTTP слой фасада модерации:
// управление запрещёнными терминами и просмотр очереди жалоб.
type ModerationHandler struct {
	facade *moderation.Facade
}

// NewModerationHandler создаёт хэндлер.
func NewModerationHandler(facade *moderation.Facade) *ModerationHandler {
	return &ModerationHandler{facade: facade}
}

// AddTerm POST /moderation/terms
func (h *ModerationHandler) AddTerm(c *gin.Context) {
	var req struct {
		Term string `json:"term" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.facade.AddBlockedTerm(req.Term); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"terms": h.facade.ListBlockedTerms()})
}

// RemoveTerm DELETE /moderation/terms/:term
func (h *ModerationHandler) RemoveTerm(c *gin.Context) {
	term := c.Param("term")
	h.facade.RemoveBlockedTerm(term)
	c.JSON(http.StatusOK, gin.H{"terms": h.facade.ListBlockedTerms()})
}

// ListTerms GET /moderation/terms
func (h *ModerationHandler) ListTerms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"terms": h.facade.ListBlockedTerms()})
}

// ListReports GET /moderation/reports
func (h *ModerationHandler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": h.facade.ListReports()})
}

// GetReport GET /moderation/reports/:id
func (h *ModerationHandler) GetReport(c *gin.Context) {
	reportID, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	report, err := h.facade.GetReport(reportID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, report)
}
