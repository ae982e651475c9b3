package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/http/handlers/common"
	"github.com/ignatzorin/review-platform/internal/moderation"
)

// ReportHandler предоставляет HTTP слой подачи жалоб. Жалобы подаются
// напрямую в очередь, просмотр — через фасад модерации.
type ReportHandler struct {
	queue *moderation.ReportQueue
}

// NewReportHandler создаёт хэндлер.
func NewReportHandler(queue *moderation.ReportQueue) *ReportHandler {
	return &ReportHandler{queue: queue}
}

// FileReport POST /reports
func (h *ReportHandler) FileReport(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req struct {
		TargetKind string `json:"target_kind" binding:"required"`
		TargetID   string `json:"target_id" binding:"required,uuid"`
		Reason     string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	targetID, _ := uuid.Parse(req.TargetID)
	report, err := h.queue.FileReport(req.TargetKind, targetID, req.Reason, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, report)
}
