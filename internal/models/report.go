package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы сущностей, на которые можно подать жалобу.
const (
	ReportTargetReview  = "review"
	ReportTargetComment = "comment"
	ReportTargetContent = "content"
	ReportTargetUser    = "user"
)

// Статусы жалобы. Базовый сценарий оставляет все жалобы открытыми,
// закрытие относится к будущему слою модерации.
const (
	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"
)

// Report описывает жалобу на сущность платформы. Ссылка на цель слабая:
// жалоба остаётся валидной, даже если цель позже удалена.
type Report struct {
	ID         uuid.UUID `json:"id"`
	ReporterID uuid.UUID `json:"reporter_id"`
	TargetKind string    `json:"target_kind"`
	TargetID   uuid.UUID `json:"target_id"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
