package moderation

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
)

// ReportPublisher получает каждую новую жалобу, например для рассылки
// подключённым модераторам.
type ReportPublisher interface {
	PublishReport(report models.Report)
}

// ReportQueue хранит жалобы в порядке подачи. Очередь только пополняется:
// жалобы не удаляются и не схлопываются, повторные жалобы на одну цель —
// отдельные записи.
type ReportQueue struct {
	mu        sync.Mutex
	reports   []models.Report
	index     map[uuid.UUID]int
	publisher ReportPublisher
}

// NewReportQueue создаёт пустую очередь жалоб.
func NewReportQueue() *ReportQueue {
	return &ReportQueue{
		index: make(map[uuid.UUID]int),
	}
}

// SetPublisher подключает рассылку новых жалоб.
func (q *ReportQueue) SetPublisher(p ReportPublisher) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.publisher = p
}

// FileReport регистрирует жалобу на сущность. Ссылка на цель слабая:
// существование цели на момент подачи не проверяется.
func (q *ReportQueue) FileReport(targetKind string, targetID uuid.UUID, reason string, reporterID uuid.UUID) (*models.Report, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperror.ErrEmptyReason
	}
	if !validTargetKind(targetKind) {
		return nil, apperror.ErrInvalidTarget
	}

	report := models.Report{
		ID:         uuid.New(),
		ReporterID: reporterID,
		TargetKind: targetKind,
		TargetID:   targetID,
		Reason:     reason,
		Status:     models.ReportStatusOpen,
		CreatedAt:  time.Now(),
	}

	q.mu.Lock()
	q.index[report.ID] = len(q.reports)
	q.reports = append(q.reports, report)
	publisher := q.publisher
	q.mu.Unlock()

	if publisher != nil {
		publisher.PublishReport(report)
	}

	return &report, nil
}

// ListReports возвращает независимый снимок всех жалоб в порядке подачи.
func (q *ReportQueue) ListReports() []models.Report {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.Report, len(q.reports))
	copy(out, q.reports)
	return out
}

// GetReport возвращает жалобу по идентификатору.
func (q *ReportQueue) GetReport(id uuid.UUID) (*models.Report, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	pos, ok := q.index[id]
	if !ok {
		return nil, apperror.ErrReportNotFound
	}
	report := q.reports[pos]
	return &report, nil
}

// Len возвращает количество поданных жалоб.
func (q *ReportQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.reports)
}

func validTargetKind(kind string) bool {
	switch kind {
	case models.ReportTargetReview, models.ReportTargetComment,
		models.ReportTargetContent, models.ReportTargetUser:
		return true
	}
	return false
}
