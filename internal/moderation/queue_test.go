package moderation

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/review-platform/internal/models"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
)

func TestReportQueue_FileReport(t *testing.T) {
	queue := NewReportQueue()

	reviewID := uuid.New()
	reporterID := uuid.New()

	report, err := queue.FileReport(models.ReportTargetReview, reviewID, "ReportText", reporterID)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, reviewID, report.TargetID)
	assert.Equal(t, reporterID, report.ReporterID)
	assert.Equal(t, "ReportText", report.Reason)
	assert.Equal(t, models.ReportStatusOpen, report.Status)

	reports := queue.ListReports()
	assert.Len(t, reports, 1)
	assert.Equal(t, "ReportText", reports[0].Reason)
}

func TestReportQueue_FileReport_EmptyReason(t *testing.T) {
	queue := NewReportQueue()

	_, err := queue.FileReport(models.ReportTargetReview, uuid.New(), "   ", uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrEmptyReason))
	assert.Zero(t, queue.Len())
}

func TestReportQueue_FileReport_InvalidTargetKind(t *testing.T) {
	queue := NewReportQueue()

	_, err := queue.FileReport("order", uuid.New(), "причина", uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrInvalidTarget))
	assert.Zero(t, queue.Len())
}

func TestReportQueue_NoDeduplication(t *testing.T) {
	queue := NewReportQueue()

	targetID := uuid.New()
	reporterID := uuid.New()

	// Повторные жалобы на одну цель — отдельные записи.
	first, err := queue.FileReport(models.ReportTargetReview, targetID, "одна и та же причина", reporterID)
	assert.NoError(t, err)
	second, err := queue.FileReport(models.ReportTargetReview, targetID, "одна и та же причина", reporterID)
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, queue.ListReports(), 2)
}

func TestReportQueue_Accumulation_Order(t *testing.T) {
	queue := NewReportQueue()

	kinds := []string{
		models.ReportTargetReview,
		models.ReportTargetComment,
		models.ReportTargetContent,
		models.ReportTargetUser,
		models.ReportTargetReview,
	}

	for i, kind := range kinds {
		_, err := queue.FileReport(kind, uuid.New(), fmt.Sprintf("причина %d", i), uuid.New())
		assert.NoError(t, err)
	}

	reports := queue.ListReports()
	assert.Len(t, reports, len(kinds))
	for i := range reports {
		assert.Equal(t, fmt.Sprintf("причина %d", i), reports[i].Reason)
		assert.Equal(t, kinds[i], reports[i].TargetKind)
	}
}

func TestReportQueue_ListReports_Snapshot(t *testing.T) {
	queue := NewReportQueue()

	_, err := queue.FileReport(models.ReportTargetUser, uuid.New(), "причина", uuid.New())
	assert.NoError(t, err)

	reports := queue.ListReports()
	reports[0].Reason = "подменили"

	assert.Equal(t, "причина", queue.ListReports()[0].Reason)
}

func TestReportQueue_GetReport(t *testing.T) {
	queue := NewReportQueue()

	filed, err := queue.FileReport(models.ReportTargetComment, uuid.New(), "оскорбление", uuid.New())
	assert.NoError(t, err)

	got, err := queue.GetReport(filed.ID)
	assert.NoError(t, err)
	assert.Equal(t, filed.ID, got.ID)
	assert.Equal(t, "оскорбление", got.Reason)

	_, err = queue.GetReport(uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrReportNotFound))
}

func TestReportQueue_ConcurrentFiling(t *testing.T) {
	queue := NewReportQueue()

	const workers = 20
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := queue.FileReport(models.ReportTargetReview, uuid.New(), "конкурентная причина", uuid.New())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	reports := queue.ListReports()
	assert.Len(t, reports, workers*perWorker)

	seen := make(map[uuid.UUID]struct{}, len(reports))
	for _, report := range reports {
		_, dup := seen[report.ID]
		assert.False(t, dup)
		seen[report.ID] = struct{}{}
	}
}

type capturingPublisher struct {
	mu      sync.Mutex
	reports []models.Report
}

func (p *capturingPublisher) PublishReport(report models.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reports = append(p.reports, report)
}

func TestReportQueue_PublishesToFeed(t *testing.T) {
	queue := NewReportQueue()
	publisher := &capturingPublisher{}
	queue.SetPublisher(publisher)

	filed, err := queue.FileReport(models.ReportTargetReview, uuid.New(), "причина", uuid.New())
	assert.NoError(t, err)

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	assert.Len(t, publisher.reports, 1)
	assert.Equal(t, filed.ID, publisher.reports[0].ID)
}
