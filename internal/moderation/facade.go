package moderation

import (
	"github.com/google/uuid"

	"github.com/ignatzorin/review-platform/internal/models"
)

// Facade — единая точка входа модератора: управление запрещёнными
// терминами и просмотр очереди жалоб. Никакой логики сверх делегирования.
// Удаление термина не пересматривает прошлые отклонения: отклонённая
// рецензия нигде не сохраняется, поэтому решение фильтра не воспроизводится.
type Facade struct {
	filter *TermFilter
	queue  *ReportQueue
}

// NewFacade создаёт фасад модерации.
func NewFacade(filter *TermFilter, queue *ReportQueue) *Facade {
	return &Facade{filter: filter, queue: queue}
}

// AddBlockedTerm добавляет запрещённый термин.
func (f *Facade) AddBlockedTerm(term string) error {
	return f.filter.AddTerm(term)
}

// RemoveBlockedTerm удаляет запрещённый термин.
func (f *Facade) RemoveBlockedTerm(term string) {
	f.filter.RemoveTerm(term)
}

// ListBlockedTerms возвращает список терминов в порядке добавления.
func (f *Facade) ListBlockedTerms() []string {
	return f.filter.ListTerms()
}

// ListReports возвращает все жалобы в порядке подачи.
func (f *Facade) ListReports() []models.Report {
	return f.queue.ListReports()
}

// GetReport возвращает жалобу по идентификатору.
func (f *Facade) GetReport(id uuid.UUID) (*models.Report, error) {
	return f.queue.GetReport(id)
}
