package moderation

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/ignatzorin/review-platform/internal/config"
	"github.com/ignatzorin/review-platform/internal/pkg/apperror"
)

// TermFilter хранит множество запрещённых терминов и классифицирует тексты.
// Сравнение регистронезависимое, исходное написание термина сохраняется
// для выдачи модератору.
type TermFilter struct {
	mu        sync.RWMutex
	matchMode string
	terms     []string       // исходное написание, порядок добавления
	index     map[string]int // нормализованный термин -> позиция в terms
}

// NewTermFilter создаёт фильтр с заданным режимом сопоставления.
func NewTermFilter(matchMode string) *TermFilter {
	if matchMode == "" {
		matchMode = config.MatchModeSubstring
	}
	return &TermFilter{
		matchMode: matchMode,
		index:     make(map[string]int),
	}
}

// AddTerm добавляет запрещённый термин. Повторное добавление того же
// термина (с точностью до регистра) не создаёт дубликат.
func (f *TermFilter) AddTerm(term string) error {
	display := strings.TrimSpace(term)
	normalized := strings.ToLower(display)
	if normalized == "" {
		return apperror.ErrEmptyTerm
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.index[normalized]; ok {
		return nil
	}
	f.index[normalized] = len(f.terms)
	f.terms = append(f.terms, display)
	return nil
}

// RemoveTerm удаляет термин по нормализованному совпадению.
// Отсутствующий термин не считается ошибкой.
func (f *TermFilter) RemoveTerm(term string) {
	normalized := strings.ToLower(strings.TrimSpace(term))

	f.mu.Lock()
	defer f.mu.Unlock()

	pos, ok := f.index[normalized]
	if !ok {
		return
	}

	f.terms = append(f.terms[:pos], f.terms[pos+1:]...)
	delete(f.index, normalized)
	// Сдвигаем позиции терминов, добавленных после удалённого.
	for k, v := range f.index {
		if v > pos {
			f.index[k] = v - 1
		}
	}
}

// ListTerms возвращает независимую копию списка терминов в порядке добавления.
func (f *TermFilter) ListTerms() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]string, len(f.terms))
	copy(out, f.terms)
	return out
}

// IsBlocked сообщает, содержит ли текст хотя бы один запрещённый термин.
// Пустой текст никогда не блокируется.
func (f *TermFilter) IsBlocked(text string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.blockedLocked(text)
}

// Admit проверяет текст и, если он проходит фильтр, выполняет commit,
// удерживая блокировку чтения. Так проверка и запись образуют одну
// критическую секцию: термин, добавленный параллельно, не может попасть
// между проверкой и записью.
func (f *TermFilter) Admit(text string, commit func() error) (bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.blockedLocked(text) {
		return false, nil
	}
	if err := commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (f *TermFilter) blockedLocked(text string) bool {
	if text == "" || len(f.terms) == 0 {
		return false
	}

	lowered := strings.ToLower(text)
	for normalized := range f.index {
		if f.matchMode == config.MatchModeWord {
			if containsWord(lowered, normalized) {
				return true
			}
			continue
		}
		if strings.Contains(lowered, normalized) {
			return true
		}
	}
	return false
}

// containsWord ищет term в text как целое слово: соседние символы
// не должны быть буквами или цифрами.
func containsWord(text, term string) bool {
	for from := 0; ; {
		idx := strings.Index(text[from:], term)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(term)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		from = start + 1
		if from >= len(text) {
			return false
		}
	}
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
