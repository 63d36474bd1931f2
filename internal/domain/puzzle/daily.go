package puzzle

import (
	"sync"
	"time"

	"wordle_backend/internal/domain/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordForDate maps a calendar date to one deterministic word: the sum
// of the date's year, month and day components indexes the list
// modulo its size. Intentionally simple; changing the scheme would
// shift every client-visible daily word.
func WordForDate(date time.Time, list *words.List) string {
	y, m, d := date.UTC().Date()
	h := y + int(m) + d
	return list.At(h % list.Len())
}

// Selector memoizes the daily word per date key. The cache is purely a
// performance shortcut; a miss recomputes the identical value.
type Selector struct {
	list *words.List

	mu    sync.RWMutex
	cache map[string]string
}

func NewSelector(list *words.List) *Selector {
	return &Selector{
		list:  list,
		cache: make(map[string]string),
	}
}

func (s *Selector) WordForDate(date time.Time) string {
	key := DateKey(date)

	s.mu.RLock()
	w, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return w
	}

	w = WordForDate(date, s.list)

	s.mu.Lock()
	s.cache[key] = w
	s.mu.Unlock()

	return w
}
