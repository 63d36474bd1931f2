package puzzle

import (
	"testing"
	"time"

	"wordle_backend/internal/domain/words"
)

func fixtureList(t *testing.T) *words.List {
	t.Helper()
	list, err := words.Load([]string{"apple", "brain", "crane", "delta", "eagle"}, 5)
	if err != nil {
		t.Fatal(err)
	}
	return list
}

func TestWordForDate(t *testing.T) {
	list := fixtureList(t)

	// 2024 + 1 + 10 = 2035, 2035 mod 5 = 0
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if got := WordForDate(date, list); got != "apple" {
		t.Errorf("WordForDate(2024-01-10) = %q, want %q", got, "apple")
	}

	// 2024 + 1 + 11 = 2036, 2036 mod 5 = 1
	next := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
	if got := WordForDate(next, list); got != "brain" {
		t.Errorf("WordForDate(2024-01-11) = %q, want %q", got, "brain")
	}
}

func TestWordForDateDeterministic(t *testing.T) {
	list := fixtureList(t)
	date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	first := WordForDate(date, list)
	for i := 0; i < 10; i++ {
		if got := WordForDate(date, list); got != first {
			t.Fatalf("WordForDate changed between calls: %q then %q", first, got)
		}
	}
}

func TestWordForDateIgnoresTimeOfDay(t *testing.T) {
	list := fixtureList(t)

	morning := time.Date(2024, 3, 7, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC)
	if WordForDate(morning, list) != WordForDate(evening, list) {
		t.Error("same calendar day produced different words")
	}
}

func TestSelectorCacheMatchesFreshComputation(t *testing.T) {
	list := fixtureList(t)
	sel := NewSelector(list)

	for day := 1; day <= 28; day++ {
		date := time.Date(2024, 2, day, 12, 0, 0, 0, time.UTC)
		fresh := WordForDate(date, list)
		if got := sel.WordForDate(date); got != fresh {
			t.Errorf("selector(%s) = %q, fresh = %q", DateKey(date), got, fresh)
		}
		// second call hits the cache
		if got := sel.WordForDate(date); got != fresh {
			t.Errorf("cached selector(%s) = %q, fresh = %q", DateKey(date), got, fresh)
		}
	}
}

func TestDateKey(t *testing.T) {
	date := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	if got := DateKey(date); got != "2024-01-02" {
		t.Errorf("DateKey = %q, want %q", got, "2024-01-02")
	}
}
