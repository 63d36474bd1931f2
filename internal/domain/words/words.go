package words

import (
	"bufio"
	"os"
	"strings"

	errs "wordle_backend/internal/errors"
)

// List is the validated vocabulary: fixed-length lowercase words, order
// preserved for daily indexing. Read-only after Load, safe for
// concurrent use.
type List struct {
	words      []string
	index      map[string]struct{}
	wordLength int
}

// Load normalizes raw candidates (trim, lowercase) and keeps only
// alphabetic words of exactly wordLength letters. Returns
// ErrEmptyWordList when nothing survives filtering.
func Load(raw []string, wordLength int) (*List, error) {
	l := &List{
		index:      make(map[string]struct{}),
		wordLength: wordLength,
	}
	for _, candidate := range raw {
		w := strings.TrimSpace(strings.ToLower(candidate))
		if len(w) != wordLength || !isAlpha(w) {
			continue
		}
		if _, ok := l.index[w]; ok {
			continue
		}
		l.words = append(l.words, w)
		l.index[w] = struct{}{}
	}
	if len(l.words) == 0 {
		return nil, errs.ErrEmptyWordList
	}
	return l, nil
}

// LoadFile reads one word per line.
func LoadFile(path string, wordLength int) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Load(raw, wordLength)
}

func (l *List) Len() int {
	return len(l.words)
}

func (l *List) At(i int) string {
	return l.words[i]
}

func (l *List) Contains(w string) bool {
	_, ok := l.index[w]
	return ok
}

// WordLength reports the letter count every word in the list has.
func (l *List) WordLength() int {
	return l.wordLength
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
