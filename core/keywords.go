package core

import (
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

var timeKeywords = []struct {
	word    string
	resolve func(now time.Time) Time
}{
	{"now", TimeOf},
	{"noon", func(time.Time) Time { return NewTime(12, 0, 0) }},
	{"midnight", func(time.Time) Time { return NewTime(0, 0, 0) }},
}

// ResolveInput reads typed text: a clock or date string first, then a
// keyword such as "noon", tolerating one typo in keywords longer than three
// letters.
func ResolveInput(text string, now time.Time) Time {
	if t := ParseTime(text); !t.IsZero() {
		return t
	}
	word := strings.ToLower(strings.TrimSpace(text))
	if word == "" {
		return Time{}
	}
	for _, kw := range timeKeywords {
		if word == kw.word {
			return kw.resolve(now)
		}
	}
	for _, kw := range timeKeywords {
		if len(kw.word) > 3 && levenshtein.ComputeDistance(word, kw.word) <= 1 {
			return kw.resolve(now)
		}
	}
	return Time{}
}
