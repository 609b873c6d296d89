package vocab

import (
	"regexp"
	"strings"

	"github.com/elliotchance/pie/v2"
)

// Vocabulary is a fixed set of words and multi-word phrases matched with
// word-boundary semantics on both ends, so "book" does not match inside
// "booking". Phrases are compiled once; callers pass lowercased text.
type Vocabulary struct {
	patterns []*regexp.Regexp
}

func New(phrases ...string) Vocabulary {
	return Vocabulary{
		patterns: pie.Map(phrases, func(phrase string) *regexp.Regexp {
			return regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
		}),
	}
}

// MatchesAny reports whether any phrase of the vocabulary occurs in text as
// a whole word or whole phrase.
func (v Vocabulary) MatchesAny(text string) bool {
	for _, pattern := range v.patterns {
		if pattern.MatchString(text) {
			return true
		}
	}

	return false
}

// EqualsAnyTrimmed reports whether text, ignoring surrounding whitespace,
// exactly equals one of vals. Single-letter shortcuts go through here since
// substring matching would false-positive on almost anything.
func EqualsAnyTrimmed(text string, vals []string) bool {
	return pie.Contains(vals, strings.TrimSpace(text))
}

var (
	Affirm = New("yes", "yeah", "yep", "confirm", "sure", "ok", "okay", "please book", "book it")
	Negate = New("no", "nope", "cancel", "don't", "do not", "not now", "later")

	ShortYes = []string{"y"}
	ShortNo  = []string{"n"}
)
