// Package phrase scans text for a configured list of literal phrases and
// reports the occurrences found, preserving order of appearance. Matching is
// exact over token sequences: case-sensitive, and punctuation between words
// breaks a match.
package phrase

import (
	"log/slog"
	"strings"
	"unicode"
)

// Matcher holds the tokenized phrase patterns. Built once, read-only
// afterwards, safe for concurrent use.
type Matcher struct {
	phrases  []string
	patterns [][]string
	log      *slog.Logger
}

// DefaultPhrases returns the built-in phrase list used for résumé
// enrichment.
func DefaultPhrases() []string {
	return []string{"John Doe", "Software Engineer", "Senior Developer", "Python", "Java", "SQL"}
}

// New tokenizes the given phrases into match patterns. Phrases that produce
// no tokens are skipped and logged.
func New(phrases []string, log *slog.Logger) *Matcher {
	m := &Matcher{log: log}
	for _, p := range phrases {
		toks := tokenize(p)
		if len(toks) == 0 {
			log.Warn("skipping empty phrase pattern", "phrase", p)
			continue
		}
		m.phrases = append(m.phrases, p)
		m.patterns = append(m.patterns, toks)
	}
	return m
}

// Match returns every phrase occurrence found in text, ordered by the offset
// of the occurrence's first token. The same phrase is reported once per
// occurrence. Match never fails; unusable input yields an empty result.
func (m *Matcher) Match(text string) []string {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var found []string
	for i := range tokens {
		for p, pattern := range m.patterns {
			if matchesAt(tokens, i, pattern) {
				found = append(found, m.phrases[p])
			}
		}
	}
	return found
}

func matchesAt(tokens []string, at int, pattern []string) bool {
	if at+len(pattern) > len(tokens) {
		return false
	}
	for j, want := range pattern {
		if tokens[at+j] != want {
			return false
		}
	}
	return true
}

// tokenize splits text into word tokens (letter/digit runs) and single-rune
// punctuation tokens. Whitespace only separates; it produces no token.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()
	return tokens
}
