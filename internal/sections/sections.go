// Package sections splits résumé plain text into labeled sections using
// line-prefix heuristics. A line opens a section only when it starts with a
// known "keyword:" header; there is no fallback detection for blank-line
// breaks, indentation or all-caps headers. Documents that format headers
// differently will not segment correctly — that is a known limitation of the
// scheme, kept on purpose.
package sections

import (
	"strings"
	"unicode"
)

// Canonical section names, in output order.
const (
	PersonalInfo   = "personal_info"
	Experience     = "experience"
	Education      = "education"
	Skills         = "skills"
	Achievements   = "achievements"
	Certifications = "certifications"
	Projects       = "projects"
	References     = "references"
	Summary        = "summary"
)

// Map holds the accumulated, whitespace-normalized text per section.
// Every canonical section name is always present as a key, empty when the
// document never populated it.
type Map map[string]string

// headerRule binds a header keyword to its target section. Rules are
// evaluated in order and the first matching prefix wins.
type headerRule struct {
	key     string
	section string
}

var headerTable = []headerRule{
	{"experience", Experience},
	{"education", Education},
	{"skills", Skills},
	{"achievements", Achievements},
	{"accomplishments", Achievements},
	{"certifications", Certifications},
	{"projects", Projects},
	{"references", References},
	{"summary", Summary},
	{"profile", Summary},
	{"name", PersonalInfo},
	{"email", PersonalInfo},
	{"phone", PersonalInfo},
}

var sectionNames = []string{
	PersonalInfo,
	Experience,
	Education,
	Skills,
	Achievements,
	Certifications,
	Projects,
	References,
	Summary,
}

// Names returns the canonical section names in output order.
func Names() []string {
	out := make([]string, len(sectionNames))
	copy(out, sectionNames)
	return out
}

// Identify scans text line by line and assigns content to sections.
// Lines seen before any header line belong to no section and are dropped.
func Identify(text string) Map {
	m := make(Map, len(sectionNames))
	for _, name := range sectionNames {
		m[name] = ""
	}

	current := ""
	for line := range strings.Lines(text) {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		matched := false
		for _, rule := range headerTable {
			if !strings.HasPrefix(lower, rule.key+":") {
				continue
			}
			current = rule.section
			m[current] += stripHeader(trimmed, rule.key) + " "
			matched = true
			break
		}
		if !matched && current != "" {
			m[current] += trimmed + " "
		}
	}

	// Collapse internal whitespace runs and trim.
	for name, body := range m {
		m[name] = strings.Join(strings.Fields(body), " ")
	}
	return m
}

// stripHeader removes the leading "Key:" or "key:" spelling from a header
// line. Other casings (e.g. all caps) are matched as headers but keep their
// prefix in the accumulated text, mirroring the historical behavior.
func stripHeader(line, key string) string {
	for _, prefix := range []string{capitalize(key) + ":", key + ":"} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix))
		}
	}
	return strings.TrimSpace(line)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Reconstruct renders the map back into header-prefixed lines, one per
// populated section, such that re-running Identify on the output recovers
// the same contents per section.
func (m Map) Reconstruct() string {
	var b strings.Builder
	for _, name := range sectionNames {
		body := m[name]
		if body == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(headerFor(name))
		b.WriteString(": ")
		b.WriteString(body)
	}
	return b.String()
}

// headerFor picks a header keyword that maps back onto the given section.
// personal_info has no header of its own; "name" is its first alias.
func headerFor(section string) string {
	if section == PersonalInfo {
		return "name"
	}
	return section
}
