// Package text provides the low-level heuristics shared by the dimension
// analyzers: marker scanning, word counting, structure detection and
// role-definition extraction.
//
// Marker scanning is plain substring search. Callers lowercase a message
// once and pass the lowered form to every scan; the marker tables
// themselves are lowercase.
package text

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bulletRE   = regexp.MustCompile(`(?m)^\s*[-•]\s+`)
	numberedRE = regexp.MustCompile(`(?m)^\s*\d+\.\s`)

	// Role-definition patterns. Each captures the role clause up to a
	// period, comma, newline or end of text.
	rolePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bact as an? ([^.,\n]+)`),
		regexp.MustCompile(`(?i)\byou are an? ([^.,\n]+)`),
		regexp.MustCompile(`(?i)\bas an? ([^.,\n]+)`),
	}
)

// ContainsAny reports whether lowered contains at least one of the phrases.
func ContainsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CountWord counts whole-word occurrences of word in lowered, treating any
// non-letter, non-digit rune as a word separator.
func CountWord(lowered, word string) int {
	n := 0
	for _, f := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if f == word {
			n++
		}
	}
	return n
}

// HasBullets reports whether any line starts with a "-" or "•" bullet.
func HasBullets(s string) bool {
	return bulletRE.MatchString(s)
}

// HasNumbering reports whether any line starts with "N." numbering.
func HasNumbering(s string) bool {
	return numberedRE.MatchString(s)
}

// NewlineCount returns the number of newline characters in s.
func NewlineCount(s string) int {
	return strings.Count(s, "\n")
}

// HasParagraphBreaks reports whether s contains a blank-line break.
func HasParagraphBreaks(s string) bool {
	return strings.Contains(s, "\n\n")
}

// Roles extracts role clauses such as "act as a senior engineer" or
// "you are an expert editor". Matching is case-insensitive; clauses are
// returned trimmed and lowercased. Overlapping patterns each contribute
// their own capture, so a single phrase can yield more than one clause.
func Roles(s string) []string {
	var roles []string
	for _, re := range rolePatterns {
		for _, m := range re.FindAllStringSubmatch(s, -1) {
			role := strings.TrimSpace(strings.ToLower(m[1]))
			if role != "" {
				roles = append(roles, role)
			}
		}
	}
	return roles
}
