package services

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var skillSeparator = regexp.MustCompile(`[,;|\n•\-]`)

// NormalizeText collapses every whitespace run to a single space and trims
// the ends. All parsing happens on normalized text.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// findSection returns the first capture group of the first pattern that
// matches.
func findSection(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// splitSkillTokens splits a section body into lowercase skill tokens longer
// than two characters.
func splitSkillTokens(section string) []string {
	var tokens []string
	for _, part := range skillSeparator.Split(section, -1) {
		token := strings.ToLower(strings.TrimSpace(part))
		if utf8.RuneCountInString(token) > 2 {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// previewText trims s and shortens it to limit runes, appending "..." when
// anything was cut.
func previewText(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return truncateRunes(s, limit) + "..."
}

func firstLine(text string) string {
	return strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
}

// uniqueInOrder drops repeated entries, keeping first occurrences.
func uniqueInOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func capAt(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

type stringSet map[string]struct{}

func newStringSet(items []string) stringSet {
	set := make(stringSet, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}

func (s stringSet) has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s stringSet) intersect(other stringSet) stringSet {
	out := make(stringSet)
	for item := range s {
		if other.has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

func (s stringSet) minus(other stringSet) stringSet {
	out := make(stringSet)
	for item := range s {
		if !other.has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

func (s stringSet) union(other stringSet) stringSet {
	out := make(stringSet, len(s)+len(other))
	for item := range s {
		out[item] = struct{}{}
	}
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

func (s stringSet) sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// contentID derives a record identifier from its content and creation time.
// It is a name-based (MD5) UUID, so equal inputs at the same instant collide.
func contentID(at time.Time, parts ...string) string {
	name := strings.Join(parts, "_") + "_" + at.Format(time.RFC3339Nano)
	return uuid.NewMD5(uuid.NameSpaceOID, []byte(name)).String()
}
