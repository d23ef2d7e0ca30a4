package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeText("  a\n\n b\t\tc \r\n"))
	assert.Equal(t, "", NormalizeText(" \n\t "))
}

func TestSplitSkillTokens(t *testing.T) {
	got := splitSkillTokens("Go, Python; SQL | Node-JS • Docker\nKubernetes")
	assert.Equal(t, []string{"python", "sql", "node", "docker", "kubernetes"}, got)
}

func TestFindSectionRunsToEndOfNormalizedText(t *testing.T) {
	_, patterns := testVocabulary(t)

	text := NormalizeText("Summary\nSkills: Go, Rust\n\nExperience: Acme")
	section, ok := findSection(patterns.ResumeSkills, text)

	assert.True(t, ok)
	assert.Equal(t, "Go, Rust Experience: Acme", section)
}

func TestFindSectionStopsAtBlankLine(t *testing.T) {
	re := regexp.MustCompile(`(?i)skills?` + `\s*:?\s*([^\n]+(?:\n[^\n]*)*?)(?:\n\s*\n|\z)`)

	section, ok := findSection([]*regexp.Regexp{re}, "Skills: Go\nRust\n\nExperience: Acme")

	assert.True(t, ok)
	assert.Equal(t, "Go\nRust", section)
}

func TestFindSectionNoMatch(t *testing.T) {
	_, patterns := testVocabulary(t)

	_, ok := findSection(patterns.GoodToHave, "nothing relevant here")
	assert.False(t, ok)
}

func TestStringSetOperations(t *testing.T) {
	a := newStringSet([]string{"Go", "python", "SQL"})
	b := newStringSet([]string{"sql", "rust"})

	assert.Equal(t, []string{"sql"}, a.intersect(b).sorted())
	assert.Equal(t, []string{"go", "python"}, a.minus(b).sorted())
	assert.Equal(t, []string{"go", "python", "rust", "sql"}, a.union(b).sorted())
}

func TestUniqueInOrderAndCap(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, uniqueInOrder([]string{"b", "a", "b", "c", "a"}))
	assert.Equal(t, []string{"b", "a"}, capAt([]string{"b", "a", "c"}, 2))
	assert.Equal(t, []string{"b"}, capAt([]string{"b"}, 2))
}

func TestContentID(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, contentID(at, "x"), contentID(at, "x"))
	assert.NotEqual(t, contentID(at, "x"), contentID(at.Add(time.Nanosecond), "x"))
	assert.NotEqual(t, contentID(at, "x"), contentID(at, "y"))
}

func TestPreviewText(t *testing.T) {
	assert.Equal(t, "", previewText("anything", 0))
	assert.Equal(t, "short", previewText("  short  ", 10))
	assert.Equal(t, "héll...", previewText("héllo world", 4))
	assert.Equal(t, "exact", previewText("exact", 5))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
	assert.Equal(t, "hé", truncateRunes("hé", 4))
}
