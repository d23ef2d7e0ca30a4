package services

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/models"
)

const sectionSnippetLength = 300

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

type ResumeParser interface {
	Parse(text string) *models.Resume
}

type resumeParser struct {
	vocab    *config.Vocabulary
	patterns *config.Patterns
	now      func() time.Time
}

func NewResumeParser(vocab *config.Vocabulary, patterns *config.Patterns) ResumeParser {
	return &resumeParser{
		vocab:    vocab,
		patterns: patterns,
		now:      time.Now,
	}
}

// Parse normalizes text and pulls the candidate's fields out of it. Only the
// ID depends on anything but the text.
func (p *resumeParser) Parse(text string) *models.Resume {
	text = NormalizeText(text)

	return &models.Resume{
		ID:         contentID(p.now(), truncateRunes(text, 100)),
		Name:       p.extractName(text),
		Email:      p.extractEmail(text),
		Skills:     p.extractSkills(text),
		Experience: p.extractExperience(text),
		Education:  p.extractEducation(text),
		Projects:   p.extractProjects(text),
		RawText:    text,
	}
}

// extractName only accepts a short first line. Normalized text has no line
// breaks, so in practice this is the whole résumé or nothing.
func (p *resumeParser) extractName(text string) string {
	line := firstLine(text)
	if len(strings.Fields(line)) <= 4 && utf8.RuneCountInString(line) > 2 {
		return line
	}
	return models.UnknownCandidate
}

func (p *resumeParser) extractEmail(text string) string {
	if email := emailPattern.FindString(text); email != "" {
		return email
	}
	return models.NoEmailFound
}

func (p *resumeParser) extractSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string

	for _, skill := range p.vocab.ResumeSkills {
		skill = strings.ToLower(skill)
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}

	if section, ok := findSection(p.patterns.ResumeSkills, text); ok {
		found = append(found, splitSkillTokens(section)...)
	}

	return newStringSet(found).sorted()
}

func (p *resumeParser) extractExperience(text string) []models.ExperienceEntry {
	section, ok := findSection(p.patterns.ResumeExperience, text)
	if !ok {
		return []models.ExperienceEntry{}
	}
	return []models.ExperienceEntry{{Description: truncateRunes(section, sectionSnippetLength)}}
}

func (p *resumeParser) extractEducation(text string) []models.EducationEntry {
	lower := strings.ToLower(text)
	education := []models.EducationEntry{}

	for _, degree := range p.vocab.Degrees {
		if strings.Contains(lower, strings.ToLower(degree)) {
			education = append(education, models.EducationEntry{Degree: strings.ToUpper(degree)})
		}
	}

	return education
}

func (p *resumeParser) extractProjects(text string) []models.ProjectEntry {
	section, ok := findSection(p.patterns.ResumeProjects, text)
	if !ok {
		return []models.ProjectEntry{}
	}
	return []models.ProjectEntry{{Description: truncateRunes(section, sectionSnippetLength)}}
}
