package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/resume-screener/internal/config"
	"alfredoptarigan/resume-screener/internal/models"
)

const (
	defaultJobTitle       = "Software Developer"
	experienceUnspecified = "Not specified"
	maxTitleLineLength    = 80
	maxMustHaveSkills     = 15
	maxGoodToHaveSkills   = 10
)

type JobParser interface {
	Parse(text, company, location string) *models.JobDescription
}

type jobParser struct {
	vocab    *config.Vocabulary
	patterns *config.Patterns
	now      func() time.Time
}

func NewJobParser(vocab *config.Vocabulary, patterns *config.Patterns) JobParser {
	return &jobParser{
		vocab:    vocab,
		patterns: patterns,
		now:      time.Now,
	}
}

func (p *jobParser) Parse(text, company, location string) *models.JobDescription {
	text = NormalizeText(text)
	now := p.now()

	return &models.JobDescription{
		ID:                 contentID(now, company, truncateRunes(text, 100)),
		Title:              p.extractTitle(text),
		Company:            company,
		Location:           location,
		MustHaveSkills:     p.extractMustHaveSkills(text),
		GoodToHaveSkills:   p.extractGoodToHaveSkills(text),
		ExperienceRequired: p.extractExperienceRequirement(text),
		Description:        text,
		CreatedAt:          now,
	}
}

func (p *jobParser) extractTitle(text string) string {
	if title, ok := findSection(p.patterns.JobTitle, text); ok {
		return strings.TrimSpace(title)
	}

	if line := strings.SplitN(text, "\n", 2)[0]; utf8.RuneCountInString(line) <= maxTitleLineLength {
		return strings.TrimSpace(line)
	}

	return defaultJobTitle
}

// extractMustHaveSkills reads the first required-skills section found and
// falls back to a short keyword list when it yields nothing.
func (p *jobParser) extractMustHaveSkills(text string) []string {
	var skills []string
	if section, ok := findSection(p.patterns.MustHave, text); ok {
		skills = splitSkillTokens(section)
	}

	if len(skills) == 0 {
		lower := strings.ToLower(text)
		for _, skill := range p.vocab.JobFallbackSkills {
			skill = strings.ToLower(skill)
			if strings.Contains(lower, skill) {
				skills = append(skills, skill)
			}
		}
	}

	return capAt(uniqueInOrder(skills), maxMustHaveSkills)
}

func (p *jobParser) extractGoodToHaveSkills(text string) []string {
	skills := []string{}
	if section, ok := findSection(p.patterns.GoodToHave, text); ok {
		skills = splitSkillTokens(section)
	}
	return capAt(uniqueInOrder(skills), maxGoodToHaveSkills)
}

func (p *jobParser) extractExperienceRequirement(text string) string {
	if years, ok := findSection(p.patterns.ExperienceRequirement, text); ok {
		return years + " years"
	}
	return experienceUnspecified
}
