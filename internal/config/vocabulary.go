package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Vocabulary holds the keyword lists and heading patterns the parsers work from.
type Vocabulary struct {
	Version               int      `yaml:"version" toml:"version"`
	ResumeSkills          []string `yaml:"resume_skills" toml:"resume_skills"`
	JobFallbackSkills     []string `yaml:"job_fallback_skills" toml:"job_fallback_skills"`
	Degrees               []string `yaml:"degrees" toml:"degrees"`
	Headings              Headings `yaml:"headings" toml:"headings"`
	ExperienceRequirement []string `yaml:"experience_requirement" toml:"experience_requirement"`
}

type Headings struct {
	ResumeSkills     []string `yaml:"resume_skills" toml:"resume_skills"`
	ResumeExperience []string `yaml:"resume_experience" toml:"resume_experience"`
	ResumeProjects   []string `yaml:"resume_projects" toml:"resume_projects"`
	JobTitle         []string `yaml:"job_title" toml:"job_title"`
	MustHave         []string `yaml:"must_have" toml:"must_have"`
	GoodToHave       []string `yaml:"good_to_have" toml:"good_to_have"`
}

// Patterns are the compiled forms of a Vocabulary's headings. Every slice is
// tried in order and the first match wins.
type Patterns struct {
	ResumeSkills          []*regexp.Regexp
	ResumeExperience      []*regexp.Regexp
	ResumeProjects        []*regexp.Regexp
	JobTitle              []*regexp.Regexp
	MustHave              []*regexp.Regexp
	GoodToHave            []*regexp.Regexp
	ExperienceRequirement []*regexp.Regexp
}

const (
	sectionSuffix = `\s*:?\s*([^\n]+(?:\n[^\n]*)*?)(?:\n\s*\n|\z)`
	lineSuffix    = `\s*:?\s*([^\n]+)`
)

// DefaultVocabulary returns the vocabulary compiled into the binary.
func DefaultVocabulary() (*Vocabulary, error) {
	return ParseVocabulary(defaultVocabulary)
}

// LoadVocabulary reads a YAML or TOML vocabulary file, falling back to the
// embedded one when path is empty.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vocabulary file %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseVocabularyTOML(data)
	}
	return ParseVocabulary(data)
}

// ParseVocabulary decodes a YAML vocabulary.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	return decodeVocabulary(data, yaml.Unmarshal)
}

// ParseVocabularyTOML decodes a TOML vocabulary with the same keys.
func ParseVocabularyTOML(data []byte) (*Vocabulary, error) {
	return decodeVocabulary(data, toml.Unmarshal)
}

func decodeVocabulary(data []byte, unmarshal func([]byte, any) error) (*Vocabulary, error) {
	var v Vocabulary
	if err := unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to parse vocabulary")
	}

	if v.Version <= 0 {
		return nil, errors.New("vocabulary version must be a positive number")
	}

	return &v, nil
}

// Compile turns every heading into a case-insensitive regular expression.
func (v *Vocabulary) Compile() (*Patterns, error) {
	var p Patterns
	var err error

	groups := []struct {
		name     string
		source   []string
		suffix   string
		target   *[]*regexp.Regexp
		required bool
	}{
		{"resume_skills", v.Headings.ResumeSkills, sectionSuffix, &p.ResumeSkills, true},
		{"resume_experience", v.Headings.ResumeExperience, sectionSuffix, &p.ResumeExperience, true},
		{"resume_projects", v.Headings.ResumeProjects, sectionSuffix, &p.ResumeProjects, true},
		{"job_title", v.Headings.JobTitle, lineSuffix, &p.JobTitle, false},
		{"must_have", v.Headings.MustHave, sectionSuffix, &p.MustHave, true},
		{"good_to_have", v.Headings.GoodToHave, sectionSuffix, &p.GoodToHave, false},
		{"experience_requirement", v.ExperienceRequirement, "", &p.ExperienceRequirement, false},
	}

	for _, g := range groups {
		if g.required && len(g.source) == 0 {
			return nil, errors.Newf("vocabulary v%d has no %s patterns", v.Version, g.name)
		}

		*g.target, err = compileAll(g.source, g.suffix)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s pattern", g.name)
		}
	}

	return &p, nil
}

func compileAll(patterns []string, suffix string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(`(?i)` + pattern + suffix)
		if err != nil {
			return nil, errors.Wrapf(err, "pattern %q", pattern)
		}
		if re.NumSubexp() < 1 {
			return nil, errors.Newf("pattern %q has no capture group", pattern)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}
