package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestJobParser(t *testing.T) *jobParser {
	t.Helper()
	vocab, patterns := testVocabulary(t)
	p := NewJobParser(vocab, patterns).(*jobParser)
	p.now = tickingClock()
	return p
}

func TestJobParserRequiredAndPreferredSections(t *testing.T) {
	p := newTestJobParser(t)

	job := p.Parse("Required Skills: Python, SQL, Docker\nGood to have: AWS", "Acme", "Remote")

	// Normalization removes the line break, so the must-have section swallows
	// the good-to-have heading.
	assert.Equal(t, []string{"python", "sql", "docker good to have: aws"}, job.MustHaveSkills)
	assert.Equal(t, []string{"aws"}, job.GoodToHaveSkills)
	assert.Equal(t, "Required Skills: Python, SQL, Docker Good to have: AWS", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "Not specified", job.ExperienceRequired)
	assert.Equal(t, "Required Skills: Python, SQL, Docker Good to have: AWS", job.Description)
	assert.NotEmpty(t, job.ID)
}

func TestJobParserTitle(t *testing.T) {
	p := newTestJobParser(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"job title heading", "Job Title: Platform Engineer", "Platform Engineer"},
		{"job title wins over an earlier role heading", "Role: ignored Job Title: Platform Engineer", "Platform Engineer"},
		{"position heading", "Position: Data Analyst", "Data Analyst"},
		{"short first line", "Backend Engineer wanted", "Backend Engineer wanted"},
		{"long text without heading", strings.Repeat("word ", 20), "Software Developer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.text, "Acme", "").Title)
		})
	}
}

func TestJobParserMustHaveFallback(t *testing.T) {
	p := newTestJobParser(t)

	job := p.Parse("We use Python and Docker daily with AWS", "Acme", "")

	assert.Equal(t, []string{"python", "aws", "docker"}, job.MustHaveSkills)
	assert.Empty(t, job.GoodToHaveSkills)
}

func TestJobParserMustHaveHeadingOrder(t *testing.T) {
	p := newTestJobParser(t)

	job := p.Parse("Mandatory: Rust. Must have: Kafka, Redis", "Acme", "")

	assert.Equal(t, []string{"kafka", "redis"}, job.MustHaveSkills)
}

func TestJobParserSkillCaps(t *testing.T) {
	p := newTestJobParser(t)

	var many []string
	for i := 0; i < 20; i++ {
		many = append(many, fmt.Sprintf("skill%02d", i))
	}

	job := p.Parse("Must have: "+strings.Join(many, ", "), "Acme", "")
	assert.Len(t, job.MustHaveSkills, 15)
	assert.Equal(t, "skill00", job.MustHaveSkills[0])

	job = p.Parse("Nice to have: "+strings.Join(many, ", "), "Acme", "")
	assert.Len(t, job.GoodToHaveSkills, 10)
}

func TestJobParserDeduplicatesSkills(t *testing.T) {
	p := newTestJobParser(t)

	job := p.Parse("Required Skills: Go, Kafka, kafka, KAFKA", "Acme", "")

	assert.Equal(t, []string{"kafka"}, job.MustHaveSkills)
}

func TestJobParserExperienceRequirement(t *testing.T) {
	p := newTestJobParser(t)

	tests := []struct {
		text string
		want string
	}{
		{"Requires 3+ years of experience in Go", "3+ years"},
		{"2-5 years experience preferred", "2-5 years"},
		{"Experience: 5 years minimum", "5 years"},
		{"Experience with Go", "Not specified"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse(tt.text, "Acme", "").ExperienceRequired)
		})
	}
}
