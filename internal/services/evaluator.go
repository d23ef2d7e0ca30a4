package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/models"
)

// Score weights. Skill coverage is proportional, the rest are flat bonuses.
const (
	mustHaveWeight   = 50.0
	goodToHaveWeight = 20.0
	experienceBonus  = 15.0
	educationBonus   = 10.0
	projectsBonus    = 5.0
	maxScore         = 100.0

	suggestedSkillCount = 3
)

const (
	suggestProjects   = "Add relevant projects to showcase your skills"
	suggestExperience = "Gain practical experience through internships or freelance work"
	suggestKeywords   = "Optimize your resume keywords for better ATS compatibility"
)

type EvaluatorService interface {
	Evaluate(resume *models.Resume, job *models.JobDescription) *models.EvaluationResult
}

type evaluatorService struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewEvaluatorService(logger *zap.Logger) EvaluatorService {
	return &evaluatorService{
		logger: logger,
		now:    time.Now,
	}
}

// Evaluate scores resume against job. The outcome depends only on the two
// records; the result ID and timestamp are the only time-derived fields.
func (e *evaluatorService) Evaluate(resume *models.Resume, job *models.JobDescription) *models.EvaluationResult {
	resumeSkills := newStringSet(resume.Skills)
	mustHave := newStringSet(job.MustHaveSkills)
	goodToHave := newStringSet(job.GoodToHaveSkills)

	matchedMustHave := resumeSkills.intersect(mustHave)
	matchedGoodToHave := resumeSkills.intersect(goodToHave)
	matched := matchedMustHave.union(matchedGoodToHave).sorted()
	missing := mustHave.minus(resumeSkills).sorted()

	score := 0.0
	if len(mustHave) > 0 {
		score += float64(len(matchedMustHave)) / float64(len(mustHave)) * mustHaveWeight
	}
	if len(goodToHave) > 0 {
		score += float64(len(matchedGoodToHave)) / float64(len(goodToHave)) * goodToHaveWeight
	}
	if len(resume.Experience) > 0 {
		score += experienceBonus
	}
	if len(resume.Education) > 0 {
		score += educationBonus
	}
	if len(resume.Projects) > 0 {
		score += projectsBonus
	}
	score = math.Max(0, math.Min(maxScore, score))

	rounded := roundTo2(score)
	now := e.now()
	result := &models.EvaluationResult{
		ID:             contentID(now, resume.ID, job.ID),
		ResumeID:       resume.ID,
		JobID:          job.ID,
		CandidateName:  resume.Name,
		RelevanceScore: rounded,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Verdict:        models.VerdictFor(score),
		Feedback:       buildFeedback(score, matched, missing),
		Suggestions:    buildSuggestions(missing, resume),
		CreatedAt:      now,
	}

	e.logger.Info("resume evaluated",
		zap.String("job_id", job.ID),
		zap.String("resume_id", resume.ID),
		zap.Float64("score", result.RelevanceScore),
		zap.String("verdict", string(result.Verdict)),
	)

	return result
}

func buildFeedback(score float64, matched, missing []string) string {
	feedback := fmt.Sprintf("Overall relevance score: %.1f%%", score)
	if len(matched) > 0 {
		feedback += fmt.Sprintf(" | Matched %d skills", len(matched))
	}
	if len(missing) > 0 {
		feedback += fmt.Sprintf(" | Missing %d key skills", len(missing))
	}
	return feedback
}

// buildSuggestions keeps a fixed order: missing skills, projects, experience,
// then the closing keyword tip.
func buildSuggestions(missing []string, resume *models.Resume) []string {
	var suggestions []string

	if len(missing) > 0 {
		suggestions = append(suggestions,
			"Learn these key skills: "+strings.Join(capAt(missing, suggestedSkillCount), ", "))
	}
	if len(resume.Projects) == 0 {
		suggestions = append(suggestions, suggestProjects)
	}
	if len(resume.Experience) == 0 {
		suggestions = append(suggestions, suggestExperience)
	}

	return append(suggestions, suggestKeywords)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
