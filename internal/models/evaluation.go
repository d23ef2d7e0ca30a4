package models

import "time"

type Verdict string

const (
	VerdictHigh   Verdict = "HIGH"
	VerdictMedium Verdict = "MEDIUM"
	VerdictLow    Verdict = "LOW"
)

// VerdictFor maps a relevance score onto its tier.
func VerdictFor(score float64) Verdict {
	switch {
	case score >= 75:
		return VerdictHigh
	case score >= 50:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

type EvaluationResult struct {
	ID             string    `json:"id"`
	ResumeID       string    `json:"resume_id"`
	JobID          string    `json:"job_id"`
	CandidateName  string    `json:"candidate_name"`
	RelevanceScore float64   `json:"relevance_score"`
	MatchedSkills  []string  `json:"matched_skills"`
	MissingSkills  []string  `json:"missing_skills"`
	Verdict        Verdict   `json:"verdict"`
	Feedback       string    `json:"feedback"`
	Suggestions    []string  `json:"suggestions"`
	CreatedAt      time.Time `json:"created_at"`
}
