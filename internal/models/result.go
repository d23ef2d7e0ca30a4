package models

type JobResponse struct {
	Job         *JobDescription `json:"job"`
	TextPreview string          `json:"text_preview,omitempty"`
}

type ResumeDetails struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	SkillsFound     int    `json:"skills_found"`
	ExperienceCount int    `json:"experience_entries"`
	EducationCount  int    `json:"education_entries"`
	ProjectCount    int    `json:"project_entries"`
}

func NewResumeDetails(r *Resume) ResumeDetails {
	return ResumeDetails{
		Name:            r.Name,
		Email:           r.Email,
		SkillsFound:     len(r.Skills),
		ExperienceCount: len(r.Experience),
		EducationCount:  len(r.Education),
		ProjectCount:    len(r.Projects),
	}
}

type EvaluateResponse struct {
	Evaluation *EvaluationResult `json:"evaluation"`
	Resume     ResumeDetails     `json:"resume"`
}

type ResultsSummary struct {
	Total  int          `json:"total"`
	High   int          `json:"high"`
	Medium int          `json:"medium"`
	Low    int          `json:"low"`
	Rows   []SummaryRow `json:"rows"`
}

type SummaryRow struct {
	EvaluationID  string  `json:"evaluation_id"`
	Job           string  `json:"job"`
	Candidate     string  `json:"candidate"`
	Score         float64 `json:"score"`
	Verdict       Verdict `json:"verdict"`
	MatchedSkills int     `json:"matched_skills"`
	MissingSkills int     `json:"missing_skills"`
}
