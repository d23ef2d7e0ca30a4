package services

import "alfredoptarigan/resume-screener/internal/models"

const unknownJob = "Unknown Job"

// BuildSummary aggregates evaluations for the results view, one row per
// evaluation in submission order.
func BuildSummary(evaluations []*models.EvaluationResult, jobs []*models.JobDescription) models.ResultsSummary {
	titles := make(map[string]string, len(jobs))
	for _, job := range jobs {
		titles[job.ID] = job.Title
	}

	summary := models.ResultsSummary{
		Total: len(evaluations),
		Rows:  make([]models.SummaryRow, 0, len(evaluations)),
	}

	for _, eval := range evaluations {
		switch eval.Verdict {
		case models.VerdictHigh:
			summary.High++
		case models.VerdictMedium:
			summary.Medium++
		case models.VerdictLow:
			summary.Low++
		}

		title, ok := titles[eval.JobID]
		if !ok {
			title = unknownJob
		}

		summary.Rows = append(summary.Rows, models.SummaryRow{
			EvaluationID:  eval.ID,
			Job:           title,
			Candidate:     eval.CandidateName,
			Score:         eval.RelevanceScore,
			Verdict:       eval.Verdict,
			MatchedSkills: len(eval.MatchedSkills),
			MissingSkills: len(eval.MissingSkills),
		})
	}

	return summary
}
