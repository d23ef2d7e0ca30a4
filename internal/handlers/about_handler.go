package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/services"
)

// Version is reported by the about and index routes.
const Version = "1.0.0"

type tier struct {
	Verdict string `json:"verdict"`
	Range   string `json:"range"`
	Meaning string `json:"meaning"`
}

var aboutPayload = fiber.Map{
	"name":    "Resume Relevance Check",
	"version": Version,
	"description": "Evaluates resumes against job descriptions with keyword-based scoring " +
		"and actionable feedback for recruiters.",
	"features": []string{
		"Upload PDF, DOCX or TXT files",
		"Extract skills, experience and qualifications",
		"Percentage relevance score with a verdict",
		"Matched and missing skills",
		"Suggestions for improvement",
	},
	"workflow": []string{
		"POST /api/v1/jobs to parse a job description",
		"POST /api/v1/evaluate to score a resume against it",
		"GET /api/v1/results to review every evaluation",
	},
	"scoring": []tier{
		{Verdict: "HIGH", Range: "75-100", Meaning: "Strong match, recommended for interview"},
		{Verdict: "MEDIUM", Range: "50-74", Meaning: "Partial match, consider for further screening"},
		{Verdict: "LOW", Range: "0-49", Meaning: "Poor match, likely not suitable"},
	},
	"supported_formats": services.SupportedExtensions,
}

// HandleAbout handles GET /about
func HandleAbout(c *fiber.Ctx) error {
	return c.JSON(aboutPayload)
}
