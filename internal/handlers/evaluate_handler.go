package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/services"
)

type EvaluationHandler struct {
	screening   services.ScreeningService
	maxFileSize int64
	logger      *zap.Logger
}

func NewEvaluationHandler(
	screening services.ScreeningService,
	maxFileSize int64,
	logger *zap.Logger,
) *EvaluationHandler {
	return &EvaluationHandler{
		screening:   screening,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	resume, err := readUpload(c, "resume", h.maxFileSize)
	if err != nil {
		return err
	}

	resp, err := h.screening.EvaluateResume(services.ResumeInput{
		JobID:    c.FormValue("job_id"),
		Filename: resume.Filename,
		Data:     resume.Data,
	})
	if err != nil {
		return err
	}

	h.logger.Info("resume evaluated",
		zap.String("evaluation_id", resp.Evaluation.ID),
		zap.String("job_id", resp.Evaluation.JobID),
		zap.String("file", resume.Filename),
		zap.Float64("score", resp.Evaluation.RelevanceScore),
		zap.String("verdict", string(resp.Evaluation.Verdict)),
	)

	return c.Status(fiber.StatusCreated).JSON(resp)
}
