package handlers

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type ResultHandler struct {
	screening services.ScreeningService
	evalRepo  repositories.EvaluationRepository
}

func NewResultHandler(screening services.ScreeningService, evalRepo repositories.EvaluationRepository) *ResultHandler {
	return &ResultHandler{
		screening: screening,
		evalRepo:  evalRepo,
	}
}

// HandleSummary handles GET /results
func (h *ResultHandler) HandleSummary(c *fiber.Ctx) error {
	return c.JSON(h.screening.Summary())
}

// HandleGetResult handles GET /results/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	evaluation, err := h.evalRepo.FindByID(c.Params("id"))
	if err != nil {
		return errors.WithHint(err, "Evaluation not found")
	}
	return c.JSON(evaluation)
}
