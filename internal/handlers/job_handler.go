package handlers

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type JobHandler struct {
	screening   services.ScreeningService
	jobRepo     repositories.JobRepository
	maxFileSize int64
}

func NewJobHandler(
	screening services.ScreeningService,
	jobRepo repositories.JobRepository,
	maxFileSize int64,
) *JobHandler {
	return &JobHandler{
		screening:   screening,
		jobRepo:     jobRepo,
		maxFileSize: maxFileSize,
	}
}

// HandleCreate handles POST /jobs. An uploaded file takes precedence over
// pasted text.
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	file, err := readUpload(c, "file", h.maxFileSize)
	if err != nil {
		return err
	}

	resp, err := h.screening.SubmitJob(services.JobInput{
		Company:  c.FormValue("company"),
		Location: c.FormValue("location"),
		Text:     c.FormValue("text"),
		Filename: file.Filename,
		Data:     file.Data,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// HandleList handles GET /jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	jobs := h.jobRepo.FindAll()
	return c.JSON(fiber.Map{
		"total": len(jobs),
		"jobs":  jobs,
	})
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	job, err := h.jobRepo.FindByID(c.Params("id"))
	if err != nil {
		return errors.WithHint(err, "Job description not found")
	}
	return c.JSON(job)
}
