package handlers

import (
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

const internalErrorMessage = "Something went wrong. Please try again."

// ErrorHandler renders every error returned by a handler as
// {"error": ..., "code": ...}. Known failures show their user-facing hint;
// anything unexpected is logged and reported generically.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)

		message := errors.FlattenHints(err)
		if message == "" {
			message = err.Error()
		}

		if code == fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			message = internalErrorMessage
		} else {
			logger.Debug("request rejected",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": message,
			"code":  code,
		})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrExtractionFailed), errors.Is(err, services.ErrEmptyText):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, repositories.ErrJobNotFound), errors.Is(err, repositories.ErrEvaluationNotFound):
		return fiber.StatusNotFound
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
