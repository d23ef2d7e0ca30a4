package handlers

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"alfredoptarigan/resume-screener/internal/services"
)

var ErrFileTooLarge = errors.New("uploaded file too large")

// upload is one file taken from a multipart form.
type upload struct {
	Filename string
	Data     []byte
}

// readUpload returns the named form file, or a zero upload when the request
// carries none. Files above maxFileSize are rejected before being read.
func readUpload(c *fiber.Ctx, field string, maxFileSize int64) (upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return upload{}, nil
		}
		return upload{}, errors.WithHint(
			errors.Mark(errors.Wrap(err, "failed to parse multipart form"), services.ErrInvalidInput),
			"Failed to read the uploaded form.",
		)
	}

	if fh.Size > maxFileSize {
		return upload{}, errors.WithHintf(
			errors.Mark(errors.Newf("%s is %d bytes", fh.Filename, fh.Size), ErrFileTooLarge),
			"File too large. Max size: %d bytes", maxFileSize,
		)
	}

	f, err := fh.Open()
	if err != nil {
		return upload{}, errors.Wrapf(err, "failed to open uploaded file %s", fh.Filename)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return upload{}, errors.Wrapf(err, "failed to read uploaded file %s", fh.Filename)
	}

	return upload{Filename: fh.Filename, Data: data}, nil
}
