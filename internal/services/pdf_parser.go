package services

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

type PDFParserService interface {
	ExtractText(filePath string) (string, error)
}

type pdfParserService struct {
	logger *zap.Logger
}

func NewPDFParserService(logger *zap.Logger) PDFParserService {
	return &pdfParserService{logger: logger}
}

// ExtractText tries a row-ordered pass first and falls back to the plain
// page-by-page text when it fails or finds nothing.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	text, err := p.extractByRows(filePath)
	if err == nil {
		return text, nil
	}

	p.logger.Debug("layout-aware PDF extraction failed, falling back to plain text",
		zap.String("file", filePath),
		zap.Error(err),
	)

	text, plainErr := p.extractPlain(filePath)
	if plainErr != nil {
		return "", errors.WithSecondaryError(plainErr, err)
	}

	return text, nil
}

func (p *pdfParserService) extractByRows(filePath string) (text string, err error) {
	defer recoverPDF(&err)

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF")
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", errors.Wrapf(err, "failed to read rows of page %d", pageIndex)
		}

		for _, row := range rows {
			if !positioned(row.Content) {
				return "", errors.Newf("page %d has text runs without positions", pageIndex)
			}
			textBuilder.WriteString(joinRow(row.Content))
			textBuilder.WriteString("\n")
		}
	}

	return nonEmpty(textBuilder.String())
}

func (p *pdfParserService) extractPlain(filePath string) (text string, err error) {
	defer recoverPDF(&err)

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open PDF")
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.Debug("skipping unreadable PDF page", zap.Int("page", pageIndex), zap.Error(err))
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return nonEmpty(textBuilder.String())
}

// positioned reports whether the runs of a row were placed by text matrices.
// The reader only tracks Tm, so lines laid out with Td or T* all land on the
// same coordinates and cannot be ordered.
func positioned(content pdf.TextHorizontal) bool {
	seen := make(map[float64]bool, len(content))
	for _, t := range content {
		if t.S == "" {
			continue
		}
		if seen[t.X] {
			return false
		}
		seen[t.X] = true
	}
	return true
}

// joinRow glues the runs of one row back together, inserting a space where
// the runs are apart or where there is no width to measure the gap with.
func joinRow(content pdf.TextHorizontal) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range content {
		t := content[i]
		if t.S == "" {
			continue
		}
		if prev != nil && runsApart(*prev, t) &&
			!strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
			b.WriteString(" ")
		}
		b.WriteString(t.S)
		prev = &content[i]
	}
	return b.String()
}

func runsApart(prev, t pdf.Text) bool {
	if prev.W == 0 || t.X <= prev.X {
		return true
	}
	threshold := prev.FontSize * 0.2
	if threshold <= 0 {
		threshold = 1
	}
	return t.X-(prev.X+prev.W) > threshold
}

func nonEmpty(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no text content found in PDF")
	}
	return text, nil
}

// recoverPDF turns panics from malformed documents into errors.
func recoverPDF(err *error) {
	if r := recover(); r != nil {
		*err = errors.Newf("PDF reader panicked: %s", fmt.Sprint(r))
	}
}
