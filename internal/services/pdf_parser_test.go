package services

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJoinRow(t *testing.T) {
	tests := []struct {
		name    string
		content pdf.TextHorizontal
		want    string
	}{
		{
			name: "adjacent glyphs stay together",
			content: pdf.TextHorizontal{
				{S: "Py", X: 10, W: 10, FontSize: 10},
				{S: "thon", X: 20.5, W: 20, FontSize: 10},
			},
			want: "Python",
		},
		{
			name: "wide gap becomes a space",
			content: pdf.TextHorizontal{
				{S: "Jane", X: 10, W: 20, FontSize: 10},
				{S: "Doe", X: 35, W: 15, FontSize: 10},
			},
			want: "Jane Doe",
		},
		{
			name: "existing space is not doubled",
			content: pdf.TextHorizontal{
				{S: "Skills: ", X: 10, W: 40, FontSize: 10},
				{S: "Go", X: 60, W: 10, FontSize: 10},
			},
			want: "Skills: Go",
		},
		{
			name: "runs without widths are separated",
			content: pdf.TextHorizontal{
				{S: "Skills:", X: 72},
				{S: "Python, SQL", X: 120},
			},
			want: "Skills: Python, SQL",
		},
		{
			name: "runs that do not advance are separated",
			content: pdf.TextHorizontal{
				{S: "Jane", X: 10, W: 20, FontSize: 10},
				{S: "Doe", X: 10, W: 15, FontSize: 10},
			},
			want: "Jane Doe",
		},
		{
			name: "empty runs are skipped",
			content: pdf.TextHorizontal{
				{S: "", X: 0},
				{S: "Jane", X: 10, W: 20, FontSize: 10},
				{S: "", X: 30},
				{S: "Doe", X: 30.5, W: 15, FontSize: 10},
			},
			want: "JaneDoe",
		},
		{
			name: "missing font size",
			content: pdf.TextHorizontal{
				{S: "a", X: 0, W: 1},
				{S: "b", X: 1.5, W: 1},
				{S: "c", X: 5, W: 1},
			},
			want: "ab c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinRow(tt.content))
		})
	}
}

func TestNonEmpty(t *testing.T) {
	_, err := nonEmpty(" \n\t")
	assert.Error(t, err)

	text, err := nonEmpty("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestPDFParserRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nnot really a pdf"), 0600))

	text, err := NewPDFParserService(zap.NewNop()).ExtractText(path)

	assert.Empty(t, text)
	assert.Error(t, err)
}

func TestRecoverPDF(t *testing.T) {
	run := func() (err error) {
		defer recoverPDF(&err)
		panic("malformed xref")
	}

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed xref")
}

func TestPositioned(t *testing.T) {
	assert.True(t, positioned(pdf.TextHorizontal{{S: "a", X: 10}, {S: "b", X: 20}}))
	assert.True(t, positioned(pdf.TextHorizontal{{S: "", X: 0}, {S: "a", X: 0}}))
	assert.False(t, positioned(pdf.TextHorizontal{{S: "a", X: 0}, {S: "b", X: 0}}))
}

// buildPDF returns a one-page Helvetica document drawing the given content
// stream, with a correct xref table.
func buildPDF(content string) []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
			"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// Every line placed with its own text matrix.
const matrixPositionedContent = "BT /F1 12 Tf " +
	"1 0 0 1 72 720 Tm (Jane Doe) Tj " +
	"1 0 0 1 72 700 Tm (jane@example.com) Tj " +
	"1 0 0 1 72 680 Tm (Skills:) Tj " +
	"1 0 0 1 120 680 Tm (Python, SQL) Tj ET"

// Lines advanced with T*, which leaves every run at the same coordinates.
const lineMovedContent = "BT /F1 12 Tf 14 TL 72 720 Td " +
	"(Jane Doe) Tj T* (jane@example.com) Tj T* (Phone 555 0100) Tj ET"

func writePDF(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, buildPDF(content), 0600))
	return path
}

func TestPDFParserRowPass(t *testing.T) {
	p := NewPDFParserService(zap.NewNop()).(*pdfParserService)
	path := writePDF(t, matrixPositionedContent)

	rows, err := p.extractByRows(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\nSkills: Python, SQL\n", rows)

	text, err := p.ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, rows, text)
}

func TestPDFParserFallsBackWithoutPositions(t *testing.T) {
	p := NewPDFParserService(zap.NewNop()).(*pdfParserService)
	path := writePDF(t, lineMovedContent)

	_, err := p.extractByRows(path)
	assert.Error(t, err)

	text, err := p.ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe\njane@example.com\nPhone 555 0100")
}

func TestExtractPDFKeepsLinesForParsing(t *testing.T) {
	extractor, dir := newTestExtractor(t, nil)
	vocab, patterns := testVocabulary(t)
	parser := NewResumeParser(vocab, patterns)

	for name, content := range map[string]string{
		"matrix positioned": matrixPositionedContent,
		"line moved":        lineMovedContent,
	} {
		t.Run(name, func(t *testing.T) {
			text, err := extractor.Extract("cv.pdf", buildPDF(content))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(text, "Jane Doe\njane@example.com\n"), text)
			assert.Equal(t, "jane@example.com", parser.Parse(text).Email)
		})
	}
	assert.Empty(t, dirEntries(t, dir))
}
