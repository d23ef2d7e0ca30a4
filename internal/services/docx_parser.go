package services

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nguyenthenguyen/docx"
)

type DocxParserService interface {
	ExtractText(filePath string) (string, error)
}

type docxParserService struct{}

func NewDocxParserService() DocxParserService {
	return &docxParserService{}
}

// ExtractText dumps the whole document body; if that comes back empty the
// paragraphs are read one by one instead.
func (d *docxParserService) ExtractText(filePath string) (string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open DOCX")
	}
	defer r.Close()

	content := r.Editable().GetContent()

	text, err := dumpDocumentXML(content)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	paragraphs, err := documentParagraphs(content)
	if err != nil {
		return "", err
	}

	return strings.Join(paragraphs, "\n"), nil
}

// dumpDocumentXML renders the body as text: every paragraph on its own line,
// w:tab as a tab and w:br or w:cr as a line break. Deleted revisions and
// field codes live outside w:t and are dropped.
func dumpDocumentXML(content string) (string, error) {
	paragraphs, err := walkParagraphs(content, true)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, p := range paragraphs {
		b.WriteString(p)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// documentParagraphs returns the w:t text of every w:p element, in order.
func documentParagraphs(content string) ([]string, error) {
	return walkParagraphs(content, false)
}

func walkParagraphs(content string, layout bool) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))
	decoder.Strict = false

	var paragraphs []string
	var current strings.Builder
	// w:tab also declares tab stops inside w:tabs
	inParagraph, inText, inTabStops := false, false, false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode DOCX paragraphs")
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = true
			case "tabs":
				inTabStops = true
			case "tab":
				if layout && inParagraph && !inTabStops {
					current.WriteString("\t")
				}
			case "br", "cr":
				if layout && inParagraph {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, current.String())
				}
				inParagraph = false
			case "t":
				inText = false
			case "tabs":
				inTabStops = false
			}
		case xml.CharData:
			if inParagraph && inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
