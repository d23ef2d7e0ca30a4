package services

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrEmptyText         = errors.New("no text extracted")
)

const extractionHint = "Could not extract text from the file. Please try a different file."

// SupportedExtensions lists the upload formats, chosen by file extension only.
var SupportedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

type textExtractor struct {
	storage    StorageService
	pdfParser  PDFParserService
	docxParser DocxParserService
	logger     *zap.Logger
}

func NewTextExtractor(
	storage StorageService,
	pdfParser PDFParserService,
	docxParser DocxParserService,
	logger *zap.Logger,
) TextExtractor {
	return &textExtractor{
		storage:    storage,
		pdfParser:  pdfParser,
		docxParser: docxParser,
		logger:     logger,
	}
}

// Extract returns the document text, or "" and an error. Failures are marked
// with ErrUnsupportedFormat or ErrExtractionFailed and carry a user-facing hint.
func (e *textExtractor) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	log := e.logger.With(
		zap.String("file", filename),
		zap.String("ext", ext),
		zap.Int("bytes", len(data)),
	)

	var text string
	var err error

	switch ext {
	case ".txt":
		if !utf8.Valid(data) {
			err = errors.New("file is not valid UTF-8 text")
		} else {
			text = string(data)
		}
	case ".pdf":
		text, err = e.fromTempFile(data, ext, e.pdfParser.ExtractText)
		text = strings.TrimSpace(text)
	case ".docx", ".doc":
		text, err = e.fromTempFile(data, ext, e.docxParser.ExtractText)
		text = strings.TrimSpace(text)
	default:
		err = errors.WithHintf(
			errors.Wrapf(ErrUnsupportedFormat, "extension %q", strings.TrimPrefix(ext, ".")),
			"Supported formats: PDF, DOCX, TXT",
		)
		log.Warn("unsupported file format")
		return "", err
	}

	if err != nil {
		log.Warn("text extraction failed", zap.Error(err))
		return "", errors.WithHint(errors.Mark(errors.Wrapf(err, "extract %s", filename), ErrExtractionFailed), extractionHint)
	}

	log.Debug("text extracted", zap.Int("chars", utf8.RuneCountInString(text)))
	return text, nil
}

func (e *textExtractor) fromTempFile(data []byte, ext string, parse func(string) (string, error)) (string, error) {
	var text string
	err := e.storage.WithTempFile(data, ext, func(filePath string) error {
		var err error
		text, err = parse(filePath)
		return err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
