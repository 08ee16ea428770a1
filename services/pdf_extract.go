package services

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// TextExtractor converts raw document bytes into plain text. The Q&A
// pipeline depends on this interface so tests can substitute a fake.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// Extractor is the shared extractor instance, wired up in main
var Extractor TextExtractor = PDFTextExtractor{}

// PDFTextExtractor extracts plain text from PDF bytes
type PDFTextExtractor struct{}

func (PDFTextExtractor) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Err: err}
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Err: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ExtractionError{Err: err}
	}
	return buf.String(), nil
}
