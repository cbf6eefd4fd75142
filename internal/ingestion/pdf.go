package ingestion

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the plain text out of every page of a PDF resume.
func extractPDF(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "open PDF", Cause: err}
	}
	defer file.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "extract PDF text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(textReader); err != nil {
		return "", &ExtractionError{Path: path, Message: "read PDF text", Cause: err}
	}
	return CleanText(buf.String()), nil
}
