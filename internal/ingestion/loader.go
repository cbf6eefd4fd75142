package ingestion

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadResume extracts plain text from a resume file, dispatching on the file
// extension. Supported formats: .txt, .pdf, .docx, .html/.htm. The returned
// text is cleaned; callers treat any error as "no resume text".
func LoadResume(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return loadTxt(path)
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDocx(path)
	case ".html", ".htm":
		return extractHTML(path)
	default:
		return "", &UnsupportedFormatError{Extension: filepath.Ext(path)}
	}
}

func loadTxt(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "read file", Cause: err}
	}
	return CleanText(string(content)), nil
}
