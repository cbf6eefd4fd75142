package ingestion

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// extractDocx reads the WordprocessingML document body of a .docx file and
// returns its text, one line per paragraph.
func extractDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "open docx archive", Cause: err}
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "open document.xml", Cause: err}
		}
		defer rc.Close()

		text, err := wordprocessingText(xml.NewDecoder(rc))
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "parse document.xml", Cause: err}
		}
		return CleanText(text), nil
	}

	return "", &ExtractionError{Path: path, Message: "document.xml not found in archive"}
}

// wordprocessingText walks the XML token stream collecting text runs (w:t)
// and inserting a newline at each paragraph end (w:p).
func wordprocessingText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	inTextRun := false

	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inTextRun = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inTextRun = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inTextRun {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}
