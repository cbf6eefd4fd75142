package ingestion

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML returns the visible text of an HTML resume, scripts and styles
// removed, one line per block-level chunk goquery yields.
func extractHTML(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "open file", Cause: err}
	}
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	doc.Find("body *").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	// Fall back to the whole document text when the body had no leaf
	// elements (plain text wrapped in html tags).
	if sb.Len() == 0 {
		return CleanText(doc.Text()), nil
	}
	return CleanText(sb.String()), nil
}
