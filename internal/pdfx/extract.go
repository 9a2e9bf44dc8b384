// Package pdfx reduces PDF byte streams to plain text. It is a thin wrapper
// over github.com/ledongthuc/pdf; the interesting analysis of the extracted
// text lives in the engine package.
package pdfx

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is the result of extracting a PDF: the concatenated text of all
// pages plus the per-page texts.
type Document struct {
	Text  string
	Pages []string
}

// Extract parses PDF bytes and returns the document text. Pages that yield
// no text are skipped. Returns an error for anything that is not a valid
// PDF.
func Extract(data []byte) (*Document, error) {
	if !isPDF(data) {
		return nil, fmt.Errorf("missing %%PDF header")
	}

	reader, err := pdf.NewReader(strings.NewReader(string(data)), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("pdf reader: %w", err)
	}

	var full strings.Builder
	var pages []string
	for num := 1; num <= reader.NumPage(); num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("pdf page %d: %w", num, err)
		}
		if text == "" {
			continue
		}
		fmt.Fprintf(&full, "\n--- Page %d ---\n%s", num, text)
		pages = append(pages, text)
	}

	return &Document{
		Text:  collapseWhitespace(full.String()),
		Pages: pages,
	}, nil
}

// isPDF checks the %PDF magic prefix before handing bytes to the parser.
func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
