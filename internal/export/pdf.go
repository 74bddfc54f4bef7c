/*
Package export writes accumulated headline lines to a paginated PDF.
*/
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// ErrEmptyContent is returned when there is nothing to export.
var ErrEmptyContent = errors.New("there is no content to export")

// Page layout in points on US Letter.
const (
	fontFamily = "Helvetica"
	fontSize   = 10
	leftMargin = 30
	topMargin  = 40
	bottomGap  = 40
	lineHeight = 14
	pageHeight = 792
)

// LinesPerPage is how many lines fit on one page with the fixed layout.
func LinesPerPage() int {
	return (pageHeight-bottomGap-topMargin)/lineHeight + 1
}

// WritePDF writes one line of text per row to path, starting a new page when
// the next line would fall inside the bottom margin. No file is created when
// lines hold no visible text.
func WritePDF(lines []string, path string) error {
	if !hasContent(lines) {
		return ErrEmptyContent
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("SENS Results", true)
	pdf.SetFont(fontFamily, "", fontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	y := float64(pageHeight) // forces the first page
	for _, line := range lines {
		if y > pageHeight-bottomGap {
			pdf.AddPage()
			y = topMargin
		}
		pdf.Text(leftMargin, y, tr(line))
		y += lineHeight
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF %s: %w", path, err)
	}
	return nil
}

func hasContent(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
