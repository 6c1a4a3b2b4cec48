package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// PDF layout in millimetres on portrait A4. Pagination is manual: auto page
// break is off and the cursor is tracked explicitly.
const (
	pdfPageHeight   = 297.0
	pdfLeftMargin   = 15.0
	pdfTopMargin    = 15.0
	pdfBottomMargin = 20.0
	pdfLineHeight   = 6.0
	pdfHeaderHeight = 24.0
	pdfWrapWidth    = 92
)

type ExportServiceInterface interface {
	// BuildItineraryPDF renders the itinerary text into a paginated PDF and
	// returns the bytes plus a download filename.
	BuildItineraryPDF(itinerary, destination string) ([]byte, string, error)
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (s *ExportService) BuildItineraryPDF(itinerary, destination string) ([]byte, string, error) {
	pdf := buildItineraryDoc(itinerary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), itineraryFilename(destination), nil
}

// buildItineraryDoc lays the text out line by line: explicit newlines are
// respected, long lines hard-wrap at pdfWrapWidth runes, and a new page
// starts whenever the next line would cross the bottom margin. Empty input
// yields a single page carrying only the header.
func buildItineraryDoc(itinerary string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Itinerary", false)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetXY(pdfLeftMargin, pdfTopMargin)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Travel Itinerary")
	pdf.SetXY(pdfLeftMargin, pdfTopMargin+12)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))

	if strings.TrimSpace(itinerary) == "" {
		return pdf
	}

	y := pdfTopMargin + pdfHeaderHeight
	for _, raw := range strings.Split(itinerary, "\n") {
		style, text := classifyLine(raw)
		for _, ln := range wrapLine(text, pdfWrapWidth) {
			if y+pdfLineHeight > pdfPageHeight-pdfBottomMargin {
				pdf.AddPage()
				y = pdfTopMargin
			}
			setLineFont(pdf, style)
			pdf.SetXY(pdfLeftMargin, y)
			pdf.Cell(0, pdfLineHeight, tr(ln))
			y += pdfLineHeight
		}
	}
	return pdf
}

type lineStyle int

const (
	styleBody lineStyle = iota
	styleH2
	styleH3
	styleBullet
)

// classifyLine gives the itinerary's markdown a light PDF treatment: section
// headings get bold fonts, bullets a bullet glyph. Everything else is body.
func classifyLine(raw string) (lineStyle, string) {
	switch {
	case strings.HasPrefix(raw, "### "):
		return styleH3, strings.TrimSpace(raw[4:])
	case strings.HasPrefix(raw, "## "):
		return styleH2, strings.TrimSpace(raw[3:])
	}
	trimmed := strings.TrimLeft(raw, " \t")
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return styleBullet, "• " + strings.TrimSpace(trimmed[2:])
	}
	return styleBody, raw
}

func setLineFont(pdf *gofpdf.Fpdf, style lineStyle) {
	switch style {
	case styleH2:
		pdf.SetFont("Helvetica", "B", 14)
	case styleH3:
		pdf.SetFont("Helvetica", "B", 12)
	default:
		pdf.SetFont("Helvetica", "", 11)
	}
}

// WrapLines splits text on explicit newlines, then hard-wraps each line at
// width runes. A line of N runes becomes ceil(N/width) wrapped lines; blank
// lines survive as blank lines.
func WrapLines(text string, width int) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		out = append(out, wrapLine(raw, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	runes := []rune(line)
	if len(runes) <= width {
		return []string{line}
	}
	var out []string
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

var nonFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func itineraryFilename(destination string) string {
	part := nonFilenameChars.ReplaceAllString(strings.TrimSpace(destination), "_")
	part = strings.Trim(part, "_")
	if part == "" {
		part = "trip"
	}
	return fmt.Sprintf("itinerary_%s.pdf", part)
}
