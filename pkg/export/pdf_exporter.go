package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth   = 277.0
	headerFont  = 10
	bodyFont    = 9
	rowHeight   = 7.0
	titleHeight = 10.0
)

// PDFExporter renders tables onto landscape A4 pages.
type PDFExporter struct {
	// Weights sizes columns proportionally. Missing weights count as 1.
	Weights []float64
}

// NewPDFExporter constructs a PDF exporter with optional column weights.
func NewPDFExporter(weights ...float64) *PDFExporter {
	return &PDFExporter{Weights: weights}
}

func (e *PDFExporter) ContentType() string { return "application/pdf" }
func (e *PDFExporter) Extension() string   { return "pdf" }

func (e *PDFExporter) widths(columns int) []float64 {
	weights := make([]float64, columns)
	total := 0.0
	for i := range weights {
		weights[i] = 1
		if i < len(e.Weights) && e.Weights[i] > 0 {
			weights[i] = e.Weights[i]
		}
		total += weights[i]
	}
	for i := range weights {
		weights[i] = weights[i] / total * pageWidth
	}
	return weights
}

// Render lays out the title, a bordered table and the footer line.
func (e *PDFExporter) Render(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	if table.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, titleHeight, table.Title, "", 1, "C", false, 0, "")
		pdf.Ln(4)
	}

	widths := e.widths(len(table.Headers))
	pdf.SetFont("Arial", "B", headerFont)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range table.Headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", bodyFont)
	for _, row := range table.Rows {
		for i := range table.Headers {
			pdf.CellFormat(widths[i], rowHeight, cell(row, i), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if table.Footer != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", bodyFont)
		pdf.CellFormat(0, rowHeight, table.Footer, "", 1, "R", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
