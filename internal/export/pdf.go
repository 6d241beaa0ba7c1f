package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/bytesized/business-boost/internal/domain/entities"
	apperrors "github.com/bytesized/business-boost/pkg/errors"
)

// column width weights; scaled to the printable page width.
var pdfColumnWeights = map[string]float64{
	"Name":         1.6,
	"Category":     1.0,
	"Address":      1.8,
	"Rating":       0.7,
	"Review Count": 0.9,
	"Phone":        1.2,
	"Email":        1.6,
	"Deals":        1.8,
}

// WritePDF writes the businesses to w as the printable directory
// report: title, generation timestamp, summary line, and a grid table
// with a shaded header row.
func WritePDF(w io.Writer, businesses []*entities.Business, opts Options) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Business Directory Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total Businesses: %d", len(businesses)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	header := opts.header()
	widths := columnWidths(pdf, header)

	// Header row: grey fill, white bold text.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(0, 0, 0)
	for i, column := range header {
		pdf.CellFormat(widths[i], 8, column, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// Body rows: beige fill, small font, full grid.
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	for _, business := range businesses {
		for i, cell := range opts.row(business) {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return apperrors.NewInternalError("failed to render pdf", err)
	}
	return nil
}

func columnWidths(pdf *gofpdf.Fpdf, header []string) []float64 {
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	printable := pageWidth - left - right

	total := 0.0
	for _, column := range header {
		total += pdfColumnWeights[column]
	}

	widths := make([]float64, len(header))
	for i, column := range header {
		widths[i] = printable * pdfColumnWeights[column] / total
	}
	return widths
}
