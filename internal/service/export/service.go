package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/ymerta/vardiya/internal/domain/report"
)

const sheetName = "Aylık Rapor"

// The code page map is embedded so PDF export works regardless of the
// process working directory; gofpdf would otherwise look it up on disk.
//
//go:embed cp1254.map
var cp1254Map []byte

// ExportService renders a report table as a downloadable document.
// Both writers consume the same preformatted table; neither touches
// the numbers.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

func (s *ExportService) WriteXLSX(table report.Table, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for r, row := range table.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "D", 18); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (s *ExportService) WritePDF(table report.Table, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the report labels carry Turkish letters.
	tr, err := gofpdf.UnicodeTranslator(bytes.NewReader(cp1254Map))
	if err != nil {
		return fmt.Errorf("failed to load code page map: %w", err)
	}
	pdf.AddPage()

	widths := []float64{70, 35, 40, 45}

	for i, row := range table.Rows {
		switch {
		case i == 0:
			pdf.SetFont("Helvetica", "B", 16)
		case i < 3:
			pdf.SetFont("Helvetica", "", 12)
		default:
			pdf.SetFont("Helvetica", "", 10)
		}

		if len(row) == 1 {
			pdf.Cell(0, 8, tr(row[0]))
			pdf.Ln(8)
			continue
		}

		// Column headers and the grand-total row stand out in bold.
		if i == 4 || i == len(table.Rows)-1 {
			pdf.SetFont("Helvetica", "B", 10)
		}
		for c, value := range row {
			width := widths[len(widths)-1]
			if c < len(widths) {
				width = widths[c]
			}
			align := "R"
			if c == 0 {
				align = "L"
			}
			pdf.CellFormat(width, 7, tr(value), "1", 0, align, false, 0, "")
		}
		pdf.Ln(7)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}
