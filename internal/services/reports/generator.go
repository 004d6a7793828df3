// Package reports renders the inventory PDF: one row per asset with the
// depreciation figures computed by the service layer.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/depreciation"
	"github.com/ciprian5050-dotcom/inventarios-xipri505-sub000/internal/models"
)

// Row is one report line: the asset plus its computed depreciation
type Row struct {
	Asset        models.Asset
	Depreciation depreciation.Result
}

// GenerateInventoryPDF renders a landscape A4 inventory report.
// Company fields appear in the header when configured.
func GenerateInventoryPDF(company *models.CompanyConfig, rows []Row, asOf time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 14)
	title := "Fixed Asset Inventory"
	if company != nil && company.Name != "" {
		title = company.Name + " - Fixed Asset Inventory"
	}
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, "As of "+asOf.Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	headers := []string{"Code", "Name", "Dependency", "Custodian", "Status", "Value", "Accum. Depr.", "Current", "% Depr."}
	widths := []float64{28, 55, 42, 42, 20, 25, 27, 25, 16}

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	drawHeader()

	pdf.SetFont("Arial", "", 8)
	for _, row := range rows {
		if pdf.GetY() > 185 {
			pdf.AddPage()
			drawHeader()
			pdf.SetFont("Arial", "", 8)
		}
		a := row.Asset
		d := row.Depreciation
		cells := []struct {
			text  string
			align string
		}{
			{a.Code, "L"},
			{truncate(a.Name, 38), "L"},
			{truncate(a.Dependency, 28), "L"},
			{truncate(a.Custodian, 28), "L"},
			{a.Status, "C"},
			{fmt.Sprintf("%.2f", a.Value), "R"},
			{fmt.Sprintf("%.2f", d.AccumulatedDepreciation), "R"},
			{fmt.Sprintf("%.2f", d.CurrentValue), "R"},
			{fmt.Sprintf("%.1f", d.PercentDepreciated), "R"},
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5.5, c.text, "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Totals
	var totalValue, totalCurrent float64
	for _, row := range rows {
		totalValue += row.Asset.Value
		totalCurrent += row.Depreciation.CurrentValue
	}
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(widths[0]+widths[1]+widths[2]+widths[3]+widths[4], 6, fmt.Sprintf("Total (%d assets)", len(rows)), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.2f", totalValue), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.2f", totalValue-totalCurrent), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[7], 6, fmt.Sprintf("%.2f", totalCurrent), "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[8], 6, "", "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-2]) + ".."
}
