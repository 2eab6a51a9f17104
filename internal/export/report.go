// Package export renders per-zone energy reports to PDF.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/RoroDev2023/RizzTheGrid/internal/core"
)

// ZoneReport bundles everything one report page shows: the zone's
// recorded profile plus the mix the user dialed in.
type ZoneReport struct {
	Profile   core.EnergyProfile
	Mix       core.Mix
	Result    core.MixResult
	Generated time.Time
}

const (
	pageMargin = 18.0 // mm
	rowHeight  = 7.0
	labelWidth = 60.0
	valueWidth = 40.0
)

// WriteZoneReport renders a one-page A4 report to w.
func WriteZoneReport(w io.Writer, rep ZoneReport) error {
	pdf := buildReport(rep)
	return pdf.Output(w)
}

// ExportZoneReport renders a one-page A4 report to outPath.
func ExportZoneReport(outPath string, rep ZoneReport) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	pdf := buildReport(rep)
	return pdf.OutputFileAndClose(outPath)
}

func buildReport(rep ZoneReport) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	title := fmt.Sprintf("%s (%s)", rep.Profile.Name, rep.Profile.ZoneID)
	if rep.Profile.Name == "" {
		title = rep.Profile.ZoneID
	}
	pdf.SetTitle(title+" - Energy Report", false)
	pdf.SetAuthor("RizzTheGrid", false)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	// Built-in Helvetica keeps the text vector without embedding fonts.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generation mix, %d", rep.Profile.Year), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	sectionHeader(pdf, "Recorded profile")
	for _, s := range core.AllSources() {
		share := rep.Profile.Shares[s]
		tableRow(pdf, s.String(), fmt.Sprintf("%.1f %%", share*100))
	}
	tableRow(pdf, "Demand", fmt.Sprintf("%.1f TWh", rep.Profile.DemandTWh))
	tableRow(pdf, "Carbon intensity", fmt.Sprintf("%.0f gCO2eq/kWh", rep.Profile.Intensity))
	tableRow(pdf, "Renewable share", fmt.Sprintf("%.1f %%", rep.Profile.RenewableShare()*100))
	pdf.Ln(6)

	sectionHeader(pdf, "What-if mix")
	for _, s := range core.AllSources() {
		w := rep.Mix.Weights[s]
		if w <= 0 {
			continue
		}
		tableRow(pdf, s.String(), fmt.Sprintf("%.1f", w))
	}
	tableRow(pdf, "Blended intensity", fmt.Sprintf("%.0f gCO2eq/kWh", rep.Result.Intensity))
	tableRow(pdf, "Blended renewables", fmt.Sprintf("%.1f %%", rep.Result.RenewableShare*100))

	gen := rep.Generated
	if gen.IsZero() {
		gen = time.Now()
	}
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, "Generated "+gen.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	return pdf
}

func sectionHeader(pdf *gofpdf.Fpdf, name string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, name, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Ln(1)
}

func tableRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(labelWidth, rowHeight, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, value, "", 1, "R", false, 0, "")
}
