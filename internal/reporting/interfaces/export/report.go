package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	reportapp "zes-stations/internal/reporting/application"
	stations "zes-stations/internal/stations/domain"
)

const (
	summarySheet  = "summary"
	citiesSheet   = "cities"
	stationsSheet = "stations"
)

// Letters outside the core fonts' cp1252 range.
var turkishFold = strings.NewReplacer(
	"ş", "s", "Ş", "S",
	"ğ", "g", "Ğ", "G",
	"ı", "i", "İ", "I",
)

// BuildRunPDF renders the run summary and per-city table.
func BuildRunPDF(run stations.Run, summary reportapp.Summary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(turkishFold.Replace(s)) }

	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Charging Station Distribution")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Run: %s", run.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Seed: %d", run.Seed))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", run.StartedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Stations: %d of %d requested", summary.Total, summary.Target))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Sockets: %d DC / %d AC", summary.DCSockets, summary.ACSockets))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 6, "City", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Target", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Generated", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Shortfall", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 6, "Source", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, city := range run.Cities {
		pdf.CellFormat(50, 6, text(city.City), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", city.Target), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", city.Generated), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", city.Shortfall()), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, string(city.Source), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildRunXLSX renders the summary, per-city and per-station sheets.
func BuildRunXLSX(run stations.Run, summary reportapp.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(citiesSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(stationsSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(summarySheet, "A1", "Charging Station Distribution")
	_ = f.SetCellValue(summarySheet, "A3", "Run")
	_ = f.SetCellValue(summarySheet, "B3", run.ID)
	_ = f.SetCellValue(summarySheet, "A4", "Seed")
	_ = f.SetCellValue(summarySheet, "B4", fmt.Sprintf("%d", run.Seed))
	_ = f.SetCellValue(summarySheet, "A5", "Generated")
	_ = f.SetCellValue(summarySheet, "B5", run.StartedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A6", "Stations")
	_ = f.SetCellValue(summarySheet, "B6", summary.Total)
	_ = f.SetCellValue(summarySheet, "A7", "Requested")
	_ = f.SetCellValue(summarySheet, "B7", summary.Target)
	_ = f.SetCellValue(summarySheet, "A8", "DC Sockets")
	_ = f.SetCellValue(summarySheet, "B8", summary.DCSockets)
	_ = f.SetCellValue(summarySheet, "A9", "AC Sockets")
	_ = f.SetCellValue(summarySheet, "B9", summary.ACSockets)

	if err := f.SetSheetRow(citiesSheet, "A1", &[]interface{}{"City", "Target", "Generated", "Shortfall", "Source", "DC Sockets", "AC Sockets"}); err != nil {
		return nil, err
	}
	for i, city := range run.Cities {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{city.City, city.Target, city.Generated, city.Shortfall(), string(city.Source), city.DCSockets, city.ACSockets}
		if err := f.SetSheetRow(citiesSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(stationsSheet, "A1", &[]interface{}{"ID", "Name", "Address", "Lat", "Lng", "DC Sockets", "AC Sockets", "Power", "Status", "Type"}); err != nil {
		return nil, err
	}
	for i, st := range run.Stations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{st.ID, st.Name, st.Address, st.Coordinates.Lat, st.Coordinates.Lng, st.DCSockets, st.ACSockets, st.Power, st.Status, string(st.Type)}
		if err := f.SetSheetRow(stationsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
