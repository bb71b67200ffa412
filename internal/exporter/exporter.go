// Package exporter writes place records into a spreadsheet whose
// column layout is dictated by an existing template's header row.
package exporter

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourorg/places-api/places"
)

// reviewTextLimit truncates review text in exported cells. The limit
// counts characters, not bytes, so multi-byte text never gets split
// mid-rune.
const reviewTextLimit = 200

// NotFoundError means the template file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "export template not found: " + e.Path
}

// FormatError means the template exists but is unusable (no sheet, no
// header row).
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "export template malformed: " + e.Reason
}

type Exporter struct {
	templatePath string
}

func New(templatePath string) *Exporter {
	return &Exporter{templatePath: templatePath}
}

type columnKind int

const (
	colUnknown columnKind = iota
	colName
	colAddress
	colPhone
	colWebsite
	colRating
	colReviewCount
	colReview // positional among review columns
	colMapsLink
	colStatus
	colTypes
	colPriceLevel
	colPlaceID
)

// matchHeader classifies one header cell by case-insensitive substring
// matching. Clause order is load-bearing: a header containing both
// "review" and "count" is a count column only because that clause runs
// first. Keep the order stable.
func matchHeader(header string) columnKind {
	h := strings.ToLower(header)
	switch {
	case strings.Contains(h, "review") && strings.Contains(h, "count"):
		return colReviewCount
	case strings.Contains(h, "review"):
		return colReview
	case strings.Contains(h, "name"):
		return colName
	case strings.Contains(h, "address") || strings.Contains(h, "location"):
		return colAddress
	case strings.Contains(h, "phone") || strings.Contains(h, "contact"):
		return colPhone
	case strings.Contains(h, "website") || strings.Contains(h, "url"):
		return colWebsite
	case strings.Contains(h, "rating"):
		return colRating
	case strings.Contains(h, "map") || strings.Contains(h, "link"):
		return colMapsLink
	case strings.Contains(h, "status"):
		return colStatus
	case strings.Contains(h, "type") || strings.Contains(h, "category"):
		return colTypes
	case strings.Contains(h, "price"):
		return colPriceLevel
	case strings.Contains(h, "id"):
		return colPlaceID
	default:
		return colUnknown
	}
}

type column struct {
	kind        columnKind
	reviewIndex int // which review this column holds, for colReview
}

// Export renders one data row per place under the template's header
// row, replacing any data rows already present in the template. Zero
// places yields a header-only sheet.
func (e *Exporter) Export(records []places.PlaceDetail) ([]byte, error) {
	if _, err := os.Stat(e.templatePath); err != nil {
		return nil, &NotFoundError{Path: e.templatePath}
	}
	f, err := excelize.OpenFile(e.templatePath)
	if err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &FormatError{Reason: "workbook has no sheets"}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}
	if len(rows) == 0 || !hasContent(rows[0]) {
		return nil, &FormatError{Reason: "first sheet has no header row"}
	}
	headers := rows[0]

	columns := make([]column, len(headers))
	reviewCols := 0
	for i, h := range headers {
		kind := matchHeader(h)
		col := column{kind: kind}
		if kind == colReview {
			col.reviewIndex = reviewCols
			reviewCols++
		}
		columns[i] = col
	}

	// Drop stale data rows; the template drives columns, not content.
	for r := len(rows); r >= 2; r-- {
		if err := f.RemoveRow(sheet, r); err != nil {
			return nil, &FormatError{Reason: err.Error()}
		}
	}

	for i, rec := range records {
		rowNum := i + 2
		for c, col := range columns {
			val := cellValue(rec, col)
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, rowNum)
			if err != nil {
				return nil, &FormatError{Reason: err.Error()}
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return nil, &FormatError{Reason: err.Error()}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(rec places.PlaceDetail, col column) string {
	switch col.kind {
	case colName:
		return rec.Name
	case colAddress:
		return rec.Address
	case colPhone:
		return rec.Phone
	case colWebsite:
		return rec.Website
	case colRating:
		if rec.Rating != nil {
			return trimFloat(*rec.Rating)
		}
	case colReviewCount:
		if rec.ReviewCount != nil {
			return fmt.Sprintf("%d", *rec.ReviewCount)
		}
	case colReview:
		if col.reviewIndex < len(rec.Reviews) {
			return renderReview(rec.Reviews[col.reviewIndex])
		}
	case colMapsLink:
		return mapsLink(rec)
	case colStatus:
		return rec.BusinessStatus
	case colTypes:
		return strings.Join(rec.Types, ", ")
	case colPriceLevel:
		if rec.PriceLevel != nil {
			return fmt.Sprintf("%d", *rec.PriceLevel)
		}
	case colPlaceID:
		return rec.PlaceID
	}
	return ""
}

func renderReview(r places.Review) string {
	text := r.Text
	if runes := []rune(text); len(runes) > reviewTextLimit {
		text = string(runes[:reviewTextLimit])
	}
	return r.AuthorName + ": " + text
}

// mapsLink synthesizes a Google Maps URL: place id when present, else
// coordinates, else an address search.
func mapsLink(rec places.PlaceDetail) string {
	switch {
	case rec.PlaceID != "":
		return "https://www.google.com/maps/place/?q=place_id:" + rec.PlaceID
	case rec.Location != nil:
		return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", rec.Location.Lat, rec.Location.Lng)
	case rec.Address != "":
		return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(rec.Address)
	default:
		return ""
	}
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}
