package exporter

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yourorg/places-api/places"
)

func writeTemplate(t *testing.T, headers []string, dataRows ...[]string) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, row := range dataRows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func readRows(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	return rows
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestExportHeaderMapping(t *testing.T) {
	path := writeTemplate(t, []string{"Business Name", "Phone Number", "Maps Link"})
	e := New(path)

	out, err := e.Export([]places.PlaceDetail{{
		PlaceSummary: places.PlaceSummary{Name: "Acme", PlaceID: "abc123"},
		Phone:        "555-1234",
	}})
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Business Name", "Phone Number", "Maps Link"}, rows[0])
	assert.Equal(t, []string{"Acme", "555-1234", "https://www.google.com/maps/place/?q=place_id:abc123"}, rows[1])
}

func TestExportReviewColumnsArePositional(t *testing.T) {
	path := writeTemplate(t, []string{"Name", "Review Count", "Review 1", "Review 2", "Review 3"})
	e := New(path)

	long := strings.Repeat("x", 300)
	out, err := e.Export([]places.PlaceDetail{{
		PlaceSummary: places.PlaceSummary{Name: "Acme", ReviewCount: intPtr(42)},
		Reviews: []places.Review{
			{AuthorName: "Ann", Text: "great"},
			{AuthorName: "Bob", Text: long},
		},
	}})
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 2)
	row := rows[1]
	assert.Equal(t, "42", row[1], `"Review Count" hits the count clause, not the review clause`)
	assert.Equal(t, "Ann: great", row[2])
	assert.Equal(t, "Bob: "+strings.Repeat("x", 200), row[3], "review text truncated to 200 chars")
	assert.Len(t, row, 4, "third review column left blank")
}

func TestExportReviewTruncationKeepsRuneBoundaries(t *testing.T) {
	path := writeTemplate(t, []string{"Review 1"})
	e := New(path)

	// An odd-length prefix puts the 200-byte mark inside a 2-byte rune.
	text := "x" + strings.Repeat("é", 250)
	out, err := e.Export([]places.PlaceDetail{{
		Reviews: []places.Review{{AuthorName: "Ann", Text: text}},
	}})
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 2)
	got := rows[1][0]
	assert.True(t, utf8.ValidString(got), "truncated cell must stay valid UTF-8")
	assert.Equal(t, "Ann: x"+strings.Repeat("é", 199), got, "limit counts characters, not bytes")
}

func TestExportMapsLinkPreference(t *testing.T) {
	path := writeTemplate(t, []string{"Maps Link"})
	e := New(path)

	out, err := e.Export([]places.PlaceDetail{
		{PlaceSummary: places.PlaceSummary{PlaceID: "abc", Location: &places.Location{Lat: 1, Lng: 2}, Address: "12 Main St"}},
		{PlaceSummary: places.PlaceSummary{Location: &places.Location{Lat: 12.97, Lng: 77.59}, Address: "12 Main St"}},
		{PlaceSummary: places.PlaceSummary{Address: "12 Main St"}},
	})
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 4)
	assert.Equal(t, "https://www.google.com/maps/place/?q=place_id:abc", rows[1][0])
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=12.97,77.59", rows[2][0])
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=12+Main+St", rows[3][0])
}

func TestExportUnmatchedHeadersBlank(t *testing.T) {
	path := writeTemplate(t, []string{"Name", "Frobnicator", "Rating"})
	e := New(path)

	out, err := e.Export([]places.PlaceDetail{{
		PlaceSummary: places.PlaceSummary{Name: "Acme", Rating: floatPtr(4.5)},
	}})
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[1][0])
	assert.Equal(t, "", rows[1][1])
	assert.Equal(t, "4.5", rows[1][2])
}

func TestExportZeroPlaces(t *testing.T) {
	path := writeTemplate(t, []string{"Name", "Phone"})
	e := New(path)

	out, err := e.Export(nil)
	require.NoError(t, err)
	rows := readRows(t, out)
	require.Len(t, rows, 1, "header row only")
}

func TestExportReplacesExistingDataRows(t *testing.T) {
	path := writeTemplate(t, []string{"Name"}, []string{"Stale One"}, []string{"Stale Two"}, []string{"Stale Three"})
	e := New(path)

	out, err := e.Export([]places.PlaceDetail{{PlaceSummary: places.PlaceSummary{Name: "Fresh"}}})
	require.NoError(t, err)

	rows := readRows(t, out)
	require.Len(t, rows, 2, "stale template rows removed")
	assert.Equal(t, "Fresh", rows[1][0])
}

func TestExportTemplateMissing(t *testing.T) {
	e := New(filepath.Join(t.TempDir(), "nope.xlsx"))
	_, err := e.Export(nil)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestExportTemplateWithoutHeader(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, f.SaveAs(path))

	e := New(path)
	_, err := e.Export(nil)
	var ff *FormatError
	require.ErrorAs(t, err, &ff)
}

func TestMatchHeaderPrecedence(t *testing.T) {
	cases := map[string]columnKind{
		"Business Name":   colName,
		"Review Count":    colReviewCount,
		"Review 1":        colReview,
		"Customer Review": colReview,
		"Phone Number":    colPhone,
		"Contact":         colPhone,
		"Website URL":     colWebsite,
		"Maps Link":       colMapsLink,
		"Address":         colAddress,
		"Rating":          colRating,
		"Category":        colTypes,
		"Price Level":     colPriceLevel,
		"Place ID":        colPlaceID,
		"Frobnicator":     colUnknown,
	}
	for header, want := range cases {
		assert.Equal(t, want, matchHeader(header), "header %q", header)
	}
}
