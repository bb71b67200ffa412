package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestOverlayDetailWins(t *testing.T) {
	summary := PlaceSummary{
		Name:        "Acme",
		Address:     "12 Main St",
		Rating:      floatPtr(4.0),
		ReviewCount: intPtr(10),
		Location:    &Location{Lat: 1, Lng: 2},
		PlaceID:     "abc123",
		Types:       []string{"cafe"},
	}
	detail := PlaceDetail{
		PlaceSummary: PlaceSummary{
			Name:    "Acme Coffee",
			Rating:  floatPtr(4.5),
			PlaceID: "abc123",
		},
		Phone: "555-1234",
	}

	merged := Overlay(summary, detail)
	assert.Equal(t, "Acme Coffee", merged.Name, "detail value wins")
	assert.Equal(t, "555-1234", merged.Phone)
	assert.Equal(t, 4.5, *merged.Rating)
	assert.Equal(t, "12 Main St", merged.Address, "summary fills detail gaps")
	assert.Equal(t, 10, *merged.ReviewCount)
	assert.Equal(t, []string{"cafe"}, merged.Types)
	require.NotNil(t, merged.Location)
	assert.Equal(t, 1.0, merged.Location.Lat)
}

func TestOverlayPhoneOntoSummaryWithoutPhone(t *testing.T) {
	summary := PlaceSummary{Name: "Acme", Address: "12 Main St", PlaceID: "abc123"}
	detail := PlaceDetail{PlaceSummary: PlaceSummary{PlaceID: "abc123"}, Phone: "555-1234"}

	merged := Overlay(summary, detail)
	assert.Equal(t, "555-1234", merged.Phone)
	assert.Equal(t, "Acme", merged.Name)
	assert.Equal(t, "12 Main St", merged.Address)
}

func TestMergeByID(t *testing.T) {
	summaries := []PlaceSummary{
		{Name: "One", PlaceID: "p1"},
		{Name: "Two", PlaceID: "p2"},
		{Name: "NoID"}, // unmergeable without a place id
	}
	details := []PlaceDetail{
		{PlaceSummary: PlaceSummary{PlaceID: "p2"}, Phone: "555-0002"},
		{PlaceSummary: PlaceSummary{PlaceID: "p9"}, Phone: "555-9999"}, // no matching summary
	}

	merged := MergeByID(summaries, details)
	require.Len(t, merged, 3, "one output per summary, order preserved")
	assert.Equal(t, "One", merged[0].Name)
	assert.Empty(t, merged[0].Phone, "no detail for p1")
	assert.Equal(t, "Two", merged[1].Name)
	assert.Equal(t, "555-0002", merged[1].Phone)
	assert.Equal(t, "NoID", merged[2].Name)
	assert.Empty(t, merged[2].Phone)
}
