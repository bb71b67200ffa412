package places

// Overlay produces the shallow union of a summary and a detail record
// for the same place. Detail fields win wherever they are populated;
// anything the detail left empty keeps the summary's value.
func Overlay(summary PlaceSummary, detail PlaceDetail) PlaceDetail {
	merged := detail
	if merged.Name == "" {
		merged.Name = summary.Name
	}
	if merged.Address == "" {
		merged.Address = summary.Address
	}
	if merged.Rating == nil {
		merged.Rating = summary.Rating
	}
	if merged.ReviewCount == nil {
		merged.ReviewCount = summary.ReviewCount
	}
	if merged.Location == nil {
		merged.Location = summary.Location
	}
	if merged.PlaceID == "" {
		merged.PlaceID = summary.PlaceID
	}
	if len(merged.Types) == 0 {
		merged.Types = summary.Types
	}
	if merged.BusinessStatus == "" {
		merged.BusinessStatus = summary.BusinessStatus
	}
	if merged.PriceLevel == nil {
		merged.PriceLevel = summary.PriceLevel
	}
	if len(merged.Photos) == 0 {
		merged.Photos = summary.Photos
	}
	return merged
}

// MergeByID overlays each detail onto the summary sharing its place id.
// Summaries with no matching detail (enrichment unavailable, or no
// place id to join on) pass through unchanged. Output order follows the
// summaries.
func MergeByID(summaries []PlaceSummary, details []PlaceDetail) []PlaceDetail {
	byID := make(map[string]PlaceDetail, len(details))
	for _, d := range details {
		if d.PlaceID != "" {
			byID[d.PlaceID] = d
		}
	}
	out := make([]PlaceDetail, 0, len(summaries))
	for _, s := range summaries {
		if d, ok := byID[s.PlaceID]; ok && s.PlaceID != "" {
			out = append(out, Overlay(s, d))
			continue
		}
		out = append(out, PlaceDetail{PlaceSummary: s})
	}
	return out
}
