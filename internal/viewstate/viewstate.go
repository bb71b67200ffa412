// Package viewstate models the browser controller's accumulated state
// as immutable snapshots. Every transition returns a new Snapshot, so
// the presentation flow is testable without a DOM.
package viewstate

import (
	"strings"

	"github.com/yourorg/places-api/places"
)

// MaxAutoPages caps the UI's background page auto-continuation.
const MaxAutoPages = 10

type SearchKind string

const (
	KindNearby  SearchKind = "nearby"
	KindText    SearchKind = "textsearch"
	KindDetails SearchKind = "details"
)

type SearchParams struct {
	Kind    SearchKind
	Keyword string
	Query   string
	Lat     float64
	Lng     float64
	Radius  int
}

// Snapshot is the whole client-side state at one instant. Zero value is
// the cleared state.
type Snapshot struct {
	Results       []places.PlaceDetail
	Filter        string
	NextPageToken string
	Params        SearchParams
	PagesLoaded   int
	InFlight      bool
	LastError     string
}

// BeginFetch marks a fetch as in flight for the given query. It is the
// overlap guard: a snapshot already in flight refuses the transition.
func (s Snapshot) BeginFetch(params SearchParams) (Snapshot, bool) {
	if s.InFlight {
		return s, false
	}
	next := s
	next.InFlight = true
	next.LastError = ""
	if params != s.Params {
		// Fresh query: earlier results and token no longer apply.
		next.Results = nil
		next.NextPageToken = ""
		next.PagesLoaded = 0
		next.Params = params
	}
	return next, true
}

// ApplyPage appends one page of results and records its continuation
// token.
func (s Snapshot) ApplyPage(page places.SearchResult) Snapshot {
	next := s
	next.InFlight = false
	next.NextPageToken = page.NextPageToken
	next.PagesLoaded = s.PagesLoaded + 1
	merged := make([]places.PlaceDetail, 0, len(s.Results)+len(page.Places))
	merged = append(merged, s.Results...)
	for _, p := range page.Places {
		merged = append(merged, places.PlaceDetail{PlaceSummary: p})
	}
	next.Results = merged
	return next
}

// ApplyEnrichment overlays fetched details onto the accumulated results
// by place id. Results with no matching detail stay as they were.
func (s Snapshot) ApplyEnrichment(details []places.PlaceDetail) Snapshot {
	summaries := make([]places.PlaceSummary, 0, len(s.Results))
	for _, r := range s.Results {
		summaries = append(summaries, r.PlaceSummary)
	}
	merged := places.MergeByID(summaries, details)
	// Keep detail fields that were already present before this merge.
	for i := range merged {
		prev := s.Results[i]
		if merged[i].Phone == "" {
			merged[i].Phone = prev.Phone
		}
		if merged[i].Website == "" {
			merged[i].Website = prev.Website
		}
		if merged[i].OpeningHours == nil {
			merged[i].OpeningHours = prev.OpeningHours
		}
		if len(merged[i].Reviews) == 0 {
			merged[i].Reviews = prev.Reviews
		}
	}
	next := s
	next.InFlight = false
	next.Results = merged
	return next
}

// FailFetch ends an in-flight fetch with an error banner message,
// keeping whatever results were already accumulated.
func (s Snapshot) FailFetch(msg string) Snapshot {
	next := s
	next.InFlight = false
	next.LastError = msg
	return next
}

// SetFilter replaces the display filter without touching results.
func (s Snapshot) SetFilter(filter string) Snapshot {
	next := s
	next.Filter = filter
	return next
}

// Clear resets to the empty state.
func (s Snapshot) Clear() Snapshot {
	return Snapshot{}
}

// CanContinue reports whether a background auto-continuation may fetch
// another page.
func (s Snapshot) CanContinue() bool {
	return !s.InFlight && s.NextPageToken != "" && s.PagesLoaded < MaxAutoPages
}

// Filtered returns the results whose name, address or types match the
// current filter, case-insensitively. An empty filter matches all.
func (s Snapshot) Filtered() []places.PlaceDetail {
	f := strings.ToLower(strings.TrimSpace(s.Filter))
	if f == "" {
		return s.Results
	}
	out := make([]places.PlaceDetail, 0, len(s.Results))
	for _, r := range s.Results {
		if strings.Contains(strings.ToLower(r.Name), f) ||
			strings.Contains(strings.ToLower(r.Address), f) ||
			typesMatch(r.Types, f) {
			out = append(out, r)
		}
	}
	return out
}

// Visible slices the filtered results for display pagination.
func (s Snapshot) Visible(offset, limit int) []places.PlaceDetail {
	filtered := s.Filtered()
	if offset < 0 {
		offset = 0
	}
	if offset >= len(filtered) {
		return nil
	}
	end := len(filtered)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return filtered[offset:end]
}

func typesMatch(types []string, f string) bool {
	for _, t := range types {
		if strings.Contains(strings.ToLower(t), f) {
			return true
		}
	}
	return false
}
