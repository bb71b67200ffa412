package places

// Location is the flat lat/lng pair extracted from the upstream
// geometry.location structure.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PhotoRef struct {
	Reference string `json:"photo_reference"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type Review struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	Time                    int64  `json:"time"`
	RelativeTimeDescription string `json:"relative_time_description"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

// PlaceSummary is the normalized shape of one search result. PlaceID is
// the only stable join key across search and detail calls; a summary
// without one cannot be enriched.
type PlaceSummary struct {
	Name           string     `json:"name"`
	Address        string     `json:"address,omitempty"`
	Rating         *float64   `json:"rating,omitempty"`
	ReviewCount    *int       `json:"total_reviews,omitempty"`
	Location       *Location  `json:"location,omitempty"`
	PlaceID        string     `json:"place_id"`
	Types          []string   `json:"types,omitempty"`
	BusinessStatus string     `json:"business_status,omitempty"`
	PriceLevel     *int       `json:"price_level,omitempty"`
	Photos         []PhotoRef `json:"photos"`
}

// PlaceDetail is a superset of PlaceSummary returned by detail calls.
// Reviews hold at most five entries.
type PlaceDetail struct {
	PlaceSummary
	Phone        string        `json:"phone,omitempty"`
	Website      string        `json:"website,omitempty"`
	OpeningHours *OpeningHours `json:"opening_hours,omitempty"`
	Reviews      []Review      `json:"reviews,omitempty"`
}

// SearchResult is one page of a search. NextPageToken, when non-empty,
// can be exchanged for the next page after the upstream-mandated delay;
// it is time-limited and scoped to the query that issued it.
type SearchResult struct {
	Status        string         `json:"status"`
	Places        []PlaceSummary `json:"places"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

type NearbyQuery struct {
	Keyword   string
	Lat       float64
	Lng       float64
	Radius    int
	PageToken string
}

type TextQuery struct {
	Query     string
	PageToken string
}
