package places

// Wire-format structs for the upstream payload. Mapped defensively:
// every field is optional and absent values stay zero rather than
// failing the decode.

type rawLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type rawGeometry struct {
	Location rawLocation `json:"location"`
}

type rawPhoto struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type rawReview struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	Time                    int64  `json:"time"`
	RelativeTimeDescription string `json:"relative_time_description"`
}

type rawPlace struct {
	Name             string       `json:"name"`
	Vicinity         string       `json:"vicinity"`
	FormattedAddress string       `json:"formatted_address"`
	FormattedPhone   string       `json:"formatted_phone_number"`
	Website          string       `json:"website"`
	Rating           *float64     `json:"rating"`
	UserRatingsTotal *int         `json:"user_ratings_total"`
	Geometry         *rawGeometry `json:"geometry"`
	PlaceID          string       `json:"place_id"`
	Types            []string     `json:"types"`
	BusinessStatus   string       `json:"business_status"`
	PriceLevel       *int         `json:"price_level"`
	OpeningHours     *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
	Photos  []rawPhoto  `json:"photos"`
	Reviews []rawReview `json:"reviews"`
}

type rawSearchResponse struct {
	Status        string     `json:"status"`
	ErrorMessage  string     `json:"error_message"`
	Results       []rawPlace `json:"results"`
	NextPageToken string     `json:"next_page_token"`
}

type rawDetailsResponse struct {
	Status       string   `json:"status"`
	ErrorMessage string   `json:"error_message"`
	Result       rawPlace `json:"result"`
}

// maxReviews bounds how many upstream reviews are kept per place.
const maxReviews = 5

func mapSummary(p rawPlace) PlaceSummary {
	s := PlaceSummary{
		Name:           p.Name,
		Address:        nonEmpty(p.Vicinity, p.FormattedAddress),
		Rating:         p.Rating,
		ReviewCount:    p.UserRatingsTotal,
		PlaceID:        p.PlaceID,
		Types:          p.Types,
		BusinessStatus: p.BusinessStatus,
		PriceLevel:     p.PriceLevel,
		Photos:         mapPhotos(p.Photos),
	}
	if p.Geometry != nil {
		s.Location = &Location{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng}
	}
	return s
}

func mapDetail(p rawPlace) PlaceDetail {
	d := PlaceDetail{
		PlaceSummary: mapSummary(p),
		Phone:        p.FormattedPhone,
		Website:      p.Website,
		Reviews:      mapReviews(p.Reviews),
	}
	// Detail payloads carry the full formatted address, never a vicinity.
	d.Address = nonEmpty(p.FormattedAddress, p.Vicinity)
	if p.OpeningHours != nil {
		d.OpeningHours = &OpeningHours{OpenNow: p.OpeningHours.OpenNow}
	}
	return d
}

func mapPhotos(photos []rawPhoto) []PhotoRef {
	out := make([]PhotoRef, 0, len(photos))
	for _, ph := range photos {
		out = append(out, PhotoRef{Reference: ph.PhotoReference, Width: ph.Width, Height: ph.Height})
	}
	return out
}

func mapReviews(reviews []rawReview) []Review {
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, Review{
			AuthorName:              r.AuthorName,
			Rating:                  r.Rating,
			Text:                    r.Text,
			Time:                    r.Time,
			RelativeTimeDescription: r.RelativeTimeDescription,
		})
	}
	return out
}

func nonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
