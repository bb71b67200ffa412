package httpapi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError is a missing or malformed request parameter, detected
// before any upstream call.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Param, e.Reason)
}

type nearbyParams struct {
	Keyword   string  `validate:"required"`
	Lat       float64 `validate:"gte=-90,lte=90"`
	Lng       float64 `validate:"gte=-180,lte=180"`
	Radius    int
	PageToken string
	MaxPages  int
}

type textParams struct {
	Query     string `validate:"required"`
	PageToken string
}

type detailsParams struct {
	PlaceID string `validate:"required"`
	Fields  string
}

func parseNearbyParams(q url.Values) (nearbyParams, error) {
	p := nearbyParams{
		Keyword:   q.Get("keyword"),
		PageToken: q.Get("pageToken"),
	}
	if q.Get("lat") == "" || q.Get("lng") == "" {
		return p, &ValidationError{Param: "lat,lng", Reason: "lat and lng are required for Nearby Search. Use Text Search endpoint if you only have a location name."}
	}
	var err error
	if p.Lat, err = strconv.ParseFloat(q.Get("lat"), 64); err != nil {
		return p, &ValidationError{Param: "lat", Reason: "must be a number"}
	}
	if p.Lng, err = strconv.ParseFloat(q.Get("lng"), 64); err != nil {
		return p, &ValidationError{Param: "lng", Reason: "must be a number"}
	}
	if v := q.Get("radius"); v != "" {
		if p.Radius, err = strconv.Atoi(v); err != nil {
			return p, &ValidationError{Param: "radius", Reason: "must be an integer"}
		}
	}
	if v := q.Get("maxPages"); v != "" {
		if p.MaxPages, err = strconv.Atoi(v); err != nil {
			return p, &ValidationError{Param: "maxPages", Reason: "must be an integer"}
		}
	}
	if err := validate.Struct(p); err != nil {
		return p, validationError(err)
	}
	return p, nil
}

func parseTextParams(q url.Values) (textParams, error) {
	p := textParams{Query: q.Get("query"), PageToken: q.Get("pageToken")}
	if err := validate.Struct(p); err != nil {
		return p, validationError(err)
	}
	return p, nil
}

func parseDetailsParams(q url.Values) (detailsParams, error) {
	p := detailsParams{PlaceID: q.Get("place_id"), Fields: q.Get("fields")}
	if err := validate.Struct(p); err != nil {
		return p, validationError(err)
	}
	return p, nil
}

func validationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		reason := "is required"
		if fe.Tag() != "required" {
			reason = "failed " + fe.Tag() + " constraint"
		}
		return &ValidationError{Param: paramName(fe.Field()), Reason: reason}
	}
	return &ValidationError{Param: "request", Reason: err.Error()}
}

func paramName(field string) string {
	switch field {
	case "Keyword":
		return "keyword"
	case "Lat":
		return "lat"
	case "Lng":
		return "lng"
	case "Query":
		return "query"
	case "PlaceID":
		return "place_id"
	default:
		return field
	}
}
