package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/places-api/places"
)

type SearchDeps struct {
	Places *places.Client
}

// RegisterSearch wires the three single-call proxy endpoints: nearby
// search, text search, and place details.
func RegisterSearch(r chi.Router, d SearchDeps) {
	r.Get("/places/nearby", func(w http.ResponseWriter, req *http.Request) {
		p, err := parseNearbyParams(req.URL.Query())
		if err != nil {
			writeError(w, req, err)
			return
		}
		result, err := d.Places.SearchNearby(req.Context(), places.NearbyQuery{
			Keyword:   p.Keyword,
			Lat:       p.Lat,
			Lng:       p.Lng,
			Radius:    p.Radius,
			PageToken: p.PageToken,
		})
		if err != nil {
			writeError(w, req, err)
			return
		}
		renderSearchResult(w, req, result)
	})

	r.Get("/places/textsearch", func(w http.ResponseWriter, req *http.Request) {
		p, err := parseTextParams(req.URL.Query())
		if err != nil {
			writeError(w, req, err)
			return
		}
		result, err := d.Places.SearchText(req.Context(), places.TextQuery{
			Query:     p.Query,
			PageToken: p.PageToken,
		})
		if err != nil {
			writeError(w, req, err)
			return
		}
		renderSearchResult(w, req, result)
	})

	r.Get("/places/details", func(w http.ResponseWriter, req *http.Request) {
		p, err := parseDetailsParams(req.URL.Query())
		if err != nil {
			writeError(w, req, err)
			return
		}
		detail, err := d.Places.GetDetails(req.Context(), p.PlaceID, p.Fields)
		if err != nil {
			writeError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{
			"status": "OK",
			"place":  detail,
		})
	})
}

func renderSearchResult(w http.ResponseWriter, req *http.Request, result places.SearchResult) {
	var token any
	if result.NextPageToken != "" {
		token = result.NextPageToken
	}
	render.JSON(w, req, map[string]any{
		"status":          result.Status,
		"count":           len(result.Places),
		"places":          result.Places,
		"next_page_token": token,
	})
}
