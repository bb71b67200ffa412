package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/places-api/places"
)

type HealthDeps struct {
	Places *places.Client
}

// RegisterHealth wires the health check and the root service index.
func RegisterHealth(r chi.Router, d HealthDeps) {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{
			"status":             "OK",
			"message":            "places lookup proxy is running",
			"api_key_configured": d.Places.KeyConfigured(),
		})
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{
			"message": "Places Lookup Proxy",
			"endpoints": map[string]string{
				"GET /places/nearby":        "search places near a location (requires: keyword, lat, lng; optional: radius, pageToken)",
				"GET /places/textsearch":    "free-text place search (requires: query; optional: pageToken)",
				"GET /places/details":       "detail record for one place (requires: place_id; optional: fields)",
				"GET /places/nearby/all":    "fetch every page of a nearby search (requires: keyword, lat, lng; optional: radius, maxPages)",
				"POST /places/enrich":       "batch detail fetch for a list of place_ids",
				"POST /places/export-excel": "export place records to a spreadsheet",
				"GET /health":               "health check",
			},
			"examples": map[string]string{
				"nearby":     "/places/nearby?keyword=restaurant&lat=28.6139&lng=77.2090&radius=3000",
				"textsearch": "/places/textsearch?query=cafes in Bangalore",
				"details":    "/places/details?place_id=ChIJN1t_tDeuEmsRUsoyG83frY4",
			},
		})
	})
}
