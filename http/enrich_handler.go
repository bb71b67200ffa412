package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/places-api/internal/enricher"
)

type EnrichDeps struct {
	Enricher *enricher.Enricher
}

// RegisterEnrich wires the batch detail-fetch endpoint. Identifiers
// whose detail call fails are dropped from the response, not errored;
// callers merge by place_id and treat the gaps as enrichment
// unavailable.
func RegisterEnrich(r chi.Router, d EnrichDeps) {
	r.Post("/places/enrich", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			PlaceIDs []string `json:"place_ids"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(w, req, err)
			return
		}
		if len(body.PlaceIDs) == 0 {
			writeError(w, req, &ValidationError{Param: "place_ids", Reason: "must be a non-empty array"})
			return
		}
		enriched, err := d.Enricher.Enrich(req.Context(), body.PlaceIDs)
		if err != nil {
			writeError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{
			"status": "OK",
			"count":  len(enriched),
			"places": enriched,
		})
	})
}
