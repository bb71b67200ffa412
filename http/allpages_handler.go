package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/places-api/internal/paginator"
	"github.com/yourorg/places-api/places"
)

type AllPagesDeps struct {
	Places *places.Client
	Logger *slog.Logger
	// PageDelay overrides the wait before exchanging a continuation
	// token. Zero means paginator.PageTokenDelay.
	PageDelay time.Duration
}

// RegisterAllPages wires the bulk fetch-all endpoint. A failure after
// the first page degrades to a PARTIAL response instead of discarding
// what was already fetched.
func RegisterAllPages(r chi.Router, d AllPagesDeps) {
	r.Get("/places/nearby/all", func(w http.ResponseWriter, req *http.Request) {
		p, err := parseNearbyParams(req.URL.Query())
		if err != nil {
			writeError(w, req, err)
			return
		}
		query := places.NearbyQuery{
			Keyword: p.Keyword,
			Lat:     p.Lat,
			Lng:     p.Lng,
			Radius:  p.Radius,
		}
		fetch := func(ctx context.Context, pageToken string) (places.SearchResult, error) {
			q := query
			q.PageToken = pageToken
			return d.Places.SearchNearby(ctx, q)
		}
		result, err := paginator.FetchAll(req.Context(), fetch, paginator.Options{
			MaxPages:  p.MaxPages,
			PageDelay: d.PageDelay,
			Logger:    d.Logger,
		})
		if err != nil && result.PagesFetched == 0 {
			writeError(w, req, err)
			return
		}
		body := map[string]any{
			"status":        "OK",
			"count":         len(result.Places),
			"pages_fetched": result.PagesFetched,
			"places":        result.Places,
		}
		if err != nil {
			body["status"] = "PARTIAL"
			body["warning"] = "a later page failed; returning the pages fetched so far: " + err.Error()
		}
		render.JSON(w, req, body)
	})
}
