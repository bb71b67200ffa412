package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/yourorg/places-api/internal/exporter"
	"github.com/yourorg/places-api/places"
)

// writeError maps the error taxonomy onto HTTP statuses in one place:
// validation 400, upstream status 400 (message passed through),
// missing template 404, configuration/transport/format 500.
func writeError(w http.ResponseWriter, req *http.Request, err error) {
	var (
		vErr *ValidationError
		cfg  *places.ConfigurationError
		up   *places.UpstreamError
		tr   *places.TransportError
		nf   *exporter.NotFoundError
		ff   *exporter.FormatError
	)
	switch {
	case errors.As(err, &vErr):
		writeJSONError(w, req, http.StatusBadRequest, vErr.Error(), "")
	case errors.As(err, &up):
		writeJSONError(w, req, http.StatusBadRequest, up.Error(), up.Status)
	case errors.As(err, &cfg):
		writeJSONError(w, req, http.StatusInternalServerError, cfg.Error(), cfg.Hint)
	case errors.As(err, &nf):
		writeJSONError(w, req, http.StatusNotFound, nf.Error(), "")
	case errors.As(err, &ff):
		writeJSONError(w, req, http.StatusInternalServerError, ff.Error(), "")
	case errors.As(err, &tr):
		writeJSONError(w, req, http.StatusInternalServerError, tr.Error(), "")
	default:
		writeJSONError(w, req, http.StatusInternalServerError, err.Error(), "")
	}
}

func writeJSONError(w http.ResponseWriter, req *http.Request, status int, msg, details string) {
	render.Status(req, status)
	body := map[string]any{"error": msg}
	if details != "" {
		body["details"] = details
	}
	render.JSON(w, req, body)
}

func decodeBody(req *http.Request, into any) error {
	if err := json.NewDecoder(req.Body).Decode(into); err != nil {
		return &ValidationError{Param: "body", Reason: "invalid JSON: " + err.Error()}
	}
	return nil
}
