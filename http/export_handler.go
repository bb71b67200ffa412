package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yourorg/places-api/internal/exporter"
	"github.com/yourorg/places-api/places"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportDeps struct {
	Exporter *exporter.Exporter
}

// RegisterExport wires the spreadsheet download endpoint.
func RegisterExport(r chi.Router, d ExportDeps) {
	r.Post("/places/export-excel", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Places []places.PlaceDetail `json:"places"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(w, req, err)
			return
		}
		if len(body.Places) == 0 {
			writeError(w, req, &ValidationError{Param: "places", Reason: "must be a non-empty array"})
			return
		}
		buf, err := d.Exporter.Export(body.Places)
		if err != nil {
			writeError(w, req, err)
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename=places_export.xlsx`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf)
	})
}
