package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/materia/pkg/domain/model/config"
	"github.com/secmon-lab/materia/pkg/usecase"
	"github.com/secmon-lab/materia/pkg/utils/errutil"
	"github.com/secmon-lab/materia/pkg/utils/safe"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type siteResponse struct {
	Title   string `json:"title"`
	Heading string `json:"heading"`
}

// chartHandler builds the figure for one interaction. Upload failures do
// not produce error statuses: the figure itself carries the diagnostic
// in its title.
func chartHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input usecase.RenderInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to decode chart request"), http.StatusBadRequest)
			return
		}

		if input.Trigger != "" {
			if err := input.Trigger.Validate(); err != nil {
				errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
				return
			}
		}

		fig := uc.Render(r.Context(), input)
		writeJSON(r.Context(), w, http.StatusOK, fig)
	}
}

// exportHandler serves the materiality map as a PNG download.
func exportHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company := r.URL.Query().Get("company")

		name, data, err := uc.Export(r.Context(), company)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		safe.Write(r.Context(), w, data)
	}
}

// templateHandler serves the upload template workbook.
func templateHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := uc.WriteTemplate(r.Context(), &buf); err != nil {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="Materiality_Template.xlsx"`)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		safe.Write(r.Context(), w, buf.Bytes())
	}
}

// siteHandler returns the page branding for the frontend.
func siteHandler(site *config.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, siteResponse{
			Title:   site.Title,
			Heading: site.Heading,
		})
	}
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		errutil.Handle(ctx, err, "failed to encode JSON response")
	}
}
