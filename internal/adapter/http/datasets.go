package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ads-etl/internal/core/domain"
)

// handleListDatasets returns a summary of every dataset in the registry.
func (h *Handler) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.svc.Summaries())
}

// handleGetDataset returns the summary of one dataset or 404.
func (h *Handler) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(chi.URLParam(r, "name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render.JSON(w, r, summary)
}

// handleGetViolations returns the schema violations of one dataset. The
// list is empty when validation is disabled or the data is clean.
func (h *Handler) handleGetViolations(w http.ResponseWriter, r *http.Request) {
	vs, err := h.svc.Violations(chi.URLParam(r, "name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if vs == nil {
		vs = domain.Violations{}
	}
	render.JSON(w, r, vs)
}
