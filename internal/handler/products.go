package handler

import (
	"net/http"
	"strconv"

	"github.com/dcastanera/possync/models"
)

// maxPageSize caps the limit query parameter; requests asking for more get a
// full page, matching the production API contract.
const maxPageSize = 500

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", maxPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	if skip < 0 {
		skip = 0
	}

	page := models.ProductPage{Products: []models.CachedProduct{}}
	if skip < len(h.catalog) {
		end := skip + limit
		if end > len(h.catalog) {
			end = len(h.catalog)
		}
		page.Products = h.catalog[skip:end]
		page.HasMore = end < len(h.catalog)
	}

	writeJSON(w, http.StatusOK, page)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
