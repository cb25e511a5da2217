package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/dcastanera/possync/internal/app"
	"github.com/dcastanera/possync/models"
)

func (h *Handler) acceptSale(w http.ResponseWriter, r *http.Request) {
	var sale models.SaleSubmission
	if err := json.NewDecoder(r.Body).Decode(&sale); err != nil {
		http.Error(w, app.MsgInvalidSalePayload, http.StatusBadRequest)
		return
	}
	if len(sale.Items) == 0 {
		http.Error(w, app.MsgSaleHasNoItems, http.StatusBadRequest)
		return
	}

	id := uuid.NewString()
	h.logger.Info().
		Str("func", "Handler.acceptSale").
		Str("sale_id", id).
		Int("items", len(sale.Items)).
		Str("payment_method", string(sale.PaymentMethod)).
		Msg("sale accepted")

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
