package invoice

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Robiul7575/fnfrobeul1/internal/cart"
	"github.com/Robiul7575/fnfrobeul1/internal/common"
	"github.com/Robiul7575/fnfrobeul1/internal/obs"
)

// Handler turns carts into invoices over HTTP.
type Handler struct {
	Carts    *cart.Service
	Builder  *Builder
	Validate *validator.Validate
	Log      zerolog.Logger
}

// Generate computes the invoice for a cart and renders it as HTML, or as
// the document JSON when format=json is requested. Generation never
// mutates the cart.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var info Info
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		countRender("invalid")
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json body", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(info); err != nil {
			countRender("invalid")
			common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "invalid invoice info", map[string]any{
				"error": err.Error(),
			})
			return
		}
	}

	snapshot, err := h.Carts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			countRender("not_found")
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "cart not found", nil)
			return
		}
		countRender("error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to load cart", nil)
		return
	}

	doc := h.Builder.Build(cart.Lines(snapshot), info, snapshot.DiscountPercent)

	if r.URL.Query().Get("format") == "json" {
		countRender("ok")
		common.Data(w, http.StatusOK, doc)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		h.Log.Error().Err(err).Str("invoice_no", doc.InvoiceNo).Msg("invoice render failed")
		countRender("error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "invoice render failed", nil)
		return
	}
	countRender("ok")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func countRender(result string) {
	if obs.InvoiceRenderTotal != nil {
		obs.InvoiceRenderTotal.WithLabelValues(result).Inc()
	}
}
