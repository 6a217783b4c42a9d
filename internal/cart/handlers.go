package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
	"github.com/Robiul7575/fnfrobeul1/internal/common"
	"github.com/Robiul7575/fnfrobeul1/internal/obs"
	"github.com/Robiul7575/fnfrobeul1/internal/pricing"
)

// Handler wires cart operations to HTTP.
type Handler struct {
	Svc      *Service
	Currency string
}

// ItemView is one cart line as rendered to clients. LineTotal uses the
// catalog VAT-inclusive price, matching the order-sheet presentation.
type ItemView struct {
	ProductID     int              `json:"productId"`
	Name          string           `json:"name"`
	Category      catalog.Category `json:"category"`
	PackSize      string           `json:"packSize"`
	Qty           int              `json:"qty"`
	UnitTP        decimal.Decimal  `json:"unitTp"`
	CustomTP      *decimal.Decimal `json:"customTp,omitempty"`
	UnitVAT       decimal.Decimal  `json:"unitVat"`
	UnitTPWithVAT decimal.Decimal  `json:"unitTpWithVat"`
	LineTotal     decimal.Decimal  `json:"lineTotal"`
	BonusQty      int              `json:"bonusQty"`
	BonusRule     string           `json:"bonusRule,omitempty"`
}

// View is the full cart payload with live totals.
type View struct {
	ID              string         `json:"id"`
	Items           []ItemView     `json:"items"`
	DiscountPercent int            `json:"discountPercent"`
	ItemCount       int            `json:"itemCount"`
	Pricing         pricing.Totals `json:"pricing"`
	Currency        string         `json:"currency"`
}

// NewView renders a cart snapshot.
func NewView(c *Cart, currency string) View {
	items := make([]ItemView, 0, len(c.Items))
	for _, it := range c.Items {
		line := pricing.Line{Product: it.Product, Qty: it.Qty, CustomTP: it.CustomTP}
		items = append(items, ItemView{
			ProductID:     it.Product.ID,
			Name:          it.Product.Name,
			Category:      it.Product.Category,
			PackSize:      it.Product.PackSize,
			Qty:           it.Qty,
			UnitTP:        pricing.EffectiveUnitPrice(line),
			CustomTP:      it.CustomTP,
			UnitVAT:       it.Product.VAT,
			UnitTPWithVAT: it.Product.TPWithVAT,
			LineTotal:     it.Product.TPWithVAT.Mul(decimal.NewFromInt(int64(it.Qty))),
			BonusQty:      pricing.Bonus(it.Product.Bonus, it.Qty),
			BonusRule:     it.Product.Bonus,
		})
	}
	lines := Lines(c)
	return View{
		ID:              c.ID,
		Items:           items,
		DiscountPercent: c.DiscountPercent,
		ItemCount:       pricing.ItemCount(lines),
		Pricing:         pricing.Compute(lines),
		Currency:        currency,
	}
}

// Create opens a new cart.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Svc.Create(r.Context())
	if err != nil {
		h.writeError(w, "create", err)
		return
	}
	countOp("create", "ok")
	common.Data(w, http.StatusCreated, NewView(cart, h.Currency))
}

// Get returns cart contents and live totals.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "get", err)
		return
	}
	common.Data(w, http.StatusOK, NewView(cart, h.Currency))
}

// AddItem adds units of a product to the cart.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ProductID int `json:"productId"`
		Qty       int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json body", nil)
		return
	}
	if payload.Qty == 0 {
		payload.Qty = 1
	}
	cart, err := h.Svc.AddItem(r.Context(), chi.URLParam(r, "id"), payload.ProductID, payload.Qty)
	if err != nil {
		h.writeError(w, "add_item", err)
		return
	}
	countOp("add_item", "ok")
	common.Data(w, http.StatusOK, NewView(cart, h.Currency))
}

// UpdateItem changes a line's quantity or trade-price override.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	var payload struct {
		Qty           *int             `json:"qty"`
		CustomTP      *decimal.Decimal `json:"customTp"`
		ClearCustomTP bool             `json:"clearCustomTp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid json body", nil)
		return
	}
	id := chi.URLParam(r, "id")
	var cart *Cart
	switch {
	case payload.Qty != nil:
		cart, err = h.Svc.SetQuantity(r.Context(), id, productID, *payload.Qty)
	case payload.ClearCustomTP:
		cart, err = h.Svc.SetCustomPrice(r.Context(), id, productID, nil)
	case payload.CustomTP != nil:
		cart, err = h.Svc.SetCustomPrice(r.Context(), id, productID, payload.CustomTP)
	default:
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "qty, customTp, or clearCustomTp required", nil)
		return
	}
	if err != nil {
		h.writeError(w, "update_item", err)
		return
	}
	countOp("update_item", "ok")
	common.Data(w, http.StatusOK, NewView(cart, h.Currency))
}

// RemoveItem drops a line from the cart.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid product id", nil)
		return
	}
	cart, err := h.Svc.RemoveItem(r.Context(), chi.URLParam(r, "id"), productID)
	if err != nil {
		h.writeError(w, "remove_item", err)
		return
	}
	countOp("remove_item", "ok")
	common.Data(w, http.StatusOK, NewView(cart, h.Currency))
}

// ClearItems empties the cart, keeping its discount percent.
func (h *Handler) ClearItems(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Svc.Clear(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, "clear", err)
		return
	}
	countOp("clear", "ok")
	common.Data(w, http.StatusOK, NewView(cart, h.Currency))
}

// SetDiscount replaces the group discount percent.
func (h *Handler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Percent *int `json:"percent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Percent == nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "percent required", nil)
		return
	}
	cart, err := h.Svc.SetDiscountPercent(r.Context(), chi.URLParam(r, "id"), *payload.Percent)
	if err != nil {
		h.writeError(w, "set_discount", err)
		return
	}
	countOp("set_discount", "ok")
	common.Data(w, http.StatusOK, NewView(cart, h.Currency))
}

func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		countOp(op, "not_found")
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "cart not found", nil)
	case errors.Is(err, ErrInvalidInput):
		countOp(op, "invalid")
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
	default:
		countOp(op, "error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "cart operation failed", nil)
	}
}

func countOp(op, result string) {
	if obs.CartOpsTotal != nil {
		obs.CartOpsTotal.WithLabelValues(op, result).Inc()
	}
}
