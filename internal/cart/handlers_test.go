package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Robiul7575/fnfrobeul1/internal/cart"
)

type cartResponse struct {
	Data cart.View `json:"data"`
}

func newCartRouter(t *testing.T) *chi.Mux {
	t.Helper()
	now := time.Now()
	handler := &cart.Handler{Svc: newService(t, &now), Currency: "BDT"}
	r := chi.NewRouter()
	r.Route("/api/v1/carts", func(c chi.Router) {
		c.Post("/", handler.Create)
		c.Get("/{id}", handler.Get)
		c.Post("/{id}/items", handler.AddItem)
		c.Patch("/{id}/items/{productId}", handler.UpdateItem)
		c.Delete("/{id}/items/{productId}", handler.RemoveItem)
		c.Delete("/{id}/items", handler.ClearItems)
		c.Put("/{id}/discount", handler.SetDiscount)
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var resp cartResponse
	if rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestCartLifecycleOverHTTP(t *testing.T) {
	r := newCartRouter(t)

	rec, created := doJSON(t, r, http.MethodPost, "/api/v1/carts/", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, created.Data.ID)
	require.Equal(t, 2, created.Data.DiscountPercent)
	require.Equal(t, "BDT", created.Data.Currency)

	base := "/api/v1/carts/" + created.Data.ID

	rec, added := doJSON(t, r, http.MethodPost, base+"/items", `{"productId":18,"qty":8}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, added.Data.Items, 1)
	require.Equal(t, 8, added.Data.Items[0].Qty)
	require.Equal(t, 1, added.Data.Items[0].BonusQty)
	require.True(t, added.Data.Items[0].LineTotal.Equal(decimal.RequireFromString("10500.00")))
	require.True(t, added.Data.Pricing.Total.Equal(
		added.Data.Pricing.Subtotal.Add(added.Data.Pricing.VAT)))

	rec, updated := doJSON(t, r, http.MethodPatch, base+"/items/18", `{"qty":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 4, updated.Data.Items[0].Qty)
	require.Equal(t, 0, updated.Data.Items[0].BonusQty)

	rec, priced := doJSON(t, r, http.MethodPatch, base+"/items/18", `{"customTp":"1200"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, priced.Data.Items[0].CustomTP)
	require.True(t, priced.Data.Items[0].UnitTP.Equal(decimal.RequireFromString("1200")))

	rec, cleared := doJSON(t, r, http.MethodPatch, base+"/items/18", `{"clearCustomTp":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, cleared.Data.Items[0].CustomTP)

	rec, discounted := doJSON(t, r, http.MethodPut, base+"/discount", `{"percent":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 5, discounted.Data.DiscountPercent)

	rec, removed := doJSON(t, r, http.MethodDelete, base+"/items/18", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, removed.Data.Items)
}

func TestCartHTTPErrors(t *testing.T) {
	r := newCartRouter(t)

	rec, _ := doJSON(t, r, http.MethodGet, "/api/v1/carts/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, created := doJSON(t, r, http.MethodPost, "/api/v1/carts/", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/v1/carts/" + created.Data.ID

	rec, _ = doJSON(t, r, http.MethodPost, base+"/items", `{"productId":9999}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPut, base+"/discount", `{"percent":150}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPut, base+"/discount", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, r, http.MethodPatch, base+"/items/18", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
