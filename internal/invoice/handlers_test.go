package invoice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/Robiul7575/fnfrobeul1/internal/cart"
	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
	"github.com/Robiul7575/fnfrobeul1/internal/invoice"
)

func newRouter(t *testing.T) (*chi.Mux, *cart.Service) {
	t.Helper()
	catalogSvc, err := catalog.NewService(catalog.ServiceConfig{
		Products:     catalog.Products(),
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	})
	require.NoError(t, err)
	carts := &cart.Service{
		Store:                  cart.NewStore(),
		Catalog:                catalogSvc,
		TTL:                    time.Hour,
		DefaultDiscountPercent: 2,
	}
	handler := &invoice.Handler{
		Carts:    carts,
		Builder:  &invoice.Builder{},
		Validate: validator.New(),
	}
	r := chi.NewRouter()
	r.Post("/api/v1/carts/{id}/invoice", handler.Generate)
	return r, carts
}

func TestGenerateRequiresChemistName(t *testing.T) {
	r, carts := newRouter(t)
	c, err := carts.Create(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+c.ID+"/invoice", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateRejectsUnknownPaymentMode(t *testing.T) {
	r, carts := newRouter(t)
	c, err := carts.Create(context.Background())
	require.NoError(t, err)

	body := `{"chemistName":"Karim Medical Hall","paymentMode":"Barter"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+c.ID+"/invoice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateUnknownCart(t *testing.T) {
	r, _ := newRouter(t)
	body := `{"chemistName":"Karim Medical Hall"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/missing/invoice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateHTML(t *testing.T) {
	r, carts := newRouter(t)
	ctx := context.Background()
	c, err := carts.Create(ctx)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, c.ID, 1, 5)
	require.NoError(t, err)

	body := `{"chemistName":"Karim Medical Hall","paymentMode":"Cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+c.ID+"/invoice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "MUSHAK-6.3")
	require.Contains(t, rec.Body.String(), "Karim Medical Hall")
}

func TestGenerateJSONDocument(t *testing.T) {
	r, carts := newRouter(t)
	ctx := context.Background()
	c, err := carts.Create(ctx)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, c.ID, 1, 5)
	require.NoError(t, err)

	body := `{"chemistName":"Karim Medical Hall"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+c.ID+"/invoice?format=json", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data invoice.Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.InvoiceNo)
	require.True(t, strings.HasPrefix(resp.Data.InvoiceNo, "CUM"))
	require.Len(t, resp.Data.Lines, 1+bonusRows(resp.Data))
	require.True(t, resp.Data.Breakdown.NetPayable.Equal(
		resp.Data.Breakdown.GrossAfterDiscount.Add(resp.Data.Breakdown.VAT)))
}

func bonusRows(doc invoice.Document) int {
	n := 0
	for _, l := range doc.Lines {
		if l.IsBonus {
			n++
		}
	}
	return n
}

func TestGenerateDoesNotMutateCart(t *testing.T) {
	r, carts := newRouter(t)
	ctx := context.Background()
	c, err := carts.Create(ctx)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, c.ID, 1, 5)
	require.NoError(t, err)

	body := `{"chemistName":"Karim Medical Hall"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/carts/"+c.ID+"/invoice", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	after, err := carts.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, after.Items, 1)
	require.Equal(t, 5, after.Items[0].Qty)
	require.Equal(t, 2, after.DiscountPercent)
}
