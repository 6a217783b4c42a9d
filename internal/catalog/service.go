package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Robiul7575/fnfrobeul1/internal/common"
)

// Service serves the static price list with search, filter, and pagination.
type Service struct {
	products     []Product
	byID         map[int]Product
	defaultPage  int
	defaultLimit int
	maxLimit     int
}

// ServiceConfig groups Service dependencies.
type ServiceConfig struct {
	Products     []Product
	DefaultPage  int
	DefaultLimit int
	MaxLimit     int
}

// ListParams captures filters for product listing.
type ListParams struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

// ProductListResult contains list data and pagination metadata.
type ProductListResult struct {
	Items []Product
	Total int
	Page  int
	Limit int
}

// NewService constructs a Service instance and indexes products by id.
func NewService(cfg ServiceConfig) (*Service, error) {
	if len(cfg.Products) == 0 {
		return nil, errors.New("catalog: product list is required")
	}
	byID := make(map[int]Product, len(cfg.Products))
	for _, p := range cfg.Products {
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("catalog: product %d has unknown category %q", p.ID, p.Category)
		}
		byID[p.ID] = p
	}
	defaultPage := cfg.DefaultPage
	if defaultPage < 1 {
		defaultPage = 1
	}
	defaultLimit := cfg.DefaultLimit
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	maxLimit := cfg.MaxLimit
	if maxLimit < 1 {
		maxLimit = 100
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return &Service{
		products:     append([]Product(nil), cfg.Products...),
		byID:         byID,
		defaultPage:  defaultPage,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}, nil
}

// ParseListParams normalises raw query values into strongly typed filters.
func (s *Service) ParseListParams(values url.Values) (ListParams, error) {
	params := ListParams{
		Page:  s.defaultPage,
		Limit: s.defaultLimit,
	}
	params.Query = strings.TrimSpace(values.Get("q"))

	category := strings.TrimSpace(values.Get("category"))
	if category != "" && !strings.EqualFold(category, "All") {
		if !Category(category).Valid() {
			return params, badRequest("category", "unknown category", fmt.Errorf("category %q", category))
		}
		params.Category = category
	}

	if v := strings.TrimSpace(values.Get("page")); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, badRequest("page", "page must be a positive integer", err)
		}
		params.Page = page
	}

	limit := s.defaultLimit
	if v := strings.TrimSpace(values.Get("limit")); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 1 {
			return params, badRequest("limit", "limit must be a positive integer", err)
		}
		limit = l
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	params.Limit = limit
	return params, nil
}

// ListProducts returns the filtered product list with pagination metadata.
func (s *Service) ListProducts(params ListParams) ProductListResult {
	filtered := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if params.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Query)) {
			continue
		}
		if params.Category != "" && !strings.EqualFold(string(p.Category), params.Category) {
			continue
		}
		filtered = append(filtered, p)
	}
	total := len(filtered)
	start := (params.Page - 1) * params.Limit
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return ProductListResult{
		Items: filtered[start:end],
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}
}

// GetProduct resolves a product by id.
func (s *Service) GetProduct(id int) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, common.NotFound("product not found")
	}
	return p, nil
}

// Len reports the catalog size; used by readiness checks.
func (s *Service) Len() int {
	return len(s.products)
}

func badRequest(field, message string, err error) *common.AppError {
	appErr := common.BadRequest(message, map[string]any{"field": field})
	appErr.Err = err
	return appErr
}
