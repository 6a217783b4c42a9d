package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
	"github.com/Robiul7575/fnfrobeul1/internal/pricing"
)

// ErrNotFound indicates the requested cart could not be located or expired.
var ErrNotFound = errors.New("cart not found")

// ErrInvalidInput is returned when the provided payload is invalid.
var ErrInvalidInput = errors.New("invalid input")

// Service encapsulates cart domain operations on top of the in-memory
// store. All monetary interpretation of a cart goes through Lines so the
// live summary and the invoice share one arithmetic path.
type Service struct {
	Store                  *Store
	Catalog                *catalog.Service
	TTL                    time.Duration
	Now                    func() time.Time
	DefaultDiscountPercent int
}

func (s *Service) ttl() time.Duration {
	if s == nil || s.TTL <= 0 {
		return 24 * time.Hour
	}
	return s.TTL
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create opens a new cart seeded with the default group discount percent.
func (s *Service) Create(ctx context.Context) (*Cart, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("cart service not configured")
	}
	return s.Store.Create(s.now(), s.ttl(), s.DefaultDiscountPercent), nil
}

// Get returns a snapshot of the cart.
func (s *Service) Get(ctx context.Context, id string) (*Cart, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("cart service not configured")
	}
	cart, ok := s.Store.Get(id, s.now(), s.ttl())
	if !ok {
		return nil, ErrNotFound
	}
	return cart, nil
}

// AddItem adds qty units of the product, incrementing an existing line.
// A qty below one is rejected.
func (s *Service) AddItem(ctx context.Context, id string, productID int, qty int) (*Cart, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("qty must be positive: %w", ErrInvalidInput)
	}
	product, err := s.Catalog.GetProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("unknown product: %w", ErrInvalidInput)
	}
	return s.update(id, func(c *Cart) error {
		if i := c.itemIndex(productID); i >= 0 {
			c.Items[i].Qty += qty
			return nil
		}
		c.Items = append(c.Items, Item{Product: product, Qty: qty})
		return nil
	})
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line; setting quantity on a missing product is rejected.
func (s *Service) SetQuantity(ctx context.Context, id string, productID int, qty int) (*Cart, error) {
	return s.update(id, func(c *Cart) error {
		i := c.itemIndex(productID)
		if i < 0 {
			return fmt.Errorf("product %d not in cart: %w", productID, ErrInvalidInput)
		}
		if qty <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
		c.Items[i].Qty = qty
		return nil
	})
}

// SetCustomPrice overrides the trade price of a line. A nil price clears
// the override; negative prices are rejected.
func (s *Service) SetCustomPrice(ctx context.Context, id string, productID int, price *decimal.Decimal) (*Cart, error) {
	if price != nil && price.IsNegative() {
		return nil, fmt.Errorf("custom price must not be negative: %w", ErrInvalidInput)
	}
	return s.update(id, func(c *Cart) error {
		i := c.itemIndex(productID)
		if i < 0 {
			return fmt.Errorf("product %d not in cart: %w", productID, ErrInvalidInput)
		}
		if price == nil {
			c.Items[i].CustomTP = nil
			return nil
		}
		v := *price
		c.Items[i].CustomTP = &v
		return nil
	})
}

// RemoveItem drops a line. Removing an absent product is a no-op.
func (s *Service) RemoveItem(ctx context.Context, id string, productID int) (*Cart, error) {
	return s.update(id, func(c *Cart) error {
		if i := c.itemIndex(productID); i >= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return nil
	})
}

// Clear removes every line but keeps the cart and its discount percent.
func (s *Service) Clear(ctx context.Context, id string) (*Cart, error) {
	return s.update(id, func(c *Cart) error {
		c.Items = nil
		return nil
	})
}

// SetDiscountPercent replaces the group discount percent. Values outside
// 0..100 are rejected without touching the cart.
func (s *Service) SetDiscountPercent(ctx context.Context, id string, percent int) (*Cart, error) {
	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("discount percent must be within 0..100: %w", ErrInvalidInput)
	}
	return s.update(id, func(c *Cart) error {
		c.DiscountPercent = percent
		return nil
	})
}

// Lines converts a cart snapshot into pricing lines.
func Lines(c *Cart) []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, pricing.Line{Product: it.Product, Qty: it.Qty, CustomTP: it.CustomTP})
	}
	return lines
}

func (s *Service) update(id string, fn func(*Cart) error) (*Cart, error) {
	if s == nil || s.Store == nil {
		return nil, errors.New("cart service not configured")
	}
	cart, ok, err := s.Store.Update(id, s.now(), s.ttl(), fn)
	if !ok {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}
