package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
)

// Item is a single cart line. CustomTP overrides the product trade price
// when set; VAT always follows the catalog value.
type Item struct {
	Product  catalog.Product
	Qty      int
	CustomTP *decimal.Decimal
}

// Cart holds ordered lines keyed by product id. Order follows first
// insertion and survives quantity updates.
type Cart struct {
	ID              string
	Items           []Item
	DiscountPercent int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ExpiresAt       time.Time
}

func (c *Cart) itemIndex(productID int) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) clone() *Cart {
	cp := *c
	cp.Items = make([]Item, len(c.Items))
	copy(cp.Items, c.Items)
	for i := range cp.Items {
		if cp.Items[i].CustomTP != nil {
			v := *cp.Items[i].CustomTP
			cp.Items[i].CustomTP = &v
		}
	}
	return &cp
}

// Store keeps carts in memory. Expired carts are dropped on access, so no
// background sweeper is needed.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Create registers a new cart with the given discount percent and expiry.
func (s *Store) Create(now time.Time, ttl time.Duration, discountPercent int) *Cart {
	cart := &Cart{
		ID:              uuid.NewString(),
		DiscountPercent: discountPercent,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       now.Add(ttl),
	}
	s.mu.Lock()
	s.carts[cart.ID] = cart
	s.mu.Unlock()
	return cart.clone()
}

// Get returns a snapshot of the cart and refreshes its expiry.
func (s *Store) Get(id string, now time.Time, ttl time.Duration) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[id]
	if !ok {
		return nil, false
	}
	if !now.Before(cart.ExpiresAt) {
		delete(s.carts, id)
		return nil, false
	}
	cart.ExpiresAt = now.Add(ttl)
	return cart.clone(), true
}

// Update applies fn to the live cart under lock and refreshes its expiry.
// A non-nil error from fn leaves the cart untouched.
func (s *Store) Update(id string, now time.Time, ttl time.Duration, fn func(*Cart) error) (*Cart, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[id]
	if !ok {
		return nil, false, nil
	}
	if !now.Before(cart.ExpiresAt) {
		delete(s.carts, id)
		return nil, false, nil
	}
	work := cart.clone()
	if err := fn(work); err != nil {
		return nil, true, err
	}
	work.UpdatedAt = now
	work.ExpiresAt = now.Add(ttl)
	s.carts[id] = work
	return work.clone(), true, nil
}

// Len reports how many carts are currently live.
func (s *Store) Len(now time.Time) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, cart := range s.carts {
		if now.Before(cart.ExpiresAt) {
			n++
		}
	}
	return n
}
