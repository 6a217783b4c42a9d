package promo

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
)

// Rule grants a fixed per-unit Taka discount to products whose name and
// pack size contain the configured markers. Empty markers match anything.
type Rule struct {
	NameContains string
	PackContains string
	Amount       decimal.Decimal
}

func (r Rule) matches(p catalog.Product) bool {
	if r.NameContains != "" && !strings.Contains(p.Name, r.NameContains) {
		return false
	}
	if r.PackContains != "" && !strings.Contains(p.PackSize, r.PackContains) {
		return false
	}
	return true
}

// Table is an ordered list of line-discount rules; the first matching rule
// wins, so more specific rules must come first.
type Table []Rule

// UnitDiscount returns the per-unit discount for the product, zero when no
// rule matches.
func (t Table) UnitDiscount(p catalog.Product) decimal.Decimal {
	for _, r := range t {
		if r.matches(p) {
			return r.Amount
		}
	}
	return decimal.Zero
}

// Default returns the current promotional table: ND+IBD vaccines carry a
// per-vial discount, 100 Taka on the 250-dose pack and 300 Taka otherwise.
func Default() Table {
	return Table{
		{NameContains: "ND+IBD", PackContains: "250", Amount: decimal.NewFromInt(100)},
		{NameContains: "ND+IBD", Amount: decimal.NewFromInt(300)},
	}
}
