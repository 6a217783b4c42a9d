package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
	"github.com/Robiul7575/fnfrobeul1/internal/promo"
)

// Line describes a cart line used for pricing calculation.
type Line struct {
	Product  catalog.Product
	Qty      int
	CustomTP *decimal.Decimal
}

// EffectiveUnitPrice returns the line's trade price override when set,
// otherwise the product's base trade price. Every total in this package
// goes through this function so the live cart and the rendered invoice can
// never disagree.
func EffectiveUnitPrice(l Line) decimal.Decimal {
	if l.CustomTP != nil {
		return *l.CustomTP
	}
	return l.Product.TP
}

// Totals aggregates the gross cart view: no discounts applied.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`
}

// Compute calculates gross totals over the provided lines.
func Compute(lines []Line) Totals {
	subtotal := decimal.Zero
	vat := decimal.Zero
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(l.Qty))
		subtotal = subtotal.Add(EffectiveUnitPrice(l).Mul(qty))
		vat = vat.Add(l.Product.VAT.Mul(qty))
	}
	return Totals{Subtotal: subtotal, VAT: vat, Total: subtotal.Add(vat)}
}

// ItemCount sums quantities across lines.
func ItemCount(lines []Line) int {
	count := 0
	for _, l := range lines {
		if l.Qty > 0 {
			count += l.Qty
		}
	}
	return count
}

// Breakdown extends Totals with the invoice-only figures.
type Breakdown struct {
	Totals
	LineItemDiscount   decimal.Decimal `json:"lineItemDiscount"`
	GroupDiscount      decimal.Decimal `json:"groupDiscount"`
	GrossAfterDiscount decimal.Decimal `json:"grossAfterDiscount"`
	NetPayable         decimal.Decimal `json:"netPayable"`
}

// ComputeInvoice derives the invoice breakdown. The group discount applies
// to the effective-price subtotal before line discounts; VAT is never
// discounted.
func ComputeInvoice(lines []Line, rules promo.Table, discountPercent int) Breakdown {
	t := Compute(lines)
	lineDiscount := decimal.Zero
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		unit := rules.UnitDiscount(l.Product)
		lineDiscount = lineDiscount.Add(unit.Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	groupDiscount := t.Subtotal.Mul(decimal.NewFromInt(int64(discountPercent))).Div(decimal.NewFromInt(100))
	gross := t.Subtotal.Sub(lineDiscount).Sub(groupDiscount)
	return Breakdown{
		Totals:             t,
		LineItemDiscount:   lineDiscount,
		GroupDiscount:      groupDiscount,
		GrossAfterDiscount: gross,
		NetPayable:         gross.Add(t.VAT),
	}
}
