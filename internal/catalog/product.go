package catalog

import "github.com/shopspring/decimal"

// Category classifies a product by dosage form.
type Category string

const (
	CategoryBolus     Category = "Bolus"
	CategoryInjection Category = "Injection"
	CategoryLiquid    Category = "Liquid"
	CategoryPowder    Category = "Powder"
	CategoryVaccine   Category = "Vaccine"
)

// Categories lists every dosage form in display order.
func Categories() []Category {
	return []Category{CategoryBolus, CategoryInjection, CategoryLiquid, CategoryPowder, CategoryVaccine}
}

// Valid reports whether the category is one of the known dosage forms.
func (c Category) Valid() bool {
	switch c {
	case CategoryBolus, CategoryInjection, CategoryLiquid, CategoryPowder, CategoryVaccine:
		return true
	}
	return false
}

// Product is an immutable catalog entry. TPWithVAT is supplied by the data
// provider and must equal TP+VAT; the pricing engine never recomputes it.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	PackSize  string          `json:"packSize"`
	TP        decimal.Decimal `json:"tp"`
	VAT       decimal.Decimal `json:"vat"`
	TPWithVAT decimal.Decimal `json:"tp_vat"`
	MRP       decimal.Decimal `json:"mrp"`
	Bonus     string          `json:"bonus"`
}
