package promo

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
)

func TestUnitDiscountFirstMatchWins(t *testing.T) {
	table := Default()
	small := catalog.Product{Name: "ND+IBD Vaccine", PackSize: "250 Dose"}
	large := catalog.Product{Name: "ND+IBD Vaccine", PackSize: "1000 Dose"}
	other := catalog.Product{Name: "Renamycin", PackSize: "100 ml"}

	if got := table.UnitDiscount(small); !got.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected 100 for 250-dose pack, got %s", got)
	}
	if got := table.UnitDiscount(large); !got.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected 300 for other packs, got %s", got)
	}
	if got := table.UnitDiscount(other); !got.IsZero() {
		t.Fatalf("expected zero for unmatched product, got %s", got)
	}
}

func TestUnitDiscountEmptyTable(t *testing.T) {
	var table Table
	p := catalog.Product{Name: "ND+IBD Vaccine", PackSize: "250 Dose"}
	if got := table.UnitDiscount(p); !got.IsZero() {
		t.Fatalf("expected zero on empty table, got %s", got)
	}
}
