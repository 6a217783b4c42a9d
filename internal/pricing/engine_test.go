package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/catalog"
	"github.com/Robiul7575/fnfrobeul1/internal/promo"
)

func product(name, pack, tp, vat string) catalog.Product {
	return catalog.Product{
		Name:     name,
		PackSize: pack,
		TP:       decimal.RequireFromString(tp),
		VAT:      decimal.RequireFromString(vat),
	}
}

func TestEffectiveUnitPriceDefault(t *testing.T) {
	line := Line{Product: product("Renamycin", "100 ml", "85.50", "12.83"), Qty: 2}
	got := EffectiveUnitPrice(line)
	if !got.Equal(decimal.RequireFromString("85.50")) {
		t.Fatalf("expected base TP 85.50, got %s", got)
	}
}

func TestEffectiveUnitPriceOverride(t *testing.T) {
	custom := decimal.RequireFromString("80")
	line := Line{Product: product("Renamycin", "100 ml", "85.50", "12.83"), Qty: 2, CustomTP: &custom}
	got := EffectiveUnitPrice(line)
	if !got.Equal(custom) {
		t.Fatalf("expected override 80, got %s", got)
	}
}

func TestComputeTotalsIdentity(t *testing.T) {
	lines := []Line{
		{Product: product("A", "x", "100.00", "15.00"), Qty: 3},
		{Product: product("B", "y", "42.75", "6.41"), Qty: 5},
	}
	totals := Compute(lines)
	if !totals.Total.Equal(totals.Subtotal.Add(totals.VAT)) {
		t.Fatalf("total %s != subtotal %s + vat %s", totals.Total, totals.Subtotal, totals.VAT)
	}
	if !totals.Subtotal.Equal(decimal.RequireFromString("513.75")) {
		t.Fatalf("expected subtotal 513.75, got %s", totals.Subtotal)
	}
	if !totals.VAT.Equal(decimal.RequireFromString("77.05")) {
		t.Fatalf("expected vat 77.05, got %s", totals.VAT)
	}
}

func TestComputeVATIgnoresCustomPrice(t *testing.T) {
	custom := decimal.RequireFromString("50")
	lines := []Line{{Product: product("A", "x", "100.00", "15.00"), Qty: 2, CustomTP: &custom}}
	totals := Compute(lines)
	if !totals.Subtotal.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("expected subtotal 100, got %s", totals.Subtotal)
	}
	if !totals.VAT.Equal(decimal.RequireFromString("30.00")) {
		t.Fatalf("custom price must not change VAT, got %s", totals.VAT)
	}
}

func TestComputeEmpty(t *testing.T) {
	totals := Compute(nil)
	if !totals.Subtotal.IsZero() || !totals.VAT.IsZero() || !totals.Total.IsZero() {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestItemCount(t *testing.T) {
	lines := []Line{
		{Product: product("A", "x", "10", "1"), Qty: 3},
		{Product: product("B", "y", "10", "1"), Qty: 7},
	}
	if got := ItemCount(lines); got != 10 {
		t.Fatalf("expected 10 items, got %d", got)
	}
}

func TestComputeInvoiceGroupDiscount(t *testing.T) {
	lines := []Line{{Product: product("A", "x", "100.00", "15.00"), Qty: 10}}
	b := ComputeInvoice(lines, nil, 2)
	if !b.GroupDiscount.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected group discount 20 on subtotal 1000 at 2%%, got %s", b.GroupDiscount)
	}
	if !b.GrossAfterDiscount.Equal(decimal.RequireFromString("980")) {
		t.Fatalf("expected gross 980, got %s", b.GrossAfterDiscount)
	}
	if !b.NetPayable.Equal(decimal.RequireFromString("1130")) {
		t.Fatalf("expected net payable 1130, got %s", b.NetPayable)
	}
}

func TestComputeInvoiceNetPayableMonotonic(t *testing.T) {
	t.Run("discount percent never raises net payable", func(t *testing.T) {
		lines := []Line{
			{Product: product("ND+IBD Vaccine", "250 Dose", "1250.00", "62.50"), Qty: 8},
			{Product: product("Renamycin", "100 ml", "85.50", "12.83"), Qty: 3},
		}
		prev := ComputeInvoice(lines, promo.Default(), 0).NetPayable
		for pct := 1; pct <= 100; pct++ {
			net := ComputeInvoice(lines, promo.Default(), pct).NetPayable
			if net.GreaterThan(prev) {
				t.Fatalf("net payable rose from %s to %s at %d%%", prev, net, pct)
			}
			prev = net
		}
	})

	t.Run("higher vat never lowers net payable", func(t *testing.T) {
		vats := []string{"0.00", "15.00", "62.50", "570.00"}
		prev := decimal.Zero
		for _, vat := range vats {
			lines := []Line{{Product: product("ND+IBD Vaccine", "250 Dose", "1250.00", vat), Qty: 4}}
			net := ComputeInvoice(lines, promo.Default(), 5).NetPayable
			if net.LessThan(prev) {
				t.Fatalf("net payable fell from %s to %s at vat %s", prev, net, vat)
			}
			prev = net
		}
	})
}

func TestComputeRemoveThenReAddRestoresTotals(t *testing.T) {
	custom := decimal.RequireFromString("80")
	removed := Line{Product: product("Renamycin", "100 ml", "85.50", "12.83"), Qty: 2, CustomTP: &custom}
	lines := []Line{
		{Product: product("A", "x", "100.00", "15.00"), Qty: 3},
		removed,
	}
	before := Compute(lines)

	without := Compute(lines[:1])
	if without.Total.Equal(before.Total) {
		t.Fatal("removal should change the total")
	}

	after := Compute(append(lines[:1:1], removed))
	if !after.Subtotal.Equal(before.Subtotal) || !after.VAT.Equal(before.VAT) || !after.Total.Equal(before.Total) {
		t.Fatalf("re-added line totals %+v != original %+v", after, before)
	}
}

func TestComputeInvoiceLineDiscount(t *testing.T) {
	lines := []Line{
		{Product: product("ND+IBD Vaccine", "250 Dose", "1250.00", "0.00"), Qty: 4},
		{Product: product("ND+IBD Vaccine", "1000 Dose", "3800.00", "0.00"), Qty: 2},
		{Product: product("Renamycin", "100 ml", "85.50", "12.83"), Qty: 1},
	}
	b := ComputeInvoice(lines, promo.Default(), 0)
	want := decimal.RequireFromString("1000")
	if !b.LineItemDiscount.Equal(want) {
		t.Fatalf("expected line discount 1000 (4x100 + 2x300), got %s", b.LineItemDiscount)
	}
}

func TestComputeInvoiceVATNeverDiscounted(t *testing.T) {
	lines := []Line{{Product: product("ND+IBD Vaccine", "1000 Dose", "3800.00", "570.00"), Qty: 5}}
	b := ComputeInvoice(lines, promo.Default(), 10)
	if !b.VAT.Equal(decimal.RequireFromString("2850.00")) {
		t.Fatalf("expected vat 2850, got %s", b.VAT)
	}
	if !b.NetPayable.Equal(b.GrossAfterDiscount.Add(b.VAT)) {
		t.Fatalf("net payable %s != gross %s + vat %s", b.NetPayable, b.GrossAfterDiscount, b.VAT)
	}
}

func TestComputeInvoiceZeroPercent(t *testing.T) {
	lines := []Line{{Product: product("A", "x", "100", "0"), Qty: 1}}
	b := ComputeInvoice(lines, nil, 0)
	if !b.GroupDiscount.IsZero() {
		t.Fatalf("expected zero group discount, got %s", b.GroupDiscount)
	}
	if !b.NetPayable.Equal(b.Subtotal) {
		t.Fatalf("expected net payable %s to equal subtotal %s", b.NetPayable, b.Subtotal)
	}
}
