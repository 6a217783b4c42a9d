package invoice

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Robiul7575/fnfrobeul1/internal/pricing"
	"github.com/Robiul7575/fnfrobeul1/internal/promo"
)

const (
	dateLayout    = "02 Jan 2006"
	printedLayout = "02 Jan 2006 15:04"
)

// Info carries the customer details collected before generating an invoice.
type Info struct {
	ChemistName string `json:"chemistName" validate:"required"`
	ChemistCode string `json:"chemistCode"`
	BINNo       string `json:"binNo"`
	Address     string `json:"address"`
	Market      string `json:"market"`
	FieldForce  string `json:"fieldForce"`
	ContactNo   string `json:"contactNo"`
	OrderNo     string `json:"orderNo"`
	PaymentMode string `json:"paymentMode" validate:"omitempty,oneof=Cash Credit"`
}

// Company holds the letterhead fields printed on every invoice.
type Company struct {
	Name            string   `json:"name"`
	CorporateOffice []string `json:"corporateOffice"`
	Factory         []string `json:"factory"`
	Depot           string   `json:"depot"`
	DepotMarker     string   `json:"depotMarker"`
}

// DefaultCompany returns the FnF Pharmaceuticals letterhead.
func DefaultCompany() Company {
	return Company{
		Name: "FnF Pharmaceuticals Ltd.",
		CorporateOffice: []string{
			"Urban Stream Commercial Complex",
			"Level # 03, 18 New Eskaton",
			"(R.K. Menon Road) Dhaka-1000.",
			"Phone: 9336001",
		},
		Factory: []string{
			"Rautail, Nagarbathan,",
			"Jhenaidah, Bangladesh.",
			"Phone: 0451-63297",
		},
		Depot:       "CUMILLA",
		DepotMarker: "CUM",
	}
}

// Number derives the invoice number from the generation timestamp: the
// depot marker followed by the last eight digits of the Unix millisecond
// clock.
func Number(marker string, at time.Time) string {
	return fmt.Sprintf("%s%08d", marker, at.UnixMilli()%100_000_000)
}

// OrderNumber builds a fallback order number for invoices generated
// without one: date prefix, depot marker, then eight random digits.
func OrderNumber(marker string, at time.Time) string {
	return fmt.Sprintf("%s%s%08d", at.Format("060102"), marker, rand.Int64N(100_000_000))
}

// Row is one label/value pair in the customer or invoice info block.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Bold  bool   `json:"bold"`
}

// LineRow is one row of the product table. Bonus rows repeat the product
// with the granted free quantity and zeroed money columns.
type LineRow struct {
	Name           string          `json:"name"`
	PackSize       string          `json:"packSize"`
	Qty            int             `json:"qty"`
	UnitTP         decimal.Decimal `json:"unitTp"`
	UnitVAT        decimal.Decimal `json:"unitVat"`
	TPWithVAT      decimal.Decimal `json:"tpWithVat"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TotalTP        decimal.Decimal `json:"totalTp"`
	IsBonus        bool            `json:"isBonus"`
}

// Document is the fully computed invoice. Both the JSON and the HTML
// channel render from this one structure, so the figures cannot drift.
type Document struct {
	Company       Company           `json:"company"`
	InvoiceNo     string            `json:"invoiceNo"`
	InvoiceDate   string            `json:"invoiceDate"`
	OrderNo       string            `json:"orderNo"`
	OrderDate     string            `json:"orderDate"`
	PrintedAt     string            `json:"printedAt"`
	ContactNo     string            `json:"contactNo"`
	CustomerRows  []Row             `json:"customerRows"`
	InvoiceRows   []Row             `json:"invoiceRows"`
	Lines         []LineRow         `json:"lines"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
	AmountInWords string            `json:"amountInWords"`
}

// Builder assembles invoice documents from cart lines.
type Builder struct {
	Rules   promo.Table
	Company Company
	Now     func() time.Time
}

func (b *Builder) now() time.Time {
	if b != nil && b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) rules() promo.Table {
	if b == nil || b.Rules == nil {
		return promo.Default()
	}
	return b.Rules
}

func (b *Builder) company() Company {
	if b == nil || b.Company.Name == "" {
		return DefaultCompany()
	}
	return b.Company
}

// Build computes the document for the given cart lines. The caller has
// already validated info; lines may be empty, yielding a zero invoice.
func (b *Builder) Build(lines []pricing.Line, info Info, discountPercent int) Document {
	now := b.now()
	company := b.company()
	breakdown := pricing.ComputeInvoice(lines, b.rules(), discountPercent)

	orderNo := info.OrderNo
	if orderNo == "" {
		orderNo = OrderNumber(company.DepotMarker, now)
	}
	invoiceNo := Number(company.DepotMarker, now)
	date := now.Format(dateLayout)

	rows := make([]LineRow, 0, len(lines))
	for _, l := range lines {
		if l.Qty <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(l.Qty))
		unitTP := pricing.EffectiveUnitPrice(l)
		unitDiscount := b.rules().UnitDiscount(l.Product)
		rows = append(rows, LineRow{
			Name:           l.Product.Name,
			PackSize:       l.Product.PackSize,
			Qty:            l.Qty,
			UnitTP:         unitTP,
			UnitVAT:        l.Product.VAT,
			TPWithVAT:      unitTP.Add(l.Product.VAT),
			DiscountAmount: unitDiscount.Mul(qty),
			TotalTP:        unitTP.Sub(unitDiscount).Mul(qty),
		})
		if bonus := pricing.Bonus(l.Product.Bonus, l.Qty); bonus > 0 {
			rows = append(rows, LineRow{
				Name:     l.Product.Name,
				PackSize: l.Product.PackSize,
				Qty:      bonus,
				IsBonus:  true,
			})
		}
	}

	return Document{
		Company:     company,
		InvoiceNo:   invoiceNo,
		InvoiceDate: date,
		OrderNo:     orderNo,
		OrderDate:   date,
		PrintedAt:   now.Format(printedLayout),
		ContactNo:   info.ContactNo,
		CustomerRows: []Row{
			{Label: "Chemist Code", Value: info.ChemistCode, Bold: true},
			{Label: "Chemist Name", Value: info.ChemistName, Bold: true},
			{Label: "BIN No", Value: info.BINNo},
			{Label: "Address", Value: info.Address},
			{Label: "Market", Value: info.Market, Bold: true},
			{Label: "Field Force", Value: info.FieldForce, Bold: true},
		},
		InvoiceRows: []Row{
			{Label: "Invoice No", Value: invoiceNo},
			{Label: "Invoice Date", Value: date},
			{Label: "Order No", Value: orderNo},
			{Label: "Order Date", Value: date},
			{Label: "Payment Mode", Value: info.PaymentMode},
		},
		Lines:         rows,
		Breakdown:     breakdown,
		AmountInWords: pricing.AmountInWords(breakdown.NetPayable.Round(0).IntPart()) + " Taka Only",
	}
}
