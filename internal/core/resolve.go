package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ItemInput is one raw line item as supplied by the caller. TotalPrice is an
// optional override: nil means "derive quantity × unit price". A supplied
// value must be strictly positive to win; zero and below also derive, so a
// legitimately zero line total is not expressible (known limitation carried
// over from the original amount policy).
type ItemInput struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	TotalPrice  *decimal.Decimal
}

// InvoiceInput carries the raw invoice fields after upstream validation.
// The three amount overrides follow the same rule as ItemInput.TotalPrice:
// nil or non-positive means derive.
type InvoiceInput struct {
	InvoiceDate     time.Time
	InvoiceNumber   string
	DeliveryDate    time.Time
	DueDate         time.Time
	Items           []ItemInput
	TotalNetPrice   *decimal.Decimal
	VATRate         decimal.Decimal
	VATAbsolute     *decimal.Decimal
	TotalGrossPrice *decimal.Decimal
	FinalNotes      string
	CompanyDetails  CompanyDetails
	Customer        Customer
	ReverseCharge   bool
}

// overrideOr returns the supplied override when it is strictly positive,
// otherwise the derived fallback.
func overrideOr(supplied *decimal.Decimal, derived decimal.Decimal) decimal.Decimal {
	if supplied != nil && supplied.IsPositive() {
		return *supplied
	}
	return derived
}

// ResolveInvoice turns validated raw fields into a fully consistent Invoice.
//
// Resolution order: per-item totals first (independently per item, no
// cross-item consistency check), then net total (supplied wins if positive,
// else the sum of resolved item totals), then VAT absolute (supplied wins,
// else rate × net), then gross (supplied wins, else net + VAT). Supplied
// values are trusted once positive and never re-validated against the items.
//
// All arithmetic is exact decimal; rounding happens only at display time.
// The only failure mode is an invalid line-item unit, which upstream
// validation should already have rejected.
func ResolveInvoice(in InvoiceInput) (Invoice, error) {
	items := make([]InvoiceItem, 0, len(in.Items))
	for i, raw := range in.Items {
		total := overrideOr(raw.TotalPrice, raw.Quantity.Mul(raw.UnitPrice))
		item, err := NewInvoiceItem(raw.Description, raw.Quantity, raw.Unit, raw.UnitPrice, total)
		if err != nil {
			return Invoice{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}

	itemSum := decimal.Zero
	for _, item := range items {
		itemSum = itemSum.Add(item.TotalPrice)
	}

	net := overrideOr(in.TotalNetPrice, itemSum)
	vatAbs := overrideOr(in.VATAbsolute, in.VATRate.Mul(net))
	gross := overrideOr(in.TotalGrossPrice, net.Add(vatAbs))

	return Invoice{
		InvoiceDate:     in.InvoiceDate,
		InvoiceNumber:   in.InvoiceNumber,
		DeliveryDate:    in.DeliveryDate,
		DueDate:         in.DueDate,
		Items:           items,
		TotalNetPrice:   net,
		VATRate:         in.VATRate,
		VATAbsolute:     vatAbs,
		TotalGrossPrice: gross,
		FinalNotes:      in.FinalNotes,
		CompanyDetails:  in.CompanyDetails,
		Customer:        in.Customer,
		ReverseCharge:   in.ReverseCharge,
	}, nil
}
