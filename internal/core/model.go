package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UnitHours is the only billable unit. Invoices are for work billed by the
// hour; anything else is rejected at construction.
const UnitHours = "h"

// Address is a postal address for either the issuer or the bill-to party.
// CountryCode is ISO-2; display names are resolved per locale by the i18n
// package, with unknown codes passing through verbatim.
type Address struct {
	StreetAndNumber string
	PostalCode      string
	City            string
	CountryCode     string
}

// BankAccount holds display-only payment details. No cross-field rules.
type BankAccount struct {
	BankName     string
	AccountOwner string
	IBAN         string
	BIC          string
}

// CompanyDetails identifies the invoice issuer.
type CompanyDetails struct {
	Name                string
	Address             Address
	Phone               string
	Email               string
	PlaceOfJurisdiction string
	CompanyID           string
	CEOOrDirector       string
	BankAccount         BankAccount
	VATID               string
}

// Customer identifies the bill-to party. VATID may be blank; the renderer
// omits that row entirely.
type Customer struct {
	CompanyName    string
	CustomerNumber string
	VATID          string
	Contact        string
	Address        Address
}

// InvoiceItem is a single line on the invoice. Construct via NewInvoiceItem
// so the unit invariant holds for every value in circulation.
type InvoiceItem struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// InvalidUnitError reports an attempt to build a line item with an
// unsupported unit.
type InvalidUnitError struct {
	Unit string
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("unit must be %q (hours), got: %q", UnitHours, e.Unit)
}

// NewInvoiceItem builds a line item. The unit must be UnitHours; any other
// value is a construction-time failure, never a silent default.
func NewInvoiceItem(description string, quantity decimal.Decimal, unit string, unitPrice, totalPrice decimal.Decimal) (InvoiceItem, error) {
	if unit != UnitHours {
		return InvoiceItem{}, &InvalidUnitError{Unit: unit}
	}
	return InvoiceItem{
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		TotalPrice:  totalPrice,
	}, nil
}

// Invoice is the fully-derived invoice aggregate. It owns its items and
// embedded value objects exclusively and is treated as immutable after
// construction. Item order is presentation order: line position = index + 1.
type Invoice struct {
	InvoiceDate     time.Time
	InvoiceNumber   string
	DeliveryDate    time.Time
	DueDate         time.Time
	Items           []InvoiceItem
	TotalNetPrice   decimal.Decimal
	VATRate         decimal.Decimal // fraction in [0,1], e.g. 0.19 for 19%
	VATAbsolute     decimal.Decimal
	TotalGrossPrice decimal.Decimal
	FinalNotes      string
	CompanyDetails  CompanyDetails
	Customer        Customer
	ReverseCharge   bool
}
