package app

import (
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is the JSON payload for invoice creation. Dates are
// YYYY-MM-DD strings. The three amount overrides and the per-item total are
// optional: absent means "derive"; a supplied value only wins when strictly
// positive (see core.ResolveInvoice).
type CreateInvoiceRequest struct {
	InvoiceDate     string                `json:"invoiceDate" validate:"required,datetime=2006-01-02"`
	InvoiceNumber   string                `json:"invoiceNumber" validate:"required"`
	DeliveryDate    string                `json:"deliveryDate" validate:"required,datetime=2006-01-02"`
	DueDate         string                `json:"dueDate" validate:"required,datetime=2006-01-02"`
	InvoiceItems    []InvoiceItemRequest  `json:"invoiceItems" validate:"required,min=1,dive"`
	TotalNetPrice   *decimal.Decimal      `json:"totalNetPrice" validate:"omitempty,gte=0"`
	VATRate         decimal.Decimal       `json:"vatRate" validate:"gte=0,lte=1"`
	VATAbsolute     *decimal.Decimal      `json:"vatAbsolute" validate:"omitempty,gte=0"`
	TotalGrossPrice *decimal.Decimal      `json:"totalGrossPrice" validate:"omitempty,gte=0"`
	FinalNotes      string                `json:"finalNotes"`
	CompanyDetails  CompanyDetailsRequest `json:"companyDetails" validate:"required"`
	Customer        CustomerRequest       `json:"customer" validate:"required"`
	ReverseCharge   *bool                 `json:"reverseCharge" validate:"required"`
}

// InvoiceItemRequest is one raw line item. TotalPrice nil (or not positive)
// derives quantity × unit price.
type InvoiceItemRequest struct {
	Description   string           `json:"description" validate:"required"`
	Quantity      decimal.Decimal  `json:"quantity" validate:"required,gt=0"`
	Unit          string           `json:"unit" validate:"required,eq=h"`
	UnitPriceEuro decimal.Decimal  `json:"unitPriceEuro" validate:"gte=0"`
	TotalPrice    *decimal.Decimal `json:"totalPrice" validate:"omitempty,gte=0"`
}

type AddressRequest struct {
	StreetAndNumber string `json:"streetAndNumber" validate:"required"`
	PostalCode      string `json:"postalCode" validate:"required"`
	City            string `json:"city" validate:"required"`
	CountryCode     string `json:"countryCode" validate:"required,len=2"`
}

type BankAccountRequest struct {
	BankName     string `json:"bankName" validate:"required"`
	AccountOwner string `json:"accountOwner" validate:"required"`
	IBAN         string `json:"iban" validate:"required"`
	BIC          string `json:"bic" validate:"required"`
}

type CompanyDetailsRequest struct {
	Name                string             `json:"name" validate:"required"`
	Address             AddressRequest     `json:"address" validate:"required"`
	Phone               string             `json:"phone" validate:"required"`
	Email               string             `json:"email" validate:"required,email"`
	PlaceOfJurisdiction string             `json:"placeOfJurisdiction" validate:"required"`
	CompanyID           string             `json:"companyId" validate:"required"`
	CEOOrDirector       string             `json:"ceoOrDirector" validate:"required"`
	BankAccount         BankAccountRequest `json:"bankAccount" validate:"required"`
	VATID               string             `json:"vatId" validate:"required"`
}

type CustomerRequest struct {
	CompanyName    string         `json:"companyName" validate:"required"`
	CustomerNumber string         `json:"customerNumber" validate:"required"`
	VATID          string         `json:"vatId"`
	Contact        string         `json:"contact" validate:"required"`
	Address        AddressRequest `json:"address" validate:"required"`
}
