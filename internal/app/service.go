// Package app is the application boundary between transport adapters and the
// invoice core: it validates requests, resolves amounts, and drives the
// document renderer.
package app

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"invoice-service/internal/core"
	"invoice-service/internal/i18n"
)

const requestDateLayout = "2006-01-02"

// DocumentRenderer produces the invoice document byte stream. Implemented by
// pdf.Renderer.
type DocumentRenderer interface {
	Render(inv core.Invoice, loc i18n.Locale) ([]byte, error)
}

// InvoicePDFResult is the rendered document plus the metadata the transport
// layer needs for the response.
type InvoicePDFResult struct {
	InvoiceNumber string
	Filename      string
	ContentType   string
	PDF           []byte
}

// Service is the single interface transport adapters (HTTP, CLI) call.
type Service interface {
	// CreateInvoicePDF validates the request, resolves the invoice amounts,
	// and renders the document in the given locale.
	CreateInvoicePDF(ctx context.Context, req CreateInvoiceRequest, loc i18n.Locale) (*InvoicePDFResult, error)
}

type service struct {
	renderer DocumentRenderer
}

// NewService wires the application service.
func NewService(renderer DocumentRenderer) Service {
	return &service{renderer: renderer}
}

func (s *service) CreateInvoicePDF(ctx context.Context, req CreateInvoiceRequest, loc i18n.Locale) (*InvoicePDFResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	input, err := toInvoiceInput(req)
	if err != nil {
		return nil, err
	}

	invoice, err := core.ResolveInvoice(input)
	if err != nil {
		return nil, err
	}

	doc, err := s.renderer.Render(invoice, loc)
	if err != nil {
		return nil, err
	}

	return &InvoicePDFResult{
		InvoiceNumber: invoice.InvoiceNumber,
		Filename:      PDFFilename(invoice.InvoiceNumber),
		ContentType:   "application/pdf",
		PDF:           doc,
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// PDFFilename builds the suggested download filename for an invoice number,
// replacing every character outside [A-Za-z0-9.-] with an underscore.
func PDFFilename(invoiceNumber string) string {
	return "invoice-" + unsafeFilenameChars.ReplaceAllString(invoiceNumber, "_") + ".pdf"
}

// toInvoiceInput maps the validated request onto the resolver input.
func toInvoiceInput(req CreateInvoiceRequest) (core.InvoiceInput, error) {
	invoiceDate, err := parseDate("invoiceDate", req.InvoiceDate)
	if err != nil {
		return core.InvoiceInput{}, err
	}
	deliveryDate, err := parseDate("deliveryDate", req.DeliveryDate)
	if err != nil {
		return core.InvoiceInput{}, err
	}
	dueDate, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		return core.InvoiceInput{}, err
	}

	items := make([]core.ItemInput, 0, len(req.InvoiceItems))
	for _, item := range req.InvoiceItems {
		items = append(items, core.ItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPriceEuro,
			TotalPrice:  item.TotalPrice,
		})
	}

	reverseCharge := req.ReverseCharge != nil && *req.ReverseCharge

	return core.InvoiceInput{
		InvoiceDate:     invoiceDate,
		InvoiceNumber:   req.InvoiceNumber,
		DeliveryDate:    deliveryDate,
		DueDate:         dueDate,
		Items:           items,
		TotalNetPrice:   req.TotalNetPrice,
		VATRate:         req.VATRate,
		VATAbsolute:     req.VATAbsolute,
		TotalGrossPrice: req.TotalGrossPrice,
		FinalNotes:      req.FinalNotes,
		CompanyDetails:  toCompanyDetails(req.CompanyDetails),
		Customer:        toCustomer(req.Customer),
		ReverseCharge:   reverseCharge,
	}, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(requestDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}

func toAddress(a AddressRequest) core.Address {
	return core.Address{
		StreetAndNumber: a.StreetAndNumber,
		PostalCode:      a.PostalCode,
		City:            a.City,
		CountryCode:     a.CountryCode,
	}
}

func toCompanyDetails(c CompanyDetailsRequest) core.CompanyDetails {
	return core.CompanyDetails{
		Name:                c.Name,
		Address:             toAddress(c.Address),
		Phone:               c.Phone,
		Email:               c.Email,
		PlaceOfJurisdiction: c.PlaceOfJurisdiction,
		CompanyID:           c.CompanyID,
		CEOOrDirector:       c.CEOOrDirector,
		BankAccount: core.BankAccount{
			BankName:     c.BankAccount.BankName,
			AccountOwner: c.BankAccount.AccountOwner,
			IBAN:         c.BankAccount.IBAN,
			BIC:          c.BankAccount.BIC,
		},
		VATID: c.VATID,
	}
}

func toCustomer(c CustomerRequest) core.Customer {
	return core.Customer{
		CompanyName:    c.CompanyName,
		CustomerNumber: c.CustomerNumber,
		VATID:          c.VATID,
		Contact:        c.Contact,
		Address:        toAddress(c.Address),
	}
}
