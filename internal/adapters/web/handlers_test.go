package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invoice-service/internal/adapters/web"
	"invoice-service/internal/app"
	"invoice-service/internal/i18n"

	"go.uber.org/zap"
)

// stubService returns a canned result or error and records the locale.
type stubService struct {
	result     *app.InvoicePDFResult
	err        error
	lastLocale i18n.Locale
}

func (s *stubService) CreateInvoicePDF(_ context.Context, _ app.CreateInvoiceRequest, loc i18n.Locale) (*app.InvoicePDFResult, error) {
	s.lastLocale = loc
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

const requestBody = `{
	"invoiceDate": "2025-02-14",
	"invoiceNumber": "INV-2025-001",
	"deliveryDate": "2025-02-14",
	"dueDate": "2025-03-14",
	"invoiceItems": [{"description": "Consulting", "quantity": 10, "unit": "h", "unitPriceEuro": 120}],
	"vatRate": 0.19,
	"reverseCharge": false,
	"companyDetails": {},
	"customer": {}
}`

func newServer(svc app.Service) http.Handler {
	return web.NewHandler(svc, "", zap.NewNop())
}

func TestCreateInvoice_HappyPath(t *testing.T) {
	svc := &stubService{result: &app.InvoicePDFResult{
		InvoiceNumber: "INV-2025-001",
		Filename:      "invoice-INV-2025-001.pdf",
		ContentType:   "application/pdf",
		PDF:           []byte("%PDF-fake"),
	}}
	h := newServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices?lang=es", strings.NewReader(requestBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="invoice-INV-2025-001.pdf"` {
		t.Errorf("content disposition = %q", cd)
	}
	if svc.lastLocale != i18n.Spanish {
		t.Errorf("locale = %q, want es", svc.lastLocale)
	}
	if rec.Body.String() != "%PDF-fake" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestCreateInvoice_LocaleFromAcceptLanguage(t *testing.T) {
	svc := &stubService{result: &app.InvoicePDFResult{ContentType: "application/pdf"}}
	h := newServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(requestBody))
	req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if svc.lastLocale != i18n.Spanish {
		t.Errorf("locale = %q, want es", svc.lastLocale)
	}
}

func TestCreateInvoice_InvalidJSON(t *testing.T) {
	h := newServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if resp["code"] != "INVALID_BODY" {
		t.Errorf("code = %v", resp["code"])
	}
}

func TestCreateInvoice_ValidationError(t *testing.T) {
	h := newServer(&stubService{err: &app.ValidationError{Detail: "InvoiceNumber: failed required"}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(requestBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "InvoiceNumber") {
		t.Errorf("body does not name the failing field: %s", rec.Body.String())
	}
}

func TestCreateInvoice_RenderFailureStaysGeneric(t *testing.T) {
	h := newServer(&stubService{err: errors.New("font table corrupt at offset 0x42")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices", strings.NewReader(requestBody))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "font table") {
		t.Errorf("internal failure details leaked: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "PDF_GENERATION_FAILED") {
		t.Errorf("missing error code: %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	h := newServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %s", rec.Body.String())
	}
}
