// Package web is the inbound HTTP adapter: JSON invoice requests in, PDF
// documents out.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"invoice-service/internal/app"
	"invoice-service/internal/i18n"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler holds the application service and the chi router.
type Handler struct {
	svc app.Service
	log *zap.Logger
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.Service, allowedOrigins string, log *zap.Logger) http.Handler {
	h := &Handler{svc: svc, log: log}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(CORS(allowedOrigins))

	r.Get("/api/health", h.health)
	r.Post("/api/v1/invoices", h.createInvoice)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// createInvoice renders an invoice PDF. The label language comes from the
// "lang" query parameter or the Accept-Language header, defaulting to
// English.
func (h *Handler) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req app.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid JSON body: "+err.Error(), "INVALID_BODY", http.StatusBadRequest)
		return
	}

	loc := i18n.ResolveLocale(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

	result, err := h.svc.CreateInvoicePDF(r.Context(), req, loc)
	if err != nil {
		var vErr *app.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, r, vErr.Error(), "VALIDATION_FAILED", http.StatusBadRequest)
			return
		}
		// Internal failure details (layout, fonts, image decoding) stay in
		// the log; the caller gets a generic message.
		h.log.Error("invoice pdf generation failed",
			zap.Error(err),
			zap.String("request_id", requestIDFromContext(r.Context())))
		writeError(w, r, "invoice PDF could not be generated", "PDF_GENERATION_FAILED", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.PDF)))
	_, _ = w.Write(result.PDF)
}
