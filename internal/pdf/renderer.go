// Package pdf renders a fully-derived invoice into a single-page A4 PDF.
//
// The document is assembled as a fixed sequence of blocks: footer, logo,
// company header line, customer/meta panel, line-item table, totals, closing
// notes. All labels come from the i18n package; the renderer itself holds no
// language-specific text.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"invoice-service/internal/config"
	"invoice-service/internal/core"
	"invoice-service/internal/i18n"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

const fontFamily = "Helvetica"

// Layout constants in mm.
const (
	rowH            = 5.0  // body line height
	footerRowH      = 3.5  // footer line height (small font)
	footerTop       = 36   // footer block starts this far above the page bottom
	logoMaxW        = 39   // logo bounding box
	logoMaxH        = 35.5 //
	logoRightOffset = 17.5 // gap between logo and right page edge
	blockGap        = 12   // vertical gap after logo and header blocks
)

// colWidths are the relative widths of the six item/totals columns:
// position, description, quantity, unit, unit price, line total.
var colWidths = [6]float64{8, 40, 8, 10, 12, 12}

// Renderer turns invoices into PDF byte streams. It is safe for concurrent
// use: all per-render state lives in the render call, and the logo is an
// immutable byte slice loaded once at construction.
type Renderer struct {
	cfg      config.PDF
	log      *zap.Logger
	logo     []byte
	logoType string
}

// NewRenderer builds a Renderer, reading the logo image once. A missing or
// unreadable logo is a construction failure: an invoice without the logo must
// never be produced.
func NewRenderer(cfg config.PDF, log *zap.Logger) (*Renderer, error) {
	data, err := os.ReadFile(cfg.LogoPath)
	if err != nil {
		return nil, fmt.Errorf("reading logo image %s: %w", cfg.LogoPath, err)
	}
	return &Renderer{
		cfg:      cfg,
		log:      log,
		logo:     data,
		logoType: imageType(cfg.LogoPath),
	}, nil
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG"
	case ".gif":
		return "GIF"
	default:
		return "JPG"
	}
}

// Render produces the invoice document for the given locale. Unsupported
// locales surface as i18n errors before any drawing starts; failures of the
// drawing library itself are wrapped into a RenderError carrying the invoice
// number.
func (r *Renderer) Render(inv core.Invoice, loc i18n.Locale) ([]byte, error) {
	txt, err := resolveTexts(inv, loc)
	if err != nil {
		return nil, err
	}

	m := r.cfg.MarginMM
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(m, m, m)
	p.SetAutoPageBreak(true, m)
	// Pin the embedded creation timestamp and catalog ordering so identical
	// inputs produce byte-identical output.
	p.SetCreationDate(inv.InvoiceDate)
	p.SetCatalogSort(true)

	d := &doc{
		p:   p,
		tr:  p.UnicodeTranslatorFromDescriptor(""),
		cfg: r.cfg,
		txt: txt,
	}

	// Precondition of the drawing library: the footer function must be
	// installed before the first AddPage, since it is painted when each
	// page closes.
	d.registerFooter(inv.CompanyDetails)

	p.AddPage()
	d.drawLogo(r.logo, r.logoType)
	d.drawCompanyHeader(inv.CompanyDetails)
	d.drawInvoiceDetails(inv)
	d.drawItemsTable(inv.Items)
	d.drawTotals(inv)
	d.drawFinalNotes()

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		r.log.Error("invoice pdf generation failed",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.Error(err))
		return nil, &RenderError{InvoiceNumber: inv.InvoiceNumber, Err: err}
	}
	return buf.Bytes(), nil
}

// doc carries the per-render drawing state.
type doc struct {
	p   *gofpdf.Fpdf
	tr  func(string) string
	cfg config.PDF
	txt *texts
}

func (d *doc) contentWidth() float64 {
	pageW, _ := d.p.GetPageSize()
	left, _, right, _ := d.p.GetMargins()
	return pageW - left - right
}

// columnWidths scales the relative item-table widths to the content width.
func (d *doc) columnWidths() [6]float64 {
	var sum float64
	for _, w := range colWidths {
		sum += w
	}
	content := d.contentWidth()
	var out [6]float64
	for i, w := range colWidths {
		out[i] = content * w / sum
	}
	return out
}

func (d *doc) setNormalFont()  { d.p.SetFont(fontFamily, "", d.cfg.NormalFontSize) }
func (d *doc) setHeadingFont() { d.p.SetFont(fontFamily, "B", d.cfg.HeadingFontSize) }
func (d *doc) setSmallFont()   { d.p.SetFont(fontFamily, "", d.cfg.SmallFontSize) }

// cell writes a single table cell. border is the gofpdf border spec ("",
// "T", "B"); bold switches to the heading font.
func (d *doc) cell(w float64, text, border, align string, bold bool) {
	if bold {
		d.setHeadingFont()
	} else {
		d.setNormalFont()
	}
	d.p.CellFormat(w, rowH, d.tr(text), border, 0, align, false, 0, "")
}

func (d *doc) rowBreak() {
	d.p.Ln(rowH)
}

// registerFooter installs the four-panel company footer: issuer address,
// contact, legal info, bank details. Panels are borderless and drawn inside
// the bottom margin zone on every page.
func (d *doc) registerFooter(company core.CompanyDetails) {
	addr := company.Address
	bank := company.BankAccount
	panels := [4][]string{
		{
			company.Name,
			addr.StreetAndNumber,
			addr.PostalCode + " " + addr.City,
			d.txt.companyCountry,
		},
		{
			d.txt.label(i18n.KeyPhone) + " " + company.Phone,
			d.txt.label(i18n.KeyEmail) + " " + company.Email,
		},
		{
			d.txt.label(i18n.KeyPlaceOfJurisdiction) + "\n" + company.PlaceOfJurisdiction,
			d.txt.label(i18n.KeyCompanyID) + " " + company.CompanyID,
			d.txt.label(i18n.KeyCEODirector) + "\n" + company.CEOOrDirector,
			d.txt.label(i18n.KeyVATID) + " " + company.VATID,
		},
		{
			d.txt.label(i18n.KeyBank) + "\n" + bank.BankName,
			d.txt.label(i18n.KeyAccountOwner) + "\n" + bank.AccountOwner,
			d.txt.label(i18n.KeyIBAN) + "\n" + bank.IBAN,
		},
	}

	d.p.SetFooterFunc(func() {
		d.setSmallFont()
		left, _, _, _ := d.p.GetMargins()
		panelW := d.contentWidth() / 4
		d.p.SetY(-footerTop)
		top := d.p.GetY()
		for i, panel := range panels {
			d.p.SetXY(left+panelW*float64(i), top)
			d.p.MultiCell(panelW, footerRowH, d.tr(strings.Join(panel, "\n")), "", "L", false)
		}
	})
}

// drawLogo places the issuer logo right-aligned at the top of the page,
// scaled to fit its bounding box with the aspect ratio preserved.
func (d *doc) drawLogo(logo []byte, logoType string) {
	opts := gofpdf.ImageOptions{ImageType: logoType}
	info := d.p.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(logo))
	if info == nil {
		return // library error state; surfaces at Output
	}

	w, h := info.Width(), info.Height()
	scale := logoMaxW / w
	if s := logoMaxH / h; s < scale {
		scale = s
	}
	w, h = w*scale, h*scale

	pageW, _ := d.p.GetPageSize()
	y := d.p.GetY()
	d.p.ImageOptions("company-logo", pageW-w-logoRightOffset, y, w, h, false, opts, 0, "")
	d.p.SetY(y + h + blockGap)
}

// drawCompanyHeader writes the single sender line above the customer block.
func (d *doc) drawCompanyHeader(company core.CompanyDetails) {
	addr := company.Address
	line := strings.Join([]string{
		company.Name,
		addr.StreetAndNumber,
		addr.PostalCode + " " + addr.City,
		d.txt.companyCountry,
	}, " - ")

	d.setSmallFont()
	d.p.MultiCell(d.contentWidth(), rowH, d.tr(line), "", "L", false)
	d.p.Ln(blockGap)
}

// drawInvoiceDetails renders the customer address panel next to the invoice
// meta grid, followed by the reverse-charge notice when the invoice is
// flagged.
func (d *doc) drawInvoiceDetails(inv core.Invoice) {
	left, _, _, _ := d.p.GetMargins()
	panelW := d.contentWidth() / 2
	top := d.p.GetY()

	addr := inv.Customer.Address
	customerBlock := strings.Join([]string{
		inv.Customer.CompanyName,
		addr.StreetAndNumber,
		addr.PostalCode + " " + addr.City,
		d.txt.customerCountry,
	}, "\n")
	d.setNormalFont()
	d.p.MultiCell(panelW, rowH, d.tr(customerBlock), "", "L", false)
	leftEnd := d.p.GetY()

	metaX := left + panelW
	dateFmt := d.cfg.DateFormat
	type metaRow struct {
		label, value string
		bold         bool
	}
	rows := []metaRow{
		{d.txt.label(i18n.KeyInvoiceNo), inv.InvoiceNumber, true},
		{d.txt.label(i18n.KeyInvoiceDate), inv.InvoiceDate.Format(dateFmt), false},
		{d.txt.label(i18n.KeyDeliveryDate), inv.DeliveryDate.Format(dateFmt), false},
		{d.txt.label(i18n.KeyDueDate), inv.DueDate.Format(dateFmt), false},
		{" ", " ", false},
		{d.txt.label(i18n.KeyYourCustomerNo), inv.Customer.CustomerNumber, false},
	}
	if strings.TrimSpace(inv.Customer.VATID) != "" {
		rows = append(rows, metaRow{d.txt.label(i18n.KeyYourVATID), inv.Customer.VATID, false})
	}
	rows = append(rows, metaRow{d.txt.label(i18n.KeyYourContact), inv.Customer.Contact, false})

	y := top
	for _, row := range rows {
		d.p.SetXY(metaX, y)
		d.cell(panelW/2, row.label, "", "L", row.bold)
		d.cell(panelW/2, row.value, "", "R", row.bold)
		y += rowH
	}
	if leftEnd > y {
		y = leftEnd
	}
	d.p.SetY(y + rowH)

	if inv.ReverseCharge {
		d.setHeadingFont()
		d.p.MultiCell(d.contentWidth(), rowH, d.tr(d.txt.label(i18n.KeyReverseCharge)), "", "L", false)
		d.p.Ln(rowH)
	}
}

// drawItemsTable renders the six-column line-item table: bottom-bordered
// header row, borderless body rows, 1-based positions in item order.
func (d *doc) drawItemsTable(items []core.InvoiceItem) {
	d.setHeadingFont()
	d.p.MultiCell(d.contentWidth(), rowH, d.tr(d.txt.label(i18n.KeyPositionDescription)), "", "L", false)
	d.p.Ln(rowH / 2)

	w := d.columnWidths()
	d.cell(w[0], d.txt.label(i18n.KeyPos), "B", "L", true)
	d.cell(w[1], d.txt.label(i18n.KeyDescription), "B", "L", true)
	d.cell(w[2], d.txt.label(i18n.KeyQty), "B", "R", true)
	d.cell(w[3], d.txt.label(i18n.KeyUnit), "B", "R", true)
	d.cell(w[4], d.txt.label(i18n.KeyUnitPrice), "B", "R", true)
	d.cell(w[5], d.txt.label(i18n.KeyTotal), "B", "R", true)
	d.rowBreak()

	for i, item := range items {
		d.cell(w[0], strconv.Itoa(i+1), "", "L", false)
		d.cell(w[1], item.Description, "", "L", false)
		d.cell(w[2], formatDecimal(item.Quantity), "", "R", false)
		d.cell(w[3], item.Unit, "", "R", false)
		d.cell(w[4], formatMoney(item.UnitPrice), "", "R", false)
		d.cell(w[5], formatMoney(item.TotalPrice), "", "R", false)
		d.rowBreak()
	}
	d.p.Ln(rowH)
}

// drawTotals renders the net / VAT / gross rows on the same six-column grid
// as the items table.
func (d *doc) drawTotals(inv core.Invoice) {
	w := d.columnWidths()

	d.cell(w[0], " ", "T", "L", false)
	d.cell(w[1], d.txt.label(i18n.KeyNetTotal), "T", "L", false)
	d.cell(w[2], " ", "T", "L", false)
	d.cell(w[3], " ", "T", "L", false)
	d.cell(w[4], " ", "T", "L", false)
	d.cell(w[5], formatMoney(inv.TotalNetPrice), "T", "R", false)
	d.rowBreak()

	d.cell(w[0], " ", "", "L", false)
	d.cell(w[1], d.txt.vatLine, "", "L", false)
	d.cell(w[2], " ", "", "L", false)
	d.cell(w[3], " ", "", "L", false)
	d.cell(w[4], " ", "", "L", false)
	d.cell(w[5], formatMoney(inv.VATAbsolute), "", "R", false)
	d.rowBreak()

	d.cell(w[0], " ", "", "L", false)
	d.cell(w[1], d.txt.label(i18n.KeyTotalGross), "", "L", true)
	d.cell(w[2], " ", "", "L", false)
	d.cell(w[3], " ", "", "L", false)
	d.cell(w[4], " ", "", "L", false)
	d.cell(w[5], formatMoney(inv.TotalGrossPrice), "", "R", true)
	d.rowBreak()

	d.p.Ln(rowH)
}

// drawFinalNotes writes the closing paragraph: the caller's text when
// present, otherwise the localized payment-terms boilerplate (resolved
// earlier in resolveTexts).
func (d *doc) drawFinalNotes() {
	d.setNormalFont()
	d.p.MultiCell(d.contentWidth(), rowH, d.tr(d.txt.finalNotes), "", "L", false)
}
