package i18n

import "fmt"

// Key identifies a document label. Keys are stable identifiers; the rendered
// text comes from the per-locale tables below.
type Key string

const (
	KeyInvoiceNo           Key = "invoiceNo"
	KeyInvoiceDate         Key = "invoiceDate"
	KeyDeliveryDate        Key = "deliveryDate"
	KeyDueDate             Key = "dueDate"
	KeyYourCustomerNo      Key = "yourCustomerNo"
	KeyYourVATID           Key = "yourVatId"
	KeyYourContact         Key = "yourContact"
	KeyReverseCharge       Key = "reverseCharge"
	KeyPositionDescription Key = "positionDescription"
	KeyPos                 Key = "pos"
	KeyDescription         Key = "description"
	KeyQty                 Key = "qty"
	KeyUnit                Key = "unit"
	KeyUnitPrice           Key = "unitPrice"
	KeyTotal               Key = "total"
	KeyNetTotal            Key = "netTotal"
	KeyVAT                 Key = "vat" // parameterized: VAT rate in percent
	KeyTotalGross          Key = "totalGross"
	KeyPhone               Key = "phone"
	KeyEmail               Key = "email"
	KeyPlaceOfJurisdiction Key = "placeOfJurisdiction"
	KeyCompanyID           Key = "companyId"
	KeyCEODirector         Key = "ceoDirector"
	KeyVATID               Key = "vatId"
	KeyBank                Key = "bank"
	KeyAccountOwner        Key = "accountOwner"
	KeyIBAN                Key = "iban"
	KeyBIC                 Key = "bic" // translated but not drawn; the footer bank panel omits the BIC line
)

// Keys lists every defined label key. Tests walk this list to guarantee both
// locale tables are complete.
var Keys = []Key{
	KeyInvoiceNo, KeyInvoiceDate, KeyDeliveryDate, KeyDueDate,
	KeyYourCustomerNo, KeyYourVATID, KeyYourContact, KeyReverseCharge,
	KeyPositionDescription, KeyPos, KeyDescription, KeyQty, KeyUnit,
	KeyUnitPrice, KeyTotal, KeyNetTotal, KeyVAT, KeyTotalGross,
	KeyPhone, KeyEmail, KeyPlaceOfJurisdiction, KeyCompanyID,
	KeyCEODirector, KeyVATID, KeyBank, KeyAccountOwner, KeyIBAN, KeyBIC,
}

var labels = map[Locale]map[Key]string{
	English: {
		KeyInvoiceNo:           "Invoice No.",
		KeyInvoiceDate:         "Invoice Date",
		KeyDeliveryDate:        "Delivery Date",
		KeyDueDate:             "Due Date",
		KeyYourCustomerNo:      "Your Customer No.",
		KeyYourVATID:           "Your VAT ID",
		KeyYourContact:         "Your Contact",
		KeyReverseCharge:       "Reverse charge: VAT is payable by the recipient of this invoice.",
		KeyPositionDescription: "Services provided",
		KeyPos:                 "Pos.",
		KeyDescription:         "Description",
		KeyQty:                 "Qty",
		KeyUnit:                "Unit",
		KeyUnitPrice:           "Unit Price",
		KeyTotal:               "Total",
		KeyNetTotal:            "Net Total",
		KeyVAT:                 "VAT %s %%",
		KeyTotalGross:          "Total Gross",
		KeyPhone:               "Phone:",
		KeyEmail:               "Email:",
		KeyPlaceOfJurisdiction: "Place of jurisdiction:",
		KeyCompanyID:           "Company ID:",
		KeyCEODirector:         "CEO/Director:",
		KeyVATID:               "VAT ID:",
		KeyBank:                "Bank:",
		KeyAccountOwner:        "Account Owner:",
		KeyIBAN:                "IBAN:",
		KeyBIC:                 "BIC:",
	},
	Spanish: {
		KeyInvoiceNo:           "N.º de factura",
		KeyInvoiceDate:         "Fecha de factura",
		KeyDeliveryDate:        "Fecha de entrega",
		KeyDueDate:             "Fecha de vencimiento",
		KeyYourCustomerNo:      "Su n.º de cliente",
		KeyYourVATID:           "Su NIF-IVA",
		KeyYourContact:         "Su persona de contacto",
		KeyReverseCharge:       "Inversión del sujeto pasivo: el IVA será abonado por el destinatario de esta factura.",
		KeyPositionDescription: "Servicios prestados",
		KeyPos:                 "Pos.",
		KeyDescription:         "Descripción",
		KeyQty:                 "Cant.",
		KeyUnit:                "Unidad",
		KeyUnitPrice:           "Precio unitario",
		KeyTotal:               "Total",
		KeyNetTotal:            "Total neto",
		KeyVAT:                 "IVA %s %%",
		KeyTotalGross:          "Total bruto",
		KeyPhone:               "Tel.:",
		KeyEmail:               "Correo:",
		KeyPlaceOfJurisdiction: "Jurisdicción:",
		KeyCompanyID:           "Registro mercantil:",
		KeyCEODirector:         "Director:",
		KeyVATID:               "NIF-IVA:",
		KeyBank:                "Banco:",
		KeyAccountOwner:        "Titular de la cuenta:",
		KeyIBAN:                "IBAN:",
		KeyBIC:                 "BIC:",
	},
}

// Label resolves a key for the given locale. Unsupported locales and unknown
// keys are errors, never silent fallbacks.
func Label(key Key, loc Locale) (string, error) {
	table, ok := labels[loc]
	if !ok {
		return "", unsupported(loc)
	}
	text, ok := table[key]
	if !ok {
		return "", fmt.Errorf("unknown label key %q for locale %q", key, loc)
	}
	return text, nil
}

// Labelf resolves a parameterized label and interpolates args into it.
func Labelf(key Key, loc Locale, args ...any) (string, error) {
	format, err := Label(key, loc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, args...), nil
}
