package pdf

import (
	"strings"

	"invoice-service/internal/core"
	"invoice-service/internal/i18n"

	"github.com/shopspring/decimal"
)

// texts holds every localized string one render needs, resolved up front.
// Resolving before any drawing keeps domain failures (unsupported locale)
// cleanly separated from drawing failures.
type texts struct {
	labels          map[i18n.Key]string
	vatLine         string
	companyCountry  string
	customerCountry string
	finalNotes      string
}

var percentFactor = decimal.NewFromInt(100)

func resolveTexts(inv core.Invoice, loc i18n.Locale) (*texts, error) {
	t := &texts{labels: make(map[i18n.Key]string, len(i18n.Keys))}

	for _, key := range i18n.Keys {
		s, err := i18n.Label(key, loc)
		if err != nil {
			return nil, err
		}
		t.labels[key] = s
	}

	// The VAT line shows the rate in percent: 0.19 -> "19".
	vatLine, err := i18n.Labelf(i18n.KeyVAT, loc, formatDecimal(inv.VATRate.Mul(percentFactor)))
	if err != nil {
		return nil, err
	}
	t.vatLine = vatLine

	if t.companyCountry, err = i18n.CountryName(inv.CompanyDetails.Address.CountryCode, loc); err != nil {
		return nil, err
	}
	if t.customerCountry, err = i18n.CountryName(inv.Customer.Address.CountryCode, loc); err != nil {
		return nil, err
	}

	t.finalNotes = inv.FinalNotes
	if strings.TrimSpace(t.finalNotes) == "" {
		if t.finalNotes, err = i18n.PaymentTermsNotes(loc); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func (t *texts) label(key i18n.Key) string {
	return t.labels[key]
}
