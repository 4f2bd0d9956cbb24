package i18n

// countryNames maps ISO-2 codes to display names per locale. The table is
// deliberately small: it covers the countries invoices are issued to today.
var countryNames = map[Locale]map[string]string{
	English: {
		"AT": "Austria",
		"ES": "Spain",
	},
	Spanish: {
		"AT": "Austria",
		"ES": "España",
	},
}

// CountryName resolves an ISO-2 country code to its display name for the
// given locale. Codes missing from the table pass through verbatim — an
// intentional fallback so a new customer country never blocks an invoice.
// An unsupported locale is still an error.
func CountryName(code string, loc Locale) (string, error) {
	table, ok := countryNames[loc]
	if !ok {
		return "", unsupported(loc)
	}
	if name, ok := table[code]; ok {
		return name, nil
	}
	return code, nil
}
