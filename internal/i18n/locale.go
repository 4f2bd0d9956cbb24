// Package i18n holds the closed set of supported locales together with the
// label, country-name, and boilerplate lookups the PDF renderer depends on.
//
// The locale set is a closed enum: every lookup is backed by an exhaustive
// table per locale and fails loudly for anything outside the set instead of
// silently falling back to English.
package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Locale is a supported document language.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// SupportedLocales lists every locale the renderer can produce.
var SupportedLocales = []Locale{English, Spanish}

// ErrUnsupportedLocale is returned by every lookup for a locale outside the
// supported set.
var ErrUnsupportedLocale = errors.New("unsupported locale")

func unsupported(loc Locale) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the default
	language.Spanish,
})

// ResolveLocale picks the document locale from an explicit lang parameter or,
// failing that, an Accept-Language header. Anything unrecognized resolves to
// English; the result is always a member of SupportedLocales.
func ResolveLocale(langParam, acceptLanguage string) Locale {
	candidate := langParam
	if candidate == "" {
		candidate = acceptLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(candidate)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, _ := matcher.Match(tags...)
	return SupportedLocales[idx]
}
