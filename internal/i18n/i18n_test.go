package i18n_test

import (
	"errors"
	"testing"

	"invoice-service/internal/i18n"
)

func TestLabelCompleteness(t *testing.T) {
	for _, loc := range i18n.SupportedLocales {
		for _, key := range i18n.Keys {
			text, err := i18n.Label(key, loc)
			if err != nil {
				t.Errorf("label %q missing for locale %q: %v", key, loc, err)
				continue
			}
			if text == "" {
				t.Errorf("label %q empty for locale %q", key, loc)
			}
		}
	}
}

func TestLabel_UnsupportedLocale(t *testing.T) {
	_, err := i18n.Label(i18n.KeyInvoiceNo, i18n.Locale("fr"))
	if !errors.Is(err, i18n.ErrUnsupportedLocale) {
		t.Fatalf("expected ErrUnsupportedLocale, got %v", err)
	}
}

func TestLabelf_VATInterpolation(t *testing.T) {
	got, err := i18n.Labelf(i18n.KeyVAT, i18n.English, "19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "VAT 19 %" {
		t.Errorf("vat line = %q, want %q", got, "VAT 19 %")
	}
}

func TestCountryName(t *testing.T) {
	tests := []struct {
		name string
		code string
		loc  i18n.Locale
		want string
	}{
		{"known code in English", "ES", i18n.English, "Spain"},
		{"known code in Spanish", "ES", i18n.Spanish, "España"},
		{"Austria shared across locales", "AT", i18n.Spanish, "Austria"},
		{"unknown code passes through verbatim", "DE", i18n.English, "DE"},
		{"unknown code passes through in Spanish too", "XX", i18n.Spanish, "XX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := i18n.CountryName(tt.code, tt.loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountryName(%q, %q) = %q, want %q", tt.code, tt.loc, got, tt.want)
			}
		})
	}

	if _, err := i18n.CountryName("AT", i18n.Locale("de")); !errors.Is(err, i18n.ErrUnsupportedLocale) {
		t.Errorf("expected ErrUnsupportedLocale for locale de")
	}
}

func TestPaymentTermsNotes(t *testing.T) {
	for _, loc := range i18n.SupportedLocales {
		text, err := i18n.PaymentTermsNotes(loc)
		if err != nil {
			t.Errorf("notes missing for %q: %v", loc, err)
		}
		if text == "" {
			t.Errorf("notes empty for %q", loc)
		}
	}

	if _, err := i18n.PaymentTermsNotes(i18n.Locale("fr")); !errors.Is(err, i18n.ErrUnsupportedLocale) {
		t.Error("expected ErrUnsupportedLocale for locale fr, got nil")
	}
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name           string
		langParam      string
		acceptLanguage string
		want           i18n.Locale
	}{
		{"nothing supplied defaults to English", "", "", i18n.English},
		{"lang param es", "es", "", i18n.Spanish},
		{"lang param with region", "es-ES", "", i18n.Spanish},
		{"lang param beats header", "en", "es", i18n.English},
		{"header only", "", "es-ES,es;q=0.9,en;q=0.5", i18n.Spanish},
		{"unsupported language falls back to English", "de", "", i18n.English},
		{"garbage falls back to English", ";;;", "", i18n.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := i18n.ResolveLocale(tt.langParam, tt.acceptLanguage); got != tt.want {
				t.Errorf("ResolveLocale(%q, %q) = %q, want %q", tt.langParam, tt.acceptLanguage, got, tt.want)
			}
		})
	}
}
