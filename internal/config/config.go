package config

import (
	"os"
	"strconv"
)

// PDF holds the layout knobs for invoice rendering. Defaults mirror the
// document style the business has been sending out for years, so overriding
// them is rare.
type PDF struct {
	// DateFormat is a Go reference-time layout shared by every date on the
	// document. The default renders 14.02.2025.
	DateFormat string
	MarginMM   float64
	// TitleFontSize is part of the established knob set but no current block
	// draws a title; kept so the env surface stays stable.
	TitleFontSize   float64
	HeadingFontSize float64
	NormalFontSize  float64
	SmallFontSize   float64
	// LogoPath points at the issuer logo image. The file is read once at
	// startup; a missing or unreadable logo is a startup failure.
	LogoPath string
}

// Config is the full service configuration, read from the environment.
type Config struct {
	ServerPort     string
	AllowedOrigins string
	PDF            PDF
}

// Load reads configuration from environment variables, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		ServerPort:     envOr("SERVER_PORT", "8080"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		PDF: PDF{
			DateFormat:      envOr("PDF_DATE_FORMAT", "02.01.2006"),
			MarginMM:        envFloat("PDF_MARGIN_MM", 40),
			TitleFontSize:   envFloat("PDF_TITLE_FONT_SIZE", 18),
			HeadingFontSize: envFloat("PDF_HEADING_FONT_SIZE", 10),
			NormalFontSize:  envFloat("PDF_NORMAL_FONT_SIZE", 10),
			SmallFontSize:   envFloat("PDF_SMALL_FONT_SIZE", 8),
			LogoPath:        envOr("PDF_LOGO_PATH", "assets/logo.png"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
