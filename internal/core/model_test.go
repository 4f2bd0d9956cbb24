package core_test

import (
	"strings"
	"testing"

	"invoice-service/internal/core"

	"github.com/shopspring/decimal"
)

func TestNewInvoiceItem(t *testing.T) {
	tests := []struct {
		name      string
		unit      string
		expectErr bool
	}{
		{"hours is the supported unit", "h", false},
		{"kilograms are rejected", "kg", true},
		{"empty unit is rejected", "", true},
		{"uppercase H is rejected", "H", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := core.NewInvoiceItem("Work", decimal.NewFromInt(1), tt.unit,
				decimal.NewFromInt(100), decimal.NewFromInt(100))

			if tt.expectErr {
				if err == nil {
					t.Fatalf("expected error for unit %q, got nil", tt.unit)
				}
				if !strings.Contains(err.Error(), `unit must be "h"`) {
					t.Errorf("error %q does not name the supported unit", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.Unit != core.UnitHours {
				t.Errorf("unit = %q, want %q", item.Unit, core.UnitHours)
			}
		})
	}
}
