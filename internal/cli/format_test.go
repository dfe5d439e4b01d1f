package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		currency string
		v        float64
		want     string
	}{
		{"Rs", 0, "Rs0.00"},
		{"Rs", 600, "Rs600.00"},
		{"$", 1234.5, "$1,234.50"},
		{"€", 0.006, "€0.01"},
		{"Rs", -50.25, "-Rs50.25"},
		{"", 1000000, "1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.currency, tt.v); got != tt.want {
			t.Errorf("FormatAmount(%q, %v) = %q, want %q", tt.currency, tt.v, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.6); got != "60.0%" {
		t.Errorf("FormatPercent(0.6) = %q, want 60.0%%", got)
	}
}
