package money

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{0, "0.00"},
		{2599, "25.99"},
		{4550, "45.50"},
		{12500, "125.00"},
		{7, "0.07"},
		{-2599, "-25.99"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{2599, "₹25.99"},
		{100000, "₹1,000.00"},
		{123456, "₹1,234.56"},
		{999999, "₹9,999.99"},
		{1234567, "₹12,345.67"},
		{12500000, "₹1,25,000.00"},
		{100000000, "₹10,00,000.00"},
		{-4550, "-₹45.50"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"25.99", 2599, false},
		{"45.5", 4550, false},
		{"125", 12500, false},
		{"-18.75", -1875, false},
		{".99", 99, false},
		{"25.999", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"1.-5", 0, true},
		{"1.+5", 0, true},
		{"+1.00", 0, true},
		{"1.2e3", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	if got := Amount(2599).Mul(3); got != 7797 {
		t.Errorf("Mul(3) = %d, want 7797", got)
	}
}
