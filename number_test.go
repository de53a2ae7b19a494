package capgains

import "testing"

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"150", "150"},
		{"-750.00", "-750"},
		{"1,154.97", "1154.97"},
		{"1.154,97", "1154.97"},
		{"1 154,97", "1154.97"},
		{"1\u00a0154,97", "1154.97"},
		{"1,000", "1000"},
		{"1,000,000", "1000000"},
		{"1.000.000", "1000000"},
		{"0,125", "0.125"},
		{"12,5", "12.5"},
		{"-2,00", "-2"},
		{"95.12", "95.12"},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ParseAmount(test.in)
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", test.in, err)
			}
			if !got.Equal(dec(test.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", test.in, got, test.want)
			}
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "  ", "abc", "1.2.3,4,5"} {
		if got, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) = %s, want an error", in, got)
		}
	}
}
