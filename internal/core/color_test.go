package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
	}{
		{"#FF5050", RGB(0xFF, 0x50, 0x50)},
		{"#ff8900", RGB(0xFF, 0x89, 0x00)},
		{"#fff", ColorWhite},
		{"white", ColorWhite},
		{"Gray", ColorGray},
		{"rgb(75,75,75)", RGB(75, 75, 75)},
		{"rgb( 90, 90, 90 )", RGB(90, 90, 90)},
		{"", ColorNone},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"#12", "rgb(1,2)", "rgb(1,2,300)", "chartreuse-ish", "#zzzzzz"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := RGB(0x00, 0xC3, 0xEE)
	if c.Hex() != "#00c3ee" {
		t.Errorf("Hex() = %q, expected #00c3ee", c.Hex())
	}
	back, err := ParseColor(c.Hex())
	if err != nil || back != c {
		t.Errorf("ParseColor(Hex()) = %v, %v", back, err)
	}
	if ColorNone.Hex() != "" {
		t.Error("zero color should have empty hex")
	}
}

func TestColorBlend(t *testing.T) {
	if got := ColorRed.Blend(ColorCyan, 0); got != ColorRed {
		t.Errorf("Blend(0) = %v, expected %v", got, ColorRed)
	}
	if got := ColorRed.Blend(ColorCyan, 1); got != ColorCyan {
		t.Errorf("Blend(1) = %v, expected %v", got, ColorCyan)
	}
	if got := ColorNone.Blend(ColorCyan, 0.5); got != ColorCyan {
		t.Errorf("Blend from none = %v, expected %v", got, ColorCyan)
	}
}
