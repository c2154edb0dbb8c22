package layout

import "testing"

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		want     Direction
		vertical bool
		reverse  bool
	}{
		{"horizontal", TopToBottom, false, false},
		{"vertical-ltr", LeftToRight, true, false},
		{"vertical-rtl", RightToLeft, true, true},
	}

	for _, tt := range tests {
		d, err := ParseDirection(tt.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", tt.in, err)
		}
		if d != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, d, tt.want)
		}
		if d.Vertical() != tt.vertical {
			t.Errorf("%v.Vertical() = %v, want %v", d, d.Vertical(), tt.vertical)
		}
		if d.Reverse() != tt.reverse {
			t.Errorf("%v.Reverse() = %v, want %v", d, d.Reverse(), tt.reverse)
		}
		if d.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", d, d.String(), tt.in)
		}
	}
}

func TestParseDirection_Unknown(t *testing.T) {
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection(\"diagonal\") = nil error, want error")
	}
}
