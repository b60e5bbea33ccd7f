package handlers

import "testing"

func TestPriceColNormalizesDialects(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"mysql decimal bytes", []byte("80.00"), "80.00"},
		{"pgx numeric as float", float64(80), "80.00"},
		{"bare integer string", "80", "80.00"},
		{"integer", int64(150), "150.00"},
		{"fractional", 99.9, "99.90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p priceCol
			if err := p.Scan(tc.in); err != nil {
				t.Fatalf("Scan(%v): %v", tc.in, err)
			}
			if string(p) != tc.want {
				t.Errorf("Scan(%v) = %q, want %q", tc.in, p, tc.want)
			}
		})
	}
}

func TestPriceColRejectsGarbage(t *testing.T) {
	var p priceCol
	if err := p.Scan([]byte("osiemdziesiąt")); err == nil {
		t.Fatal("non-numeric price must not scan")
	}
	if err := p.Scan(true); err == nil {
		t.Fatal("bool must not scan")
	}
}
