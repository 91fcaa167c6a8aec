package asn1c

import "testing"

func derReal(r Real) []byte {
	var buf []byte
	derEncodeReal(&buf, r)
	reverseBytes(buf)
	return buf
}

func TestRealZeroIsEmptyContent(t *testing.T) {
	r, err := NewReal(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := derReal(r); len(got) != 0 {
		t.Fatalf("zero REAL content = % X, want empty", got)
	}
}

func TestRealSpecialValues(t *testing.T) {
	cases := []struct {
		r    Real
		want byte
	}{
		{NewRealPlusInfinity(), 0b0100_0000},
		{NewRealMinusInfinity(), 0b0100_0001},
		{NewRealNotANumber(), 0b0100_0010},
	}
	for _, c := range cases {
		got := derReal(c.r)
		if len(got) != 1 || got[0] != c.want {
			t.Fatalf("special REAL content = % X, want [%02X]", got, c.want)
		}
	}
}

func TestRealNormalizesTrailingZeroBits(t *testing.T) {
	// 12 x 2^0 == 3 x 2^2; the encoder must normalize the mantissa to odd.
	r, err := NewReal(12, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := derReal(r)
	normalized, err := NewReal(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := derReal(normalized)
	if len(got) != len(want) {
		t.Fatalf("got % X, want % X", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("got % X, want % X", got, want)
		}
	}
}

func TestRealNegativeSetsSignBit(t *testing.T) {
	r, err := NewReal(-5, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := derReal(r)
	if len(got) == 0 || got[0]&0b0100_0000 == 0 {
		t.Fatalf("expected sign bit set in % X", got)
	}
}
