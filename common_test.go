package asn1c

import "testing"

func TestParseBase10Field(t *testing.T) {
	n, err := parseBase10Field([]byte("042"), 0, 59)
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestParseBase10FieldOutOfBounds(t *testing.T) {
	if _, err := parseBase10Field([]byte("99"), 0, 59); err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}

func TestParseBase10FieldNonDigit(t *testing.T) {
	if _, err := parseBase10Field([]byte("4x"), 0, 59); err == nil {
		t.Fatal("expected invalid-digit error")
	}
}

func TestPad2Pad4(t *testing.T) {
	if pad2(5) != "05" || pad2(42) != "42" {
		t.Fatalf("pad2 mismatch")
	}
	if pad4(7) != "0007" || pad4(2024) != "2024" {
		t.Fatalf("pad4 mismatch")
	}
}

func TestReverseBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	reverseBytes(b)
	want := []byte{4, 3, 2, 1}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("got %v, want %v", b, want)
		}
	}
}
