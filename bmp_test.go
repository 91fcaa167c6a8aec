package asn1c

import "testing"

func TestBMPStringAcceptsBMPCodePoint(t *testing.T) {
	if _, err := NewBMPString("hello"); err != nil {
		t.Fatal(err)
	}
}

func TestBMPStringRejectsOutsideBMP(t *testing.T) {
	if _, err := NewBMPString("\U0001D11E"); err == nil {
		t.Fatal("expected error for code point outside the Basic Multilingual Plane")
	}
}

func TestBMPStringDEREncode(t *testing.T) {
	s, err := NewBMPString("AB")
	if err != nil {
		t.Fatal(err)
	}
	var buf []byte
	if err := derEncodeBMPStringValue(&buf, s); err != nil {
		t.Fatal(err)
	}
	reverseBytes(buf)
	want := []byte{0, 'A', 0, 'B'}
	if string(buf) != string(want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}
