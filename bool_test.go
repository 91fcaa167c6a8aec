package asn1c

import "testing"

func TestBooleanDEREncode(t *testing.T) {
	tru, _ := NewBoolean(true)
	fls, _ := NewBoolean(false)
	if tru.Byte() != 0xFF {
		t.Fatalf("true encoded as %02X, want FF", tru.Byte())
	}
	if fls.Byte() != 0x00 {
		t.Fatalf("false encoded as %02X, want 00", fls.Byte())
	}
}

func TestBooleanFromByte(t *testing.T) {
	b, err := NewBoolean(byte(0xFF))
	if err != nil || !b.Bool() {
		t.Fatalf("expected true from 0xFF, got %v err=%v", b, err)
	}
	b, err = NewBoolean(byte(0x00))
	if err != nil || b.Bool() {
		t.Fatalf("expected false from 0x00, got %v err=%v", b, err)
	}
}
