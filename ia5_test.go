package asn1c

import "testing"

func TestIA5StringAcceptsASCII(t *testing.T) {
	if _, err := NewIA5String("hello@example.com"); err != nil {
		t.Fatal(err)
	}
}

func TestIA5StringRejectsNonASCII(t *testing.T) {
	if _, err := NewIA5String("héllo"); err == nil {
		t.Fatal("expected error for non-ASCII character in IA5String")
	}
}

func TestIA5StringDEREncode(t *testing.T) {
	s, err := NewIA5String("ab")
	if err != nil {
		t.Fatal(err)
	}
	var buf []byte
	derEncodeIA5String(&buf, s)
	reverseBytes(buf)
	if string(buf) != "ab" {
		t.Fatalf("got %q", buf)
	}
}
