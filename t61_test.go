package asn1c

import "testing"

func TestT61StringAcceptsASCII(t *testing.T) {
	if _, err := NewT61String("hello world"); err != nil {
		t.Fatal(err)
	}
}

func TestT61StringRejectsUnsupportedRepertoire(t *testing.T) {
	if _, err := NewT61String("hello\x01"); err == nil {
		t.Fatal("expected error for control character in T61String")
	}
}

func TestT61StringDEREncode(t *testing.T) {
	s, err := NewT61String("ab")
	if err != nil {
		t.Fatal(err)
	}
	var buf []byte
	if err := derEncodeT61String(&buf, s); err != nil {
		t.Fatal(err)
	}
	reverseBytes(buf)
	if string(buf) != "ab" {
		t.Fatalf("got %q", buf)
	}
}
