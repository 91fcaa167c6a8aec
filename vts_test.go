package asn1c

import "testing"

func TestVideotexStringAcceptsASCII(t *testing.T) {
	if _, err := NewVideotexString("hello world"); err != nil {
		t.Fatal(err)
	}
}

func TestVideotexStringRejectsUnsupportedRepertoire(t *testing.T) {
	if _, err := NewVideotexString("hello\x01"); err == nil {
		t.Fatal("expected error for control character in VideotexString")
	}
}

func TestVideotexStringDEREncode(t *testing.T) {
	s, err := NewVideotexString("ab")
	if err != nil {
		t.Fatal(err)
	}
	var buf []byte
	if err := derEncodeVideotexString(&buf, s); err != nil {
		t.Fatal(err)
	}
	reverseBytes(buf)
	if string(buf) != "ab" {
		t.Fatalf("got %q", buf)
	}
}
