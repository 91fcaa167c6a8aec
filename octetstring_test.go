package asn1c

import "testing"

func TestOctetStringFromHstring(t *testing.T) {
	o, err := NewOctetStringFromHstring([]byte("48656C6C6F"))
	if err != nil {
		t.Fatal(err)
	}
	if o.String() != "Hello" {
		t.Fatalf("String() = %q, want Hello", o.String())
	}
}

func TestOctetStringFromHstringOddDigitsPadded(t *testing.T) {
	o, err := NewOctetStringFromHstring([]byte("ABC"))
	if err != nil {
		t.Fatal(err)
	}
	if len(o) != 2 || o[0] != 0xAB || o[1] != 0xC0 {
		t.Fatalf("got % X, want [AB C0]", []byte(o))
	}
}

func TestOctetStringDEREncode(t *testing.T) {
	o, _ := NewOctetString("AB")
	var buf []byte
	derEncodeOctetString(&buf, o)
	reverseBytes(buf)
	if string(buf) != "AB" {
		t.Fatalf("got %q, want AB", buf)
	}
}
