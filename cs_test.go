package asn1c

import "testing"

func TestUnrestrictedCharacterStringDEREncode(t *testing.T) {
	s := NewUnrestrictedCharacterString("ab")
	var buf []byte
	derEncodeUnrestrictedCharacterString(&buf, s)
	reverseBytes(buf)
	if string(buf) != "ab" {
		t.Fatalf("got %q", buf)
	}
}
