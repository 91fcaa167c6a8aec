package asn1c

/*
cs.go implements the unrestricted ASN.1 CHARACTER STRING type (tag 29).
The teacher library's cs.go models the full X.680 §44.5 embedded-PDV
structure (identification CHOICE + data-value-descriptor + string-value
SEQUENCE); this module instead treats CHARACTER STRING as its
string-value OCTET STRING content alone, since SPEC_FULL.md's value
model has no use for presentation-context negotiation (see DESIGN.md).
*/

type UnrestrictedCharacterString string

func (UnrestrictedCharacterString) Tag() int          { return TagCharacterString }
func (UnrestrictedCharacterString) IsPrimitive() bool { return false }
func (r UnrestrictedCharacterString) String() string  { return string(r) }

func NewUnrestrictedCharacterString(x string) UnrestrictedCharacterString {
	return UnrestrictedCharacterString(x)
}

func derEncodeUnrestrictedCharacterString(buf *[]byte, s UnrestrictedCharacterString) {
	derEncodeUTF8Passthrough(buf, string(s))
}
