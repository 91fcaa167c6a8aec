package asn1c

/*
octetstring.go implements the ASN.1 OCTET STRING value domain (§3, §4.6
of the design), grounded on the teacher library's oct.go.
*/

/*
OctetString implements the ASN.1 OCTET STRING type (tag 4).
*/
type OctetString []byte

/*
NewOctetString returns an [OctetString] built from x: []byte, string, or
the raw digit text of an 'xx'H hstring literal ([NewOctetStringFromHstring]).
*/
func NewOctetString(x any) (oct OctetString, err error) {
	switch tv := x.(type) {
	case []byte:
		oct = OctetString(tv)
	case string:
		oct = OctetString(tv)
	default:
		err = mkerr("OCTET STRING: unsupported constructor input type")
	}
	return
}

/*
NewOctetStringFromHstring parses an hstring literal's raw hex digit text
into an [OctetString], right-padding a final odd digit with a trailing
zero nibble per X.680 §12.11.3.
*/
func NewOctetStringFromHstring(raw []byte) (OctetString, error) {
	digits := raw
	if len(digits)%2 != 0 {
		digits = append(append([]byte{}, digits...), '0')
	}
	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		hi, err := hexNibble(digits[i*2])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(digits[i*2+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return OctetString(out), nil
}

func hexNibble(h byte) (byte, error) {
	switch {
	case '0' <= h && h <= '9':
		return h - '0', nil
	case 'a' <= h && h <= 'f':
		return h - 'a' + 10, nil
	case 'A' <= h && h <= 'F':
		return h - 'A' + 10, nil
	default:
		return 0, mkerrf("OCTET STRING: invalid hstring digit '", string(h), "'")
	}
}

/*
Tag returns the integer constant [TagOctetString].
*/
func (OctetString) Tag() int { return TagOctetString }

/*
IsPrimitive always returns true for [OctetString].
*/
func (OctetString) IsPrimitive() bool { return true }

/*
String returns the receiver cast as a native Go string.
*/
func (o OctetString) String() string { return string(o) }

/*
derEncodeOctetString appends o's DER content octets to buf in
reverse-append order.
*/
func derEncodeOctetString(buf *[]byte, o OctetString) {
	for k := len(o) - 1; k >= 0; k-- {
		*buf = append(*buf, o[k])
	}
}
