package asn1c

/*
vs.go implements the ASN.1 VisibleString type (tag 26): ASCII 0x20-0x7E,
per X.680 §41 and grounded on the teacher library's vs.go.
*/

type VisibleString string

func (VisibleString) Tag() int          { return TagVisibleString }
func (VisibleString) IsPrimitive() bool { return true }
func (r VisibleString) String() string  { return string(r) }

func NewVisibleString(x string) (VisibleString, error) {
	if err := validateRunes(x, isVisibleChar); err != nil {
		return "", err
	}
	return VisibleString(x), nil
}

func derEncodeVisibleString(buf *[]byte, s VisibleString) {
	derEncodeUTF8Passthrough(buf, string(s))
}
