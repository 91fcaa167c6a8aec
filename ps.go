package asn1c

/*
ps.go implements the ASN.1 PrintableString type (tag 19), per X.680
§41.4 and grounded on the teacher library's ps.go.
*/

type PrintableString string

func (PrintableString) Tag() int          { return TagPrintableString }
func (PrintableString) IsPrimitive() bool { return true }
func (r PrintableString) String() string  { return string(r) }

func NewPrintableString(x string) (PrintableString, error) {
	if err := validateRunes(x, isPrintableChar); err != nil {
		return "", err
	}
	return PrintableString(x), nil
}

func derEncodePrintableString(buf *[]byte, s PrintableString) {
	derEncodeUTF8Passthrough(buf, string(s))
}
