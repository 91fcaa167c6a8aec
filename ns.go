package asn1c

/*
ns.go implements the ASN.1 NumericString type (tag 18): digits 0-9 and
space only, per X.680 §41 and grounded on the teacher library's ns.go.
*/

type NumericString string

func (NumericString) Tag() int          { return TagNumericString }
func (NumericString) IsPrimitive() bool { return true }
func (r NumericString) String() string  { return string(r) }

func NewNumericString(x string) (NumericString, error) {
	if err := validateRunes(x, isNumericChar); err != nil {
		return "", err
	}
	return NumericString(x), nil
}

func derEncodeNumericString(buf *[]byte, s NumericString) { derEncodeUTF8Passthrough(buf, string(s)) }
