package asn1c

/*
gs.go implements the ASN.1 GraphicString type (tag 25), grounded on the
teacher library's gs.go, using the "space or non-control" predicate
resolved from the upstream compiler (see strchars.go).
*/

type GraphicString string

func (GraphicString) Tag() int          { return TagGraphicString }
func (GraphicString) IsPrimitive() bool { return true }
func (r GraphicString) String() string  { return string(r) }

func NewGraphicString(x string) (GraphicString, error) {
	if err := validateRunes(x, isGraphicOrObjectDescriptorChar); err != nil {
		return "", err
	}
	return GraphicString(x), nil
}

func derEncodeGraphicString(buf *[]byte, s GraphicString) {
	derEncodeUTF8Passthrough(buf, string(s))
}
