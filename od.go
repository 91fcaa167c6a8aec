package asn1c

/*
od.go implements the ASN.1 ObjectDescriptor type (tag 7), grounded on
the teacher library's od.go; it shares GraphicString's "space or
non-control" character predicate.
*/

type ObjectDescriptor string

func (ObjectDescriptor) Tag() int          { return TagObjectDescriptor }
func (ObjectDescriptor) IsPrimitive() bool { return true }
func (r ObjectDescriptor) String() string  { return string(r) }

func NewObjectDescriptor(x string) (ObjectDescriptor, error) {
	if err := validateRunes(x, isGraphicOrObjectDescriptorChar); err != nil {
		return "", err
	}
	return ObjectDescriptor(x), nil
}

func derEncodeObjectDescriptor(buf *[]byte, s ObjectDescriptor) {
	derEncodeUTF8Passthrough(buf, string(s))
}
