package asn1c

/*
bool.go implements the ASN.1 BOOLEAN value domain (§3, §4.6 of the
design), grounded on the teacher library's bool.go.
*/

/*
Boolean implements the ASN.1 BOOLEAN type (tag 1).
*/
type Boolean bool

/*
Tag returns the integer constant [TagBoolean].
*/
func (Boolean) Tag() int { return TagBoolean }

/*
Byte returns the DER encoding of the receiver: 0x00 for false, 0xFF for
true (X.690 §8.2.2 — DER requires all-ones for true, unlike BER which
permits any non-zero octet).
*/
func (r Boolean) Byte() byte {
	if bool(r) {
		return 0xFF
	}
	return 0x00
}

/*
String returns the string representation of the receiver instance.
*/
func (r Boolean) String() string { return bool2str(bool(r)) }

/*
Bool returns the receiver cast as a native Go bool.
*/
func (r Boolean) Bool() bool { return bool(r) }

/*
IsPrimitive always returns true for [Boolean].
*/
func (Boolean) IsPrimitive() bool { return true }

/*
NewBoolean returns a [Boolean] built from x: a bool, *bool, or a DER
content byte (0x00 / 0xFF).
*/
func NewBoolean(x any) (b Boolean, err error) {
	switch tv := x.(type) {
	case bool:
		b = Boolean(tv)
	case *bool:
		if tv != nil {
			b = Boolean(*tv)
		}
	case byte:
		b = Boolean(tv != 0x00)
	default:
		err = mkerr("BOOLEAN: unsupported constructor input type")
	}
	return
}

/*
derEncodeBoolean appends r's single DER content octet to buf.
*/
func derEncodeBoolean(buf *[]byte, r Boolean) { *buf = append(*buf, r.Byte()) }
