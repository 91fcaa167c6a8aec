package asn1c

import "unicode/utf8"

/*
utf8.go implements the ASN.1 UTF8String type (tag 12), per X.680 §41,
grounded on the teacher library's utf8.go.
*/

type UTF8String string

func (UTF8String) Tag() int          { return TagUTF8String }
func (UTF8String) IsPrimitive() bool { return true }
func (r UTF8String) String() string  { return string(r) }

func NewUTF8String(x string) (UTF8String, error) {
	if !utf8.ValidString(x) {
		return "", mkerrf("UTF8String: invalid UTF-8 input")
	}
	return UTF8String(x), nil
}

func derEncodeUTF8String(buf *[]byte, s UTF8String) { derEncodeUTF8Passthrough(buf, string(s)) }
