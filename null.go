package asn1c

/*
null.go implements the ASN.1 NULL value domain, grounded on the teacher
library's null.go.
*/

/*
Null implements the ASN.1 NULL type (tag 5). Its DER content is always
the empty octet string.
*/
type Null struct{}

/*
Tag returns the integer constant [TagNull].
*/
func (Null) Tag() int { return TagNull }

/*
IsPrimitive always returns true for [Null].
*/
func (Null) IsPrimitive() bool { return true }

/*
String returns the ASN.1 keyword NULL.
*/
func (Null) String() string { return "NULL" }
