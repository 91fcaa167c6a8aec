package asn1c

/*
oid.go implements the ASN.1 OBJECT IDENTIFIER and RELATIVE-OID value
domains (§3, §4.6 of the design), grounded on the teacher library's
oid.go String/Eq/Tag shape, with the base-128 DER arc encoder added per
X.690 §8.19-§8.20.

Arc-list resolution (turning a mix of name references and numbers into
a concrete []Integer) is the job of the external [ObjectIDResolver]
collaborator (§6); this file owns only the value container and its DER
encoding.
*/

/*
ObjectIdentifier implements an unbounded ASN.1 OBJECT IDENTIFIER
(tag 6): an arc list of at least two arcs, the first constrained to
{0,1,2} and the second to 0-39 when the first is 0 or 1 (X.660 §7.6).
*/
type ObjectIdentifier []Integer

/*
RelativeOID implements the ASN.1 RELATIVE-OID type (tag 13): an arc
list relative to some other OID, with none of OBJECT IDENTIFIER's
leading-arc constraints.
*/
type RelativeOID []Integer

/*
String returns the dotted-decimal string representation of the receiver.
*/
func (r ObjectIdentifier) String() string { return arcString([]Integer(r)) }

/*
String returns the dotted-decimal string representation of the receiver.
*/
func (r RelativeOID) String() string { return arcString([]Integer(r)) }

func arcString(arcs []Integer) string {
	if len(arcs) == 0 {
		return ""
	}
	x := make([]string, len(arcs))
	for i := range arcs {
		x[i] = arcs[i].String()
	}
	return join(x, ".")
}

/*
Eq reports whether the receiver and o hold the same arcs.
*/
func (r ObjectIdentifier) Eq(o ObjectIdentifier) bool { return eqArcs(r, o) }

/*
Eq reports whether the receiver and o hold the same arcs.
*/
func (r RelativeOID) Eq(o RelativeOID) bool { return eqArcs(r, o) }

func eqArcs(a, b []Integer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Eq(b[i]) {
			return false
		}
	}
	return true
}

/*
Tag returns the integer constant [TagOID].
*/
func (ObjectIdentifier) Tag() int { return TagOID }

/*
Tag returns the integer constant [TagRelativeOID].
*/
func (RelativeOID) Tag() int { return TagRelativeOID }

/*
IsPrimitive always returns true.
*/
func (ObjectIdentifier) IsPrimitive() bool { return true }

/*
IsPrimitive always returns true.
*/
func (RelativeOID) IsPrimitive() bool { return true }

/*
encodeArcBase128 returns the minimal base-128 encoding of one arc in
forward order: every octet but the last has its high bit set, per
X.690 §8.19.2.
*/
func encodeArcBase128(arc Integer) []byte {
	n := arc.Big()
	if n.Sign() == 0 {
		return []byte{0x00}
	}
	var groups []byte
	seven := newBigInt(128)
	rem := newBigInt(0)
	quo := newBigInt(0).Set(n)
	for quo.Sign() != 0 {
		quo.QuoRem(quo, seven, rem)
		groups = append(groups, byte(rem.Int64()))
	}
	out := make([]byte, len(groups))
	for i, g := range groups {
		b := g
		if i != 0 {
			b |= 0x80
		}
		out[len(groups)-1-i] = b
	}
	return out
}

/*
derEncodeObjectIdentifier appends the DER content octets of an OBJECT
IDENTIFIER arc list to buf in reverse-append order (§4.6): the first two
arcs are combined as 40*arc[0]+arc[1] per X.690 §8.19.4, then every
remaining arc is appended as its own base-128 group.
*/
func derEncodeObjectIdentifier(buf *[]byte, arcs []Integer) {
	if len(arcs) < 2 {
		return
	}
	first := newBigInt(40)
	first.Mul(first, arcs[0].Big())
	first.Add(first, arcs[1].Big())
	combined, _ := NewInteger(first)

	rest := make([][]byte, 0, len(arcs)-1)
	rest = append(rest, encodeArcBase128(combined))
	for i := 2; i < len(arcs); i++ {
		rest = append(rest, encodeArcBase128(arcs[i]))
	}
	for i := len(rest) - 1; i >= 0; i-- {
		group := rest[i]
		for k := len(group) - 1; k >= 0; k-- {
			*buf = append(*buf, group[k])
		}
	}
}

/*
derEncodeRelativeOID appends the DER content octets of a RELATIVE-OID
arc list to buf in reverse-append order: every arc, including the
first, is its own base-128 group (X.690 §8.20).
*/
func derEncodeRelativeOID(buf *[]byte, arcs []Integer) {
	for i := len(arcs) - 1; i >= 0; i-- {
		group := encodeArcBase128(arcs[i])
		for k := len(group) - 1; k >= 0; k-- {
			*buf = append(*buf, group[k])
		}
	}
}
