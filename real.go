package asn1c

/*
real.go implements the ASN.1 REAL value domain (§3, §4.6 of the
design): the [Real] struct and the base-2 DER content encoder, grounded
on the teacher library's real.go struct shape and the upstream
compiler's encoding/values.rs der_encode_real.

DER restricts REAL to base 2 (X.690 §8.5.7). [Real] carries no base
field and the encoder only ever produces the base-2 form, so the base-10
(NR3) and base-8/16 encodings that BER permits are never emitted.
*/

import "math/big"

/*
RealSpecial flags a [Real] as a normal finite value or one of the three
special values X.690 §8.5.9 reserves an all-ones exponent-field encoding
for.
*/
type RealSpecial int

const (
	RealNormal RealSpecial = iota
	RealPlusInfinity
	RealMinusInfinity
	RealNotANumber
)

/*
String returns the ASN.1 keyword for special values, or the empty
string for [RealNormal].
*/
func (r RealSpecial) String() string {
	switch r {
	case RealPlusInfinity:
		return "PLUS-INFINITY"
	case RealMinusInfinity:
		return "MINUS-INFINITY"
	case RealNotANumber:
		return "NOT-A-NUMBER"
	default:
		return ""
	}
}

/*
Real implements the ASN.1 REAL type (tag 9). When Special is
[RealNormal] the value is Mantissa × 2^Exponent; every other field is
ignored for the three special values.
*/
type Real struct {
	Special  RealSpecial
	Mantissa Integer
	Exponent int
}

/*
NewRealPlusInfinity returns a [Real] representing PLUS-INFINITY.
*/
func NewRealPlusInfinity() Real { return Real{Special: RealPlusInfinity} }

/*
NewRealMinusInfinity returns a [Real] representing MINUS-INFINITY.
*/
func NewRealMinusInfinity() Real { return Real{Special: RealMinusInfinity} }

/*
NewRealNotANumber returns a [Real] representing NOT-A-NUMBER.
*/
func NewRealNotANumber() Real { return Real{Special: RealNotANumber} }

/*
NewReal returns a finite [Real] equal to mantissa × 2^exponent.
*/
func NewReal[T any](mantissa T, exponent int) (Real, error) {
	m, err := NewInteger(mantissa)
	if err != nil {
		return Real{}, err
	}
	return Real{Mantissa: m, Exponent: exponent}, nil
}

/*
IsZero reports whether the receiver is the finite value zero.
*/
func (r Real) IsZero() bool {
	return r.Special == RealNormal && r.Mantissa.Big().Sign() == 0
}

/*
Tag returns the integer constant [TagReal].
*/
func (Real) Tag() int { return TagReal }

/*
IsPrimitive always returns true for [Real].
*/
func (Real) IsPrimitive() bool { return true }

/*
normalizeBase2 removes trailing zero bits from mantissa, folding each
one into the exponent, as X.690 §8.5.7.5 requires for the "preferred"
DER encoding: the mantissa must be odd (or zero).
*/
func normalizeBase2(mantissa *big.Int, exponent int) (*big.Int, int) {
	m := newBigInt(0).Set(mantissa)
	if m.Sign() == 0 {
		return m, 0
	}
	two := newBigInt(2)
	rem := newBigInt(0)
	quo := newBigInt(0)
	for {
		quo.QuoRem(m, two, rem)
		if rem.Sign() != 0 {
			break
		}
		m.Set(quo)
		exponent++
	}
	return m, exponent
}

/*
realExponentOctetLength returns the DER "exp_len" field value for an
exponent whose minimal two's-complement encoding is encLen octets: 1, 2,
3 or, for anything larger, the long form signaled by encLen itself in a
trailing length octet (X.690 §8.5.7.4).
*/
func realExponentOctetLength(encLen int) (bitflags byte, longForm bool) {
	switch encLen {
	case 1:
		return 0b00, false
	case 2:
		return 0b01, false
	case 3:
		return 0b10, false
	default:
		return 0b11, true
	}
}

/*
derEncodeReal appends r's DER content octets to buf in reverse-append
order (§4.6). Special values produce the single-octet encodings X.690
§8.5.9 reserves; zero produces the empty content octet string X.690
§8.5.3 reserves; everything else follows the base-2 binary encoding of
§8.5.7, normalized per §8.5.7.5.
*/
func derEncodeReal(buf *[]byte, r Real) error {
	switch r.Special {
	case RealPlusInfinity:
		*buf = append(*buf, 0b0100_0000)
		return nil
	case RealMinusInfinity:
		*buf = append(*buf, 0b0100_0001)
		return nil
	case RealNotANumber:
		*buf = append(*buf, 0b0100_0010)
		return nil
	}

	mantissa := r.Mantissa.Big()
	if mantissa.Sign() == 0 {
		return nil // empty content octet string
	}

	negative := mantissa.Sign() < 0
	absMantissa := newBigInt(0).Abs(mantissa)
	normMantissa, exponent := normalizeBase2(absMantissa, r.Exponent)

	start := len(*buf)

	// N-block: the normalized, unsigned mantissa magnitude.
	nBlock := encodeIntegerContent(normMantissa)
	if nBlock[0] == 0x00 && len(nBlock) > 1 {
		nBlock = nBlock[1:] // encodeIntegerContent sign-pads; REAL's mantissa field never needs that pad
	}
	for k := len(nBlock) - 1; k >= 0; k-- {
		*buf = append(*buf, nBlock[k])
	}

	// E-block: the two's-complement exponent.
	eBlock := encodeIntegerContent(newBigInt(int64(exponent)))
	for k := len(eBlock) - 1; k >= 0; k-- {
		*buf = append(*buf, eBlock[k])
	}

	bitflags, longForm := realExponentOctetLength(len(eBlock))
	var flagByte byte = 0b1000_0000 // bit 8 set: binary encoding
	if negative {
		flagByte |= 0b0100_0000
	}
	// base field (bits 6-5) is always 00: base 2, per the preferred DER form.
	flagByte |= bitflags

	if longForm {
		*buf = append(*buf, byte(len(eBlock)))
	}
	*buf = append(*buf, flagByte)

	_ = start
	return nil
}
