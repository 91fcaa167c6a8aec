package asn1c

/*
integer.go implements the INTEGER value domain (§3, §4.2 of the design):
the [Integer] wrapper type plus the two's-complement DER content codec
described in §4.6, grounded on the teacher library's int.go wrapper
shape and the upstream compiler's encoding/values.rs
der_encode_integer/der_decode_integer.
*/

import (
	"math"
	"math/big"
)

const zeroByte = 0x00

/*
Integer implements the unbounded ASN.1 INTEGER type (tag 2). A *[big.Int]
is used internally only once the value overflows int64; the zero value
equates to int64(0).
*/
type Integer struct {
	big    bool
	native int64
	bigInt *big.Int
}

/*
NewInteger returns an [Integer] built from x. Accepted input types are
int, int32, int64, uint64, string, []byte (big-endian magnitude with an
implicit leading-sign byte, as produced by [Integer.Bytes]) and
*[math/big.Int].
*/
func NewInteger[T any](x T) (i Integer, err error) {
	switch v := any(x).(type) {
	case int:
		i = Integer{native: int64(v)}
	case int32:
		i = Integer{native: int64(v)}
	case int64:
		i = Integer{native: v}
	case uint64:
		i = uint64ToInteger(v)
	case []byte:
		i = bEToInteger(v)
	case *big.Int:
		i = bigToInteger(v)
	case string:
		i, err = strToInteger(v)
	case Integer:
		i = v
	default:
		err = mkerrf("INTEGER: unsupported constructor input type")
	}
	return
}

/*
MustNewInteger returns an [Integer] and panics if [NewInteger] would
have returned an error.
*/
func MustNewInteger[T any](x T) Integer {
	i, err := NewInteger(x)
	if err != nil {
		panic(err)
	}
	return i
}

/*
Tag returns the integer constant [TagInteger].
*/
func (Integer) Tag() int { return TagInteger }

/*
IsPrimitive always returns true for [Integer].
*/
func (Integer) IsPrimitive() bool { return true }

/*
String returns the base-10 string representation of the receiver.
*/
func (r Integer) String() string {
	if r.big {
		return r.bigInt.String()
	}
	return fmtInt(r.native, 10)
}

/*
IsBig reports whether the underlying value overflows int64.
*/
func (r Integer) IsBig() bool { return r.big }

/*
Native returns the underlying int64 value. Only meaningful when
[Integer.IsBig] is false.
*/
func (r Integer) Native() int64 { return r.native }

/*
Big returns the *[big.Int] form of the receiver, allocating a new one
on demand when the value is stored natively.
*/
func (r Integer) Big() *big.Int {
	if r.big {
		return r.bigInt
	}
	return newBigInt(r.native)
}

/*
Bytes returns the receiver's minimal two's-complement big-endian content
octets, exactly as DER requires for an INTEGER value (§4.6).
*/
func (r Integer) Bytes() []byte { return encodeIntegerContent(r.Big()) }

/*
Eq reports whether the receiver and x represent the same integer.
*/
func (r Integer) Eq(x Integer) bool { return cmpInteger(r, x) == 0 }

/*
Cmp returns -1, 0 or +1 as the receiver is less than, equal to, or
greater than x.
*/
func (r Integer) Cmp(x Integer) int { return cmpInteger(r, x) }

func cmpInteger(a, b Integer) int {
	if !a.big && !b.big {
		switch {
		case a.native < b.native:
			return -1
		case a.native > b.native:
			return +1
		default:
			return 0
		}
	}
	return a.Big().Cmp(b.Big())
}

func bEToInt64(b []byte) int64 {
	n := len(b)
	pad := byte(zeroByte)
	if n > 0 && b[0]&0x80 != 0 {
		pad = 0xFF
	}
	var u uint64
	for i := 0; i < 8-n; i++ {
		u = (u << 8) | uint64(pad)
	}
	for _, by := range b {
		u = (u << 8) | uint64(by)
	}
	return int64(u)
}

func bEFitsInt64(b []byte) bool {
	n := len(b)
	if n <= 8 {
		return true
	}
	high := b[n-8]
	ext := byte(zeroByte)
	if high&0x80 != 0 {
		ext = 0xFF
	}
	for i := 0; i < n-8; i++ {
		if b[i] != ext {
			return false
		}
	}
	return true
}

func bEToInteger(b []byte) (i Integer) {
	if i.big = !bEFitsInt64(b); i.big {
		val := newBigInt(0).SetBytes(b)
		if len(b) > 0 && b[0]&0x80 != 0 {
			bitLen := uint(len(b) * 8)
			twoPow := newBigInt(0).Lsh(newBigInt(1), bitLen)
			val.Sub(val, twoPow)
		}
		i.bigInt = val
	} else {
		i.native = bEToInt64(b)
	}
	return
}

func strToInteger(num string) (i Integer, err error) {
	v, ok := newBigInt(0).SetString(num, 10)
	if !ok {
		err = mkerrf("INTEGER: invalid base-10 string ", num)
		return
	}
	return bigToInteger(v), nil
}

func bigToInteger(num *big.Int) (i Integer) {
	if i.big = !num.IsInt64(); i.big {
		i.bigInt = num
	} else {
		i.native = num.Int64()
	}
	return
}

func uint64ToInteger(num uint64) (i Integer) {
	if i.big = num > uint64(math.MaxInt64); i.big {
		i.bigInt = newBigInt(0).SetUint64(num)
	} else {
		i.native = int64(num)
	}
	return
}

/*
decodeIntegerContent interprets encoded as a DER INTEGER content octet
sequence (two's complement, minimal length) and returns its value,
failing on an empty sequence per errEmptyInteger.
*/
func decodeIntegerContent(encoded []byte) (*big.Int, error) {
	if len(encoded) == 0 {
		return nil, &Error{Kind: IOErrorKind{Err: errEmptyInteger}}
	}
	val := newBigInt(0).SetBytes(encoded)
	if encoded[0]&0x80 != 0 {
		bitLen := uint(len(encoded) * 8)
		twoPow := newBigInt(0).Lsh(newBigInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val, nil
}

/*
encodeIntegerContent produces the minimal two's-complement big-endian
content octets for i, per X.690 §8.3 (also used for the N-block and
E-block of REAL encoding, per §4.6).
*/
func encodeIntegerContent(i *big.Int) []byte {
	if i.Sign() >= 0 {
		b := i.Bytes()
		if len(b) == 0 {
			b = []byte{zeroByte}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{zeroByte}, b...)
		}
		return b
	}

	abs := newBigInt(0).Abs(i)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := newBigInt(0).Lsh(newBigInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := newBigInt(0).Lsh(newBigInt(1), uint(8*n))
	value := newBigInt(0).Add(mod, i)
	return value.Bytes()
}

/*
derEncodeInteger appends i's DER content octets to buf in reverse-append
order (§4.6): each byte is appended front-to-back from the content's own
last byte to its first, so that a single final [reverseBytes] on the
whole output buffer restores correct order.
*/
func derEncodeInteger(buf *[]byte, i Integer) {
	content := i.Bytes()
	for k := len(content) - 1; k >= 0; k-- {
		*buf = append(*buf, content[k])
	}
}
