package asn1c

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

/*
official import aliases.
*/
var (
	mkerr     func(string) error         = errors.New
	itoa      func(int) string           = strconv.Itoa
	atoi      func(string) (int, error)  = strconv.Atoi
	fmtInt    func(int64, int) string    = strconv.FormatInt
	hasPfx    func(string, string) bool  = strings.HasPrefix
	hasSfx    func(string, string) bool  = strings.HasSuffix
	join      func([]string, string) string = strings.Join
	split     func(string, string) []string = strings.Split
	repeat    func(string, int) string   = strings.Repeat
	newBigInt func(int64) *big.Int       = big.NewInt
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
isASCIIDigit reports whether b is one of '0'..'9'.
*/
func isASCIIDigit(b byte) bool { return '0' <= b && b <= '9' }

/*
inRange reports whether v falls within [lo, hi] inclusive, for any
ordered integer type. Used to validate the numerous fixed-width
calendar fields decoded across time.go.
*/
func inRange[T constraints.Integer](v, lo, hi T) bool { return v >= lo && v <= hi }

/*
parseBase10Field parses exactly len(field) base-10 digits and validates
the result falls within [lo, hi] inclusive. Every fixed-width calendar
field in §4.5 is parsed this way.
*/
func parseBase10Field(field []byte, lo, hi int) (int, error) {
	if len(field) == 0 {
		return 0, mkerr("empty numeric field")
	}
	n := 0
	for _, b := range field {
		if !isASCIIDigit(b) {
			return 0, mkerrf("invalid base-10 digit '", string(b), "'")
		}
		n = n*10 + int(b-'0')
	}
	if !inRange(n, lo, hi) {
		return 0, mkerrf("value ", itoa(n), " out of bounds")
	}
	return n, nil
}

/*
pad2 zero-pads a non-negative int to at least two digits.
*/
func pad2(n int) string {
	s := itoa(n)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}

/*
pad4 zero-pads a non-negative int to at least four digits.
*/
func pad4(n int) string {
	s := itoa(n)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

/*
reverseBytes reverses buf in place, completing the reverse-append DER
encoding convention described in §4.6: encoders append content
back-to-front, and the public entry point reverses once at the end.
*/
func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
