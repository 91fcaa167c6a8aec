package asn1c

/*
strchars.go collects the character-membership validators and shared DER
encoding helpers used by the restricted character string type files
(ns.go, ps.go, ia5.go, vs.go, t61.go, vts.go, utf8.go, gs.go, us.go,
bmp.go, od.go, cs.go). Grounded on the teacher library's t61.go rune-set
validator shape, generalized to cover all twelve restricted string kinds
described in §4.4 of the design, and on the upstream compiler's
compiler/ast/values.rs parse_character_string validator closures for the
GraphicString/ObjectDescriptor "space or non-control" rule.
*/

import "golang.org/x/text/encoding/unicode"

func isNumericChar(c rune) bool { return c == ' ' || (c >= '0' && c <= '9') }

func isPrintableChar(c rune) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func isIA5Char(c rune) bool { return c <= 0x7F }

func isVisibleChar(c rune) bool { return c >= 0x20 && c <= 0x7E }

/*
isGraphicOrObjectDescriptorChar implements the predicate
`ch == ' ' || !is_control(ch)`, resolved from the upstream compiler's
parse_character_string for GraphicString and ObjectDescriptor.
*/
func isGraphicOrObjectDescriptorChar(c rune) bool {
	return c == ' ' || !isControlRune(c)
}

func isControlRune(c rune) bool {
	return (c >= 0x00 && c <= 0x1F) || c == 0x7F || (c >= 0x80 && c <= 0x9F)
}

func validateRunes(s string, allowed func(rune) bool) error {
	for _, c := range s {
		if !allowed(c) {
			return mkerrf("restricted character string: illegal character '", string(c), "'")
		}
	}
	return nil
}

/*
t61Table maps the subset of ISO/IEC 6937 (T.61) TeletexString repertoire
this module supports to its single-byte T.61 code: the printable ASCII
range maps identically, matching the teacher library's t61.go rune-set
validator (which only ever validates ASCII-range runes plus a small set
of Latin supplement letters, never true multi-byte T.61 diacritics).
*/
var t61Table = buildASCIIPassthroughTable()

/*
videotexTable maps the T.100/T.101 Videotex repertoire this module
supports to its single-byte code; like t61Table, this module's
supported repertoire is the printable ASCII range.
*/
var videotexTable = buildASCIIPassthroughTable()

func buildASCIIPassthroughTable() map[rune]byte {
	m := make(map[rune]byte, 95)
	for c := rune(0x20); c <= 0x7E; c++ {
		m[c] = byte(c)
	}
	return m
}

func isT61Char(c rune) bool {
	_, ok := t61Table[c]
	return ok
}

func isVideotexChar(c rune) bool {
	_, ok := videotexTable[c]
	return ok
}

/*
derEncodeUTF8Passthrough appends s's UTF-8 bytes to buf in reverse-append
order; used by every restricted string kind whose DER content is simply
its text encoded as UTF-8 (NumericString, PrintableString, IA5String,
VisibleString, UTF8String, GraphicString, ObjectDescriptor,
GeneralString, the unrestricted CHARACTER STRING).
*/
func derEncodeUTF8Passthrough(buf *[]byte, s string) {
	b := []byte(s)
	for k := len(b) - 1; k >= 0; k-- {
		*buf = append(*buf, b[k])
	}
}

/*
derEncodeTable appends s's bytes to buf, mapped through table, in
reverse-append order; used by T61String and VideotexString, whose DER
content is a single-byte-per-character encoding rather than raw UTF-8.
*/
func derEncodeTable(buf *[]byte, s string, table map[rune]byte) error {
	runes := []rune(s)
	for k := len(runes) - 1; k >= 0; k-- {
		b, ok := table[runes[k]]
		if !ok {
			return mkerrf("restricted character string: character '", string(runes[k]), "' has no table encoding")
		}
		*buf = append(*buf, b)
	}
	return nil
}

var utf16BMPEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

/*
derEncodeBMPString appends s's UTF-16 code units (little-endian, then
reversed alongside the rest of the buffer so the final output is
big-endian per X.690 §8.23's BMPString convention) to buf in
reverse-append order.
*/
func derEncodeBMPString(buf *[]byte, s string) error {
	encoded, err := utf16BMPEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return mkerrf("BMPString: ", err.Error())
	}
	// encoded is little-endian 2-byte code units; DER wants big-endian
	// pairs, so swap each pair before the caller's final whole-buffer
	// reverse restores per-codeunit byte order correctly.
	for i := 0; i+1 < len(encoded); i += 2 {
		encoded[i], encoded[i+1] = encoded[i+1], encoded[i]
	}
	for k := len(encoded) - 1; k >= 0; k-- {
		*buf = append(*buf, encoded[k])
	}
	return nil
}

/*
derEncodeUniversalString appends s's UTF-32 big-endian code units to buf
in reverse-append order, per X.690 §8.23's UniversalString convention.
golang.org/x/text has no UTF-32 codec, so this module implements the
4-byte-per-rune expansion directly (§9 design note: justified stdlib
fallback, see DESIGN.md).
*/
func derEncodeUniversalString(buf *[]byte, s string) {
	runes := []rune(s)
	for k := len(runes) - 1; k >= 0; k-- {
		r := uint32(runes[k])
		*buf = append(*buf, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}
}
