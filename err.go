package asn1c

/*
err.go contains the crossing-layer [Error] type (§7 of the design) plus
the sentinel errors and formatting helpers used throughout the analyzer
and encoder.
*/

import "sync"

/*
ErrorKind is the sealed interface implemented by the two error
categories crossing the analyzer/encoder boundary: [AstErrorKind] for
semantic-analysis-time failures and [IOErrorKind] for encoder/decoder
format failures.
*/
type ErrorKind interface {
	isErrorKind()
	String() string
}

/*
AstErrorKind wraps a semantic-analysis-time failure: a bad component
name, a type mismatch on a value assignment, an out-of-range time
field, SIZE nested in SIZE, CONTAINING on a non-string type, a missing
enumeration item, and so on.
*/
type AstErrorKind struct{ Message string }

func (AstErrorKind) isErrorKind()     {}
func (k AstErrorKind) String() string { return k.Message }

/*
IOErrorKind wraps an encoder/decoder-side format validation failure
(decoder only; the spec presumes encoder inputs are already vetted by
the analyzer).
*/
type IOErrorKind struct{ Err error }

func (IOErrorKind) isErrorKind()     {}
func (k IOErrorKind) String() string { return k.Err.Error() }

/*
Error is the single error type that crosses every layer of this module,
per §7 of the design. Errors are never retried and never caught
internally; they propagate to the caller verbatim.
*/
type Error struct {
	Kind ErrorKind
	Loc  Loc
}

/*
Error implements the error interface.
*/
func (e *Error) Error() string { return e.Kind.String() }

/*
Unwrap exposes the underlying [IOErrorKind] error, if any, so that
errors.Is/errors.As work against decoder-side io errors.
*/
func (e *Error) Unwrap() error {
	if io, ok := e.Kind.(IOErrorKind); ok {
		return io.Err
	}
	return nil
}

/*
astErrorf builds an *[Error] wrapping an [AstErrorKind] from the given
message parts and location.
*/
func astErrorf(loc Loc, parts ...any) *Error {
	return &Error{Kind: AstErrorKind{Message: mkerrf(parts...).Error()}, Loc: loc}
}

/*
ioErrorf builds an *[Error] wrapping an [IOErrorKind].
*/
func ioErrorf(err error) *Error {
	return &Error{Kind: IOErrorKind{Err: err}}
}

/*
sentinel errors referenced by message across the package.
*/
var (
	errDanglingReference     error = mkerr("dangling value reference: does not resolve in the context registry")
	errDuplicateName         error = mkerr("duplicate name registered within module")
	errSizeInSize            error = mkerr("SIZE constraints cannot be nested")
	errContainingNotOnBitOct error = mkerr("CONTAINING constraint is only valid on BIT STRING or OCTET STRING")
	errInnerTypeNotOnStruct  error = mkerr("inner type constraints cannot be applied to this type")
	errNoContentsConstraint  error = mkerr("CONTAINING value cannot be applied to a type without a contents constraint")
	errUnknownComponent      error = mkerr("constrained type does not contain a component with this name")
	errUnknownAlternative    error = mkerr("CHOICE type does not define an alternative with this name")
	errMissingComponent      error = mkerr("value missing a required, non-defaulted component")
	errSealed                error = mkerr("context registry is sealed; no further registration is permitted")
	errEmptyInteger          error = mkerr("INTEGER decode requires a non-empty byte sequence")
)

var errCache sync.Map

/*
mkerrf concatenates parts into a message and returns a cached error for
it, mirroring the teacher library's own err.go caching idiom so that
repeated identical error text does not repeatedly allocate.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case error:
			b.WriteString(v.Error())
		default:
			b.WriteString("<unsupported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
