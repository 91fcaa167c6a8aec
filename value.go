package asn1c

/*
value.go declares [Value], the sealed sum type every lowered ASN.1
value takes in this module (§3, §4.2 of the design), grounded on the
upstream compiler's values/mod.rs + values/time.rs BuiltinValue enum.
*/

/*
Value is the sealed interface implemented by every lowered ASN.1 value.
A [ParserContext] caller never type-switches on Value directly except
to drive a DER encoder or a diagnostic printer; the analyzer itself only
ever produces one, never inspects one it didn't just build.
*/
type Value interface{ isValue() }

type NullValue struct{}

func (NullValue) isValue() {}

type BooleanValue struct{ Value bool }

func (BooleanValue) isValue() {}

type IntegerValue struct{ Value Integer }

func (IntegerValue) isValue() {}

type RealValue struct{ Value Real }

func (RealValue) isValue() {}

type BitStringValue struct{ Value BitString }

func (BitStringValue) isValue() {}

type OctetStringValue struct{ Value []byte }

func (OctetStringValue) isValue() {}

type ObjectIdentifierValue struct{ Value ObjectIdentifier }

func (ObjectIdentifierValue) isValue() {}

type RelativeOIDValue struct{ Value RelativeOID }

func (RelativeOIDValue) isValue() {}

/*
CharacterStringValue is the lowered form of any of the twelve restricted
character string types plus UTF8String and CHARACTER STRING; Kind is
the type's universal tag number (e.g. [TagIA5String]) and Data is the
decoded Go string. DER byte production is left to der_encoder.go's
derEncodeCharacterStringContent and the helpers in strchars.go, since
several of these kinds (T61String, VideotexString, BMPString,
UniversalString) re-encode to a non-UTF-8 byte form.
*/
type CharacterStringValue struct {
	Kind int
	Data string
}

func (CharacterStringValue) isValue() {}

/*
StructureValueComponent is one resolved component of a SEQUENCE/SET
value, in the target type's declared component order (not source
order — [ReorderStructureValue] reorders during lowering). IsDefault
marks a component that was filled from its DEFAULT clause rather than
explicitly supplied by the source value; DER requires such components
to be omitted from the encoding (X.690 §11.5).
*/
type StructureValueComponent struct {
	Name      string
	Value     Value
	IsDefault bool
}

/*
StructureValue is a lowered SEQUENCE or SET value. TagType is
[TagSequence] or [TagSet].
*/
type StructureValue struct {
	TagType    int
	Components []StructureValueComponent
}

func (StructureValue) isValue() {}

/*
StructureOfValue is a lowered SEQUENCE OF/SET OF value.
*/
type StructureOfValue struct {
	TagType  int
	Elements []Value
}

func (StructureOfValue) isValue() {}

/*
ChoiceValue is a lowered CHOICE value: the chosen alternative's name and
its nested value.
*/
type ChoiceValue struct {
	Alternative string
	Value       Value
}

func (ChoiceValue) isValue() {}

/*
EnumeratedValue is a lowered ENUMERATED value: both the symbolic name
and its numeric value are retained, since DER encodes only the number
but diagnostics want the name.
*/
type EnumeratedValue struct {
	Name  string
	Value Integer
}

func (EnumeratedValue) isValue() {}

/*
ContainingValue is a lowered `CONTAINING value` clause attached to a
BIT STRING/OCTET STRING whose type carries a contents constraint; Inner
is the nested value lowered against that constraint's referenced type.
*/
type ContainingValue struct{ Inner Value }

func (ContainingValue) isValue() {}

/*
TimeKind discriminates which of the six calendar/time BuiltinValue
variants a [TimeValue] carries.
*/
type TimeKind int

const (
	TimeKindUTCTime TimeKind = iota
	TimeKindGeneralizedTime
	TimeKindDate
	TimeKindTimeOfDay
	TimeKindDateTime
	TimeKindDuration
)

/*
TimeValue is the lowered form of any of the six calendar/time builtin
types; exactly one of the pointer fields matching Kind is non-nil.
*/
type TimeValue struct {
	Kind            TimeKind
	UTCTime         *UTCTime
	GeneralizedTime *GeneralizedTime
	Date            *Date
	TimeOfDay       *TimeOfDay
	DateTime        *DateTime
	Duration        *Duration
}

func (TimeValue) isValue() {}

/*
ReferenceValue is a lowered value reference that could not be resolved
to a concrete literal at lowering time (e.g. a DEFAULT value pointing at
another value assignment evaluated lazily by the encoder). The analyzer
always attempts full resolution first; this variant exists for the
dangling-but-declared-elsewhere case §4.2 describes for cross-module
value references the caller chooses not to eagerly resolve.
*/
type ReferenceValue struct{ Ident QualifiedIdentifier }

func (ReferenceValue) isValue() {}
