package asn1c

/*
type.go declares [TaggedType] and the sealed [UntaggedType]/[BuiltinType]
sum types the analyzer resolves AST type syntax into (§3, §4 of the
design), grounded on the upstream compiler's types/mod.rs,
types/simple.rs and types/structured.rs.
*/

/*
TaggedType is the resolved form of any ASN.1 type: an optional tag, the
untagged shape underneath it, and any constraint applied to it. Tag is
nil for types that inherit no explicit tag (their DER identifier octet
comes straight from the untagged shape's universal tag).
*/
type TaggedType struct {
	Tag        *Tag
	Type       UntaggedType
	Constraint *Constraint
}

/*
UntaggedType is the sealed interface for the untagged portion of a
resolved type: either a builtin shape or a (fully resolved, not merely
named) reference to another registered type.
*/
type UntaggedType interface{ isUntaggedType() }

/*
TypeReference is a resolved reference to another [Context]-registered
type assignment.
*/
type TypeReference struct{ Ident QualifiedIdentifier }

func (TypeReference) isUntaggedType() {}

/*
BuiltinType is the sealed interface for every resolved ASN.1 builtin
type shape.
*/
type BuiltinType interface {
	UntaggedType
	isBuiltinType()
}

/*
SimpleType covers every builtin type whose shape is fully described by
its universal tag number: BOOLEAN, NULL, OCTET STRING, every restricted
character string type, every calendar/time type, and INTEGER/BIT STRING
without named values (those carry NamedValues instead, see
[IntegerType]/[BitStringType]).
*/
type SimpleType struct{ UniversalTag int }

func (SimpleType) isUntaggedType() {}
func (SimpleType) isBuiltinType()  {}

/*
NamedNumber is one `name(value)` entry of an INTEGER type's named-number
list, per X.680 §19.5.
*/
type NamedNumber struct {
	Name  string
	Value Integer
}

/*
IntegerType is an INTEGER type shape, with its optional named-number
list.
*/
type IntegerType struct{ NamedValues []NamedNumber }

func (IntegerType) isUntaggedType() {}
func (IntegerType) isBuiltinType()  {}

/*
NamedBit is one `name(value)` entry of a BIT STRING type's named-bit
list, per X.680 §22.2.
*/
type NamedBit struct {
	Name  string
	Value uint64
}

/*
BitStringType is a BIT STRING type shape, with its optional named-bit
list.
*/
type BitStringType struct{ NamedBits []NamedBit }

func (BitStringType) isUntaggedType() {}
func (BitStringType) isBuiltinType()  {}

/*
StructureComponent is one resolved component of a SEQUENCE or SET type.
*/
type StructureComponent struct {
	Name         string
	Type         TaggedType
	Optional     bool
	DefaultValue *Value
}

/*
StructureType is a resolved SEQUENCE or SET type shape. TagType is
[TagSequence] or [TagSet].
*/
type StructureType struct {
	TagType    int
	Components []StructureComponent
}

func (StructureType) isUntaggedType() {}
func (StructureType) isBuiltinType()  {}

/*
StructureOfType is a resolved SEQUENCE OF/SET OF type shape. TagType is
[TagSequence] or [TagSet].
*/
type StructureOfType struct {
	TagType       int
	ComponentType TaggedType
}

func (StructureOfType) isUntaggedType() {}
func (StructureOfType) isBuiltinType()  {}

/*
ChoiceAlternative is one resolved alternative of a CHOICE type.
*/
type ChoiceAlternative struct {
	Name string
	Type TaggedType
}

/*
ChoiceType is a resolved CHOICE type shape.
*/
type ChoiceType struct{ Alternatives []ChoiceAlternative }

func (ChoiceType) isUntaggedType() {}
func (ChoiceType) isBuiltinType()  {}

/*
EnumerationItem is one resolved named item of an ENUMERATED type. Value
is always fully resolved by the time it reaches this struct: implied
items have already been assigned their 0-based-or-prior-plus-one number
by [ResolveEnumerationItems].
*/
type EnumerationItem struct {
	Name  string
	Value Integer
}

/*
EnumeratedType is a resolved ENUMERATED type shape.
*/
type EnumeratedType struct{ Items []EnumerationItem }

func (EnumeratedType) isUntaggedType() {}
func (EnumeratedType) isBuiltinType()  {}

/*
universalTagOf reports the DER identifier-octet tag number a resolved
builtin type occupies absent any overriding explicit/implicit [Tag].
*/
func universalTagOf(t UntaggedType) (int, bool) {
	switch v := t.(type) {
	case SimpleType:
		return v.UniversalTag, true
	case IntegerType:
		return TagInteger, true
	case BitStringType:
		return TagBitString, true
	case StructureType:
		return v.TagType, true
	case StructureOfType:
		return v.TagType, true
	case ChoiceType:
		return invalidTag, false // CHOICE has no tag of its own; the chosen alternative supplies one
	case EnumeratedType:
		return TagEnumerated, true
	default:
		return invalidTag, false
	}
}
