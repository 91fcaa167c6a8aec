package asn1c

/*
constraint.go declares the resolved constraint domain (§4.3 of the
design), grounded on the upstream compiler's compiler/ast/constraints.rs
and compiler/ast/values.rs PendingConstraint machinery.
*/

/*
ConstraintContext distinguishes a constraint evaluated in an ordinary
position from one evaluated inside a SIZE(...) clause, since SIZE
constraints cannot themselves nest (errSizeInSize, §4.3).
*/
type ConstraintContext int

const (
	ConstraintContextless ConstraintContext = iota
	ConstraintWithinSize
)

/*
Constraint is an ordered intersection of unions of [SubtypeElement],
mirroring ASN.1's `ElementSetSpec1 | ElementSetSpec2, ElementSetSpec3`
grammar: the outer slice is the intersection (comma-joined), each inner
slice is a union (pipe-joined).
*/
type Constraint struct{ Intersection [][]SubtypeElement }

/*
SubtypeElement is the sealed interface for one constraint clause.
*/
type SubtypeElement interface{ isSubtypeElement() }

/*
SingleValueConstraint restricts a type to exactly one literal value.
*/
type SingleValueConstraint struct{ Value Value }

func (SingleValueConstraint) isSubtypeElement() {}

/*
RangeLowerBound is the sealed interface for a value range's lower
bound.
*/
type RangeLowerBound interface{ isRangeLowerBound() }

type RangeLowerMin struct{}

func (RangeLowerMin) isRangeLowerBound() {}

type RangeLowerInclusive struct{ Value Value }

func (RangeLowerInclusive) isRangeLowerBound() {}

type RangeLowerExclusive struct{ Value Value }

func (RangeLowerExclusive) isRangeLowerBound() {}

/*
RangeUpperBound is the sealed interface for a value range's upper
bound.
*/
type RangeUpperBound interface{ isRangeUpperBound() }

type RangeUpperMax struct{}

func (RangeUpperMax) isRangeUpperBound() {}

type RangeUpperInclusive struct{ Value Value }

func (RangeUpperInclusive) isRangeUpperBound() {}

type RangeUpperExclusive struct{ Value Value }

func (RangeUpperExclusive) isRangeUpperBound() {}

/*
ValueRangeConstraint restricts a type's value to a bounded range, per
X.680 §51.
*/
type ValueRangeConstraint struct {
	Lower RangeLowerBound
	Upper RangeUpperBound
}

func (ValueRangeConstraint) isSubtypeElement() {}

/*
SizeConstraint restricts the length of a string/collection type via a
nested [Constraint] applied to its size. Size can never itself carry
another SizeConstraint (errSizeInSize).
*/
type SizeConstraint struct{ Size Constraint }

func (SizeConstraint) isSubtypeElement() {}

/*
ContentsConstraint restricts a BIT STRING or OCTET STRING to hold the
DER encoding of a value of the named type, per X.680 §51.8 (the
`CONTAINING Type` clause).
*/
type ContentsConstraint struct{ Ident QualifiedIdentifier }

func (ContentsConstraint) isSubtypeElement() {}

/*
PresenceConstraint is one of PRESENT/ABSENT/OPTIONAL inside a WITH
COMPONENTS clause.
*/
type PresenceConstraint int

const (
	PresenceDefault PresenceConstraint = iota
	PresencePresent
	PresenceAbsent
	PresenceOptional
)

/*
ComponentConstraint is one named entry of an InnerTypeConstraints list:
a constraint on the named component's value, its presence, or both.
*/
type ComponentConstraint struct {
	Name       string
	Constraint *Constraint
	Presence   PresenceConstraint
}

/*
InnerTypeConstraintsKind distinguishes a full WITH COMPONENTS spec (one
entry per declared component, every omitted component implicitly
absent) from a partial spec (only the listed components are
constrained, everything else is untouched).
*/
type InnerTypeConstraintsKind int

const (
	InnerTypeFull InnerTypeConstraintsKind = iota
	InnerTypePartial
)

/*
InnerTypeConstraints restricts the components of a SEQUENCE/SET/CHOICE
type via a WITH COMPONENTS clause, per X.680 §51.9.
*/
type InnerTypeConstraints struct {
	Kind       InnerTypeConstraintsKind
	Components []ComponentConstraint
}

func (InnerTypeConstraints) isSubtypeElement() {}

/*
PendingConstraint defers constraint application across the two-pass
analysis described in §4.3: a type assignment's own constraint plus,
recursively, the per-component constraints a WITH COMPONENTS clause (or
a SEQUENCE/SET/CHOICE's inline per-component subtype syntax) attaches to
its children. [ApplyPendingConstraint] walks this tree once the target
type's full shape is known and mutates the resolved [TaggedType] in
place.
*/
type PendingConstraint struct {
	Constraint          *Constraint
	ComponentConstraints map[string]*PendingConstraint
}
