package asn1c

/*
analyzer_constraint.go implements constraint lowering (§4.3 of the
design): turning parser-produced [AstConstraint]/[AstInnerTypeConstraints]
syntax into the resolved [Constraint]/[InnerTypeConstraints] domain,
grounded on the upstream compiler's compiler/ast/constraints.rs
ElementSetSpec handling and compiler/ast/values.rs's two-pass
PendingConstraint deferral.

Two passes are assumed of the caller, mirroring §5's compile loop: pass
one registers every module's type and value assignments via the
external [TypeParser] without resolving WITH COMPONENTS cross-references
(those may name components of a type not yet registered); pass two,
once every assignment is registered, calls [ParseTypeAssignmentConstraint]
per assignment and [ApplyPendingConstraint] to push the result onto the
registered [DeclaredType] in place.
*/

/*
ParseConstraint lowers ast into a resolved [Constraint] against target,
the ASN.1 intersection-of-unions shape described by [Constraint.Intersection].
cc distinguishes an ordinary constraint position from one already nested
inside a SIZE(...) clause, since SIZE cannot itself contain SIZE
(errSizeInSize).
*/
func ParseConstraint(pc *ParserContext, ast AstElement[AstConstraint], target TaggedType, cc ConstraintContext) (*Constraint, error) {
	out := &Constraint{Intersection: make([][]SubtypeElement, 0, len(ast.Element.ElementSets))}
	for _, set := range ast.Element.ElementSets {
		union := make([]SubtypeElement, 0, len(set.Element.Elements))
		for _, el := range set.Element.Elements {
			se, err := parseSubtypeElement(pc, el, target, cc)
			if err != nil {
				return nil, err
			}
			union = append(union, se)
		}
		out.Intersection = append(out.Intersection, union)
	}
	return out, nil
}

func parseSubtypeElement(pc *ParserContext, el AstElement[AstSubtypeElement], target TaggedType, cc ConstraintContext) (SubtypeElement, error) {
	switch v := el.Element.(type) {
	case AstSingleValueConstraint:
		val, err := ParseValue(pc, v.Value, target)
		if err != nil {
			return nil, err
		}
		return SingleValueConstraint{Value: val}, nil
	case AstValueRangeConstraint:
		return parseValueRangeConstraint(pc, v, target)
	case AstSizeConstraint:
		return parseSizeConstraint(pc, v, cc)
	case AstContentsConstraint:
		return parseContentsConstraintElement(pc, el.Loc, v, target)
	case AstFullSpec:
		itc, err := ParseInnerTypeConstraints(pc, v, target)
		if err != nil {
			return nil, err
		}
		return itc, nil
	case AstPartialSpec:
		itc, err := ParseInnerTypeConstraints(pc, v, target)
		if err != nil {
			return nil, err
		}
		return itc, nil
	default:
		return nil, astErrorf(el.Loc, "unsupported constraint element syntax production")
	}
}

func parseValueRangeConstraint(pc *ParserContext, v AstValueRangeConstraint, target TaggedType) (SubtypeElement, error) {
	lower, err := parseRangeLowerBound(pc, v.Lower, target)
	if err != nil {
		return nil, err
	}
	upper, err := parseRangeUpperBound(pc, v.Upper, target)
	if err != nil {
		return nil, err
	}
	return ValueRangeConstraint{Lower: lower, Upper: upper}, nil
}

func parseRangeLowerBound(pc *ParserContext, el AstElement[AstRangeLowerBound], target TaggedType) (RangeLowerBound, error) {
	switch v := el.Element.(type) {
	case AstRangeLowerMin:
		return RangeLowerMin{}, nil
	case AstRangeLowerValue:
		val, err := ParseValue(pc, v.Value, target)
		if err != nil {
			return nil, err
		}
		return RangeLowerInclusive{Value: val}, nil
	case AstRangeLowerGtValue:
		val, err := ParseValue(pc, v.Value, target)
		if err != nil {
			return nil, err
		}
		return RangeLowerExclusive{Value: val}, nil
	default:
		return nil, astErrorf(el.Loc, "unsupported range lower bound syntax production")
	}
}

func parseRangeUpperBound(pc *ParserContext, el AstElement[AstRangeUpperBound], target TaggedType) (RangeUpperBound, error) {
	switch v := el.Element.(type) {
	case AstRangeUpperMax:
		return RangeUpperMax{}, nil
	case AstRangeUpperValue:
		val, err := ParseValue(pc, v.Value, target)
		if err != nil {
			return nil, err
		}
		return RangeUpperInclusive{Value: val}, nil
	case AstRangeUpperLtValue:
		val, err := ParseValue(pc, v.Value, target)
		if err != nil {
			return nil, err
		}
		return RangeUpperExclusive{Value: val}, nil
	default:
		return nil, astErrorf(el.Loc, "unsupported range upper bound syntax production")
	}
}

/*
sizeConstraintTarget is the implicit INTEGER type every SIZE(...) clause
constrains against, regardless of the type the SIZE clause decorates:
a length is always a non-negative INTEGER value (X.680 §51.6).
*/
func sizeConstraintTarget() TaggedType {
	return TaggedType{Type: SimpleType{UniversalTag: TagInteger}}
}

func parseSizeConstraint(pc *ParserContext, v AstSizeConstraint, cc ConstraintContext) (SubtypeElement, error) {
	if cc == ConstraintWithinSize {
		return nil, astErrorf(v.Size.Loc, errSizeInSize.Error())
	}
	nested, err := ParseConstraint(pc, v.Size, sizeConstraintTarget(), ConstraintWithinSize)
	if err != nil {
		return nil, err
	}
	return SizeConstraint{Size: *nested}, nil
}

func parseContentsConstraintElement(pc *ParserContext, loc Loc, v AstContentsConstraint, target TaggedType) (SubtypeElement, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}
	tagNum, ok := universalTagOf(under)
	if !ok || (tagNum != TagBitString && tagNum != TagOctetString) {
		return nil, astErrorf(loc, errContainingNotOnBitOct.Error())
	}

	mod, ok := pc.resolveModuleFor(v.Type.Element.Name)
	if !ok {
		mod = pc.Module
	}
	return ContentsConstraint{Ident: NewQualifiedIdentifier(mod, v.Type.Element.Name)}, nil
}

/*
ParseInnerTypeConstraints lowers a WITH COMPONENTS clause (full or
partial spec) against target, which must resolve to a [StructureType]
or a [ChoiceType] (errInnerTypeNotOnStruct otherwise); every named
component must exist on the resolved type (errUnknownComponent
otherwise), per X.680 §51.9.
*/
func ParseInnerTypeConstraints(pc *ParserContext, ast AstInnerTypeConstraints, target TaggedType) (InnerTypeConstraints, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return InnerTypeConstraints{}, err
	}

	lookup, err := componentTypeLookup(under)
	if err != nil {
		return InnerTypeConstraints{}, err
	}

	var astComponents []AstInnerTypeComponent
	kind := InnerTypeFull
	switch v := ast.(type) {
	case AstFullSpec:
		astComponents = v.Components
	case AstPartialSpec:
		astComponents = v.Components
		kind = InnerTypePartial
	default:
		return InnerTypeConstraints{}, astErrorf(Loc{}, "unsupported WITH COMPONENTS syntax production")
	}

	out := InnerTypeConstraints{Kind: kind, Components: make([]ComponentConstraint, 0, len(astComponents))}
	for _, c := range astComponents {
		compType, ok := lookup(c.Name.Element)
		if !ok {
			return InnerTypeConstraints{}, astErrorf(c.Name.Loc, errUnknownComponent.Error(), ": ", c.Name.Element)
		}
		cc, err := parseComponentConstraint(pc, c, compType)
		if err != nil {
			return InnerTypeConstraints{}, err
		}
		out.Components = append(out.Components, cc)
	}
	return out, nil
}

/*
componentTypeLookup returns a by-name lookup function over under's
components, the common shape [ParseInnerTypeConstraints] needs whether
under is a SEQUENCE/SET or a CHOICE.
*/
func componentTypeLookup(under UntaggedType) (func(string) (TaggedType, bool), error) {
	switch t := under.(type) {
	case StructureType:
		return func(name string) (TaggedType, bool) {
			c, ok := LookupStructureComponent(t.Components, name)
			return c.Type, ok
		}, nil
	case ChoiceType:
		return func(name string) (TaggedType, bool) {
			a, ok := LookupChoiceAlternative(t.Alternatives, name)
			return a.Type, ok
		}, nil
	default:
		return nil, astErrorf(Loc{}, errInnerTypeNotOnStruct.Error())
	}
}

func parseComponentConstraint(pc *ParserContext, c AstInnerTypeComponent, compType TaggedType) (ComponentConstraint, error) {
	switch v := c.Constraint.Element.(type) {
	case AstComponentConstraintValue:
		cons, err := ParseConstraint(pc, v.Constraint, compType, ConstraintContextless)
		if err != nil {
			return ComponentConstraint{}, err
		}
		return ComponentConstraint{Name: c.Name.Element, Constraint: cons}, nil
	case AstComponentConstraintPresence:
		pres, err := parsePresenceConstraint(v.Presence)
		if err != nil {
			return ComponentConstraint{}, err
		}
		return ComponentConstraint{Name: c.Name.Element, Presence: pres}, nil
	case AstComponentConstraintValuedPresence:
		cons, err := ParseConstraint(pc, v.Value, compType, ConstraintContextless)
		if err != nil {
			return ComponentConstraint{}, err
		}
		pres, err := parsePresenceConstraint(v.Presence)
		if err != nil {
			return ComponentConstraint{}, err
		}
		return ComponentConstraint{Name: c.Name.Element, Constraint: cons, Presence: pres}, nil
	default:
		return ComponentConstraint{}, astErrorf(c.Constraint.Loc, "unsupported component constraint syntax production")
	}
}

func parsePresenceConstraint(el AstElement[AstPresenceConstraint]) (PresenceConstraint, error) {
	switch el.Element.(type) {
	case AstPresencePresent:
		return PresencePresent, nil
	case AstPresenceAbsent:
		return PresenceAbsent, nil
	case AstPresenceOptional:
		return PresenceOptional, nil
	default:
		return PresenceDefault, astErrorf(el.Loc, "unsupported presence marker syntax production")
	}
}

/*
ParseTypeWithConstraint lowers a `SEQUENCE SIZE (...) OF Type`-style
[AstTypeWithConstraint], where the constraint sits between the OF
keyword and the component type rather than trailing the whole type, per
X.680 §49.6 (one of the two places a SEQUENCE OF's size constraint can
appear; the other is an ordinary trailing [AstSuffixedType], handled by
[ParseConstraint] like any other type).
*/
func ParseTypeWithConstraint(pc *ParserContext, ast AstTypeWithConstraint) (TaggedType, error) {
	compType, err := pc.TypeParser.ParseType(pc, ast.Of.ComponentType, TypeContextContextless)
	if err != nil {
		return TaggedType{}, err
	}

	tt := TaggedType{Type: StructureOfType{TagType: ast.Of.TagType, ComponentType: compType}}

	if ast.Of.Constraint == nil {
		return tt, nil
	}

	if ast.Of.Constraint.IsSize {
		nested, err := ParseConstraint(pc, *ast.Of.Constraint.SizeConstraint, sizeConstraintTarget(), ConstraintWithinSize)
		if err != nil {
			return TaggedType{}, err
		}
		tt.Constraint = &Constraint{Intersection: [][]SubtypeElement{{SizeConstraint{Size: *nested}}}}
		return tt, nil
	}

	cons, err := ParseConstraint(pc, *ast.Of.Constraint.Constraint, tt, ConstraintContextless)
	if err != nil {
		return TaggedType{}, err
	}
	tt.Constraint = cons
	return tt, nil
}

/*
ParseTypeAssignmentConstraint lowers a type assignment's own top-level
constraint (if any) into a [PendingConstraint] tree: the resolved
top-level [Constraint] itself, plus one nested entry per component named
by a WITH COMPONENTS clause found within it, so that
[ApplyPendingConstraint] can push each component's constraint onto the
already-registered child [TaggedType] once the full type shape is known.
Returns (nil, nil) if ast is nil.
*/
func ParseTypeAssignmentConstraint(pc *ParserContext, ast *AstElement[AstConstraint], target TaggedType) (*PendingConstraint, error) {
	if ast == nil {
		return nil, nil
	}
	top, err := ParseConstraint(pc, *ast, target, ConstraintContextless)
	if err != nil {
		return nil, err
	}
	return buildPendingConstraint(top), nil
}

func buildPendingConstraint(c *Constraint) *PendingConstraint {
	pend := &PendingConstraint{Constraint: c}
	for _, union := range c.Intersection {
		for _, elem := range union {
			itc, ok := elem.(InnerTypeConstraints)
			if !ok {
				continue
			}
			for _, comp := range itc.Components {
				if comp.Constraint == nil {
					continue
				}
				if pend.ComponentConstraints == nil {
					pend.ComponentConstraints = make(map[string]*PendingConstraint)
				}
				pend.ComponentConstraints[comp.Name] = buildPendingConstraint(comp.Constraint)
			}
		}
	}
	return pend
}

/*
ApplyPendingConstraint mutates dt in place: dt.Type.Constraint becomes
pend.Constraint, and every named entry in pend.ComponentConstraints is
pushed down onto the matching SEQUENCE/SET component or CHOICE
alternative's own Constraint field, recursively. Presence markers
(PRESENT/ABSENT/OPTIONAL) from a WITH COMPONENTS clause are validated by
[ParseInnerTypeConstraints] but intentionally do not alter a component's
structural Optional flag here: they constrain which VALUES of the type
are acceptable, not the type's own declared optionality (see DESIGN.md).
*/
func ApplyPendingConstraint(dt *DeclaredType, pend *PendingConstraint) error {
	if pend == nil {
		return nil
	}
	dt.Type.Constraint = pend.Constraint
	if len(pend.ComponentConstraints) == 0 {
		return nil
	}

	matched := 0
	switch t := dt.Type.Type.(type) {
	case StructureType:
		comps := make([]StructureComponent, len(t.Components))
		copy(comps, t.Components)
		for i, c := range comps {
			if sub, ok := pend.ComponentConstraints[c.Name]; ok {
				sdt := DeclaredType{Type: c.Type}
				if err := ApplyPendingConstraint(&sdt, sub); err != nil {
					return err
				}
				comps[i].Type = sdt.Type
				matched++
			}
		}
		dt.Type.Type = StructureType{TagType: t.TagType, Components: comps}
	case ChoiceType:
		alts := make([]ChoiceAlternative, len(t.Alternatives))
		copy(alts, t.Alternatives)
		for i, a := range alts {
			if sub, ok := pend.ComponentConstraints[a.Name]; ok {
				sdt := DeclaredType{Type: a.Type}
				if err := ApplyPendingConstraint(&sdt, sub); err != nil {
					return err
				}
				alts[i].Type = sdt.Type
				matched++
			}
		}
		dt.Type.Type = ChoiceType{Alternatives: alts}
	default:
		return astErrorf(Loc{}, errInnerTypeNotOnStruct.Error())
	}
	if matched != len(pend.ComponentConstraints) {
		panic("ApplyPendingConstraint: pending constraint names a component the type does not have")
	}
	return nil
}
