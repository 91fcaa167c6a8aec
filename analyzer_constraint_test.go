package asn1c

import "testing"

func intTarget() TaggedType { return TaggedType{Type: SimpleType{UniversalTag: TagInteger}} }

func singleValueElement(n int64) AstElement[AstSubtypeElement] {
	return NewAstElement[AstSubtypeElement](AstSingleValueConstraint{
		Value: NewAstElement[AstValue](AstIntegerValue{Value: newBigInt(n)}, Loc{}),
	}, Loc{})
}

func astConstraintOf(unions ...[]AstElement[AstSubtypeElement]) AstElement[AstConstraint] {
	sets := make([]AstElement[AstSubtypeElementSet], len(unions))
	for i, u := range unions {
		sets[i] = NewAstElement(AstSubtypeElementSet{Elements: u}, Loc{})
	}
	return NewAstElement(AstConstraint{ElementSets: sets}, Loc{})
}

func TestParseConstraintSingleValue(t *testing.T) {
	pc, _ := testParserContext()
	ast := astConstraintOf([]AstElement[AstSubtypeElement]{singleValueElement(5)})
	c, err := ParseConstraint(pc, ast, intTarget(), ConstraintContextless)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Intersection) != 1 || len(c.Intersection[0]) != 1 {
		t.Fatalf("unexpected shape: %+v", c)
	}
	sv, ok := c.Intersection[0][0].(SingleValueConstraint)
	if !ok {
		t.Fatalf("expected SingleValueConstraint, got %T", c.Intersection[0][0])
	}
	if sv.Value.(IntegerValue).Value.Big().Int64() != 5 {
		t.Fatalf("expected value 5, got %v", sv.Value)
	}
}

func TestParseConstraintValueRange(t *testing.T) {
	pc, _ := testParserContext()
	el := NewAstElement[AstSubtypeElement](AstValueRangeConstraint{
		Lower: NewAstElement[AstRangeLowerBound](AstRangeLowerValue{Value: NewAstElement[AstValue](AstIntegerValue{Value: newBigInt(1)}, Loc{})}, Loc{}),
		Upper: NewAstElement[AstRangeUpperBound](AstRangeUpperMax{}, Loc{}),
	}, Loc{})
	ast := astConstraintOf([]AstElement[AstSubtypeElement]{el})
	c, err := ParseConstraint(pc, ast, intTarget(), ConstraintContextless)
	if err != nil {
		t.Fatal(err)
	}
	vr, ok := c.Intersection[0][0].(ValueRangeConstraint)
	if !ok {
		t.Fatalf("expected ValueRangeConstraint, got %T", c.Intersection[0][0])
	}
	lo, ok := vr.Lower.(RangeLowerInclusive)
	if !ok || lo.Value.(IntegerValue).Value.Big().Int64() != 1 {
		t.Fatalf("unexpected lower bound %+v", vr.Lower)
	}
	if _, ok := vr.Upper.(RangeUpperMax); !ok {
		t.Fatalf("expected RangeUpperMax, got %T", vr.Upper)
	}
}

func TestParseConstraintSizeRejectsNestedSize(t *testing.T) {
	pc, _ := testParserContext()
	inner := NewAstElement[AstSubtypeElement](AstSizeConstraint{Size: astConstraintOf([]AstElement[AstSubtypeElement]{singleValueElement(1)})}, Loc{})
	outer := NewAstElement[AstSubtypeElement](AstSizeConstraint{Size: astConstraintOf([]AstElement[AstSubtypeElement]{inner})}, Loc{})
	ast := astConstraintOf([]AstElement[AstSubtypeElement]{outer})
	if _, err := ParseConstraint(pc, ast, TaggedType{Type: SimpleType{UniversalTag: TagOctetString}}, ConstraintContextless); err == nil {
		t.Fatalf("expected errSizeInSize for nested SIZE constraint")
	}
}

func TestParseInnerTypeConstraintsOnStructure(t *testing.T) {
	pc, _ := testParserContext()
	target := TaggedType{Type: StructureType{
		TagType: TagSequence,
		Components: []StructureComponent{
			{Name: "a", Type: intTarget()},
			{Name: "b", Type: TaggedType{Type: SimpleType{UniversalTag: TagBoolean}}, Optional: true},
		},
	}}
	astInner := AstFullSpec{Components: []AstInnerTypeComponent{
		{
			Name: NewAstElement("a", Loc{}),
			Constraint: NewAstElement[AstComponentConstraint](AstComponentConstraintValue{
				Constraint: astConstraintOf([]AstElement[AstSubtypeElement]{singleValueElement(3)}),
			}, Loc{}),
		},
		{
			Name: NewAstElement("b", Loc{}),
			Constraint: NewAstElement[AstComponentConstraint](AstComponentConstraintPresence{
				Presence: NewAstElement[AstPresenceConstraint](AstPresenceAbsent{}, Loc{}),
			}, Loc{}),
		},
	}}
	itc, err := ParseInnerTypeConstraints(pc, astInner, target)
	if err != nil {
		t.Fatal(err)
	}
	if itc.Kind != InnerTypeFull || len(itc.Components) != 2 {
		t.Fatalf("unexpected result: %+v", itc)
	}
	if itc.Components[0].Name != "a" || itc.Components[0].Constraint == nil {
		t.Fatalf("expected component a with a value constraint, got %+v", itc.Components[0])
	}
	if itc.Components[1].Name != "b" || itc.Components[1].Presence != PresenceAbsent {
		t.Fatalf("expected component b marked absent, got %+v", itc.Components[1])
	}
}

func TestParseInnerTypeConstraintsUnknownComponent(t *testing.T) {
	pc, _ := testParserContext()
	target := TaggedType{Type: StructureType{TagType: TagSequence, Components: []StructureComponent{{Name: "a", Type: intTarget()}}}}
	astInner := AstFullSpec{Components: []AstInnerTypeComponent{
		{Name: NewAstElement("nope", Loc{}), Constraint: NewAstElement[AstComponentConstraint](AstComponentConstraintPresence{
			Presence: NewAstElement[AstPresenceConstraint](AstPresencePresent{}, Loc{}),
		}, Loc{})},
	}}
	if _, err := ParseInnerTypeConstraints(pc, astInner, target); err == nil {
		t.Fatalf("expected errUnknownComponent")
	}
}

func TestApplyPendingConstraintPushesComponentConstraints(t *testing.T) {
	pc, _ := testParserContext()
	target := TaggedType{Type: StructureType{
		TagType: TagSequence,
		Components: []StructureComponent{
			{Name: "a", Type: intTarget()},
			{Name: "b", Type: TaggedType{Type: SimpleType{UniversalTag: TagBoolean}}},
		},
	}}
	astInner := AstFullSpec{Components: []AstInnerTypeComponent{
		{
			Name: NewAstElement("a", Loc{}),
			Constraint: NewAstElement[AstComponentConstraint](AstComponentConstraintValue{
				Constraint: astConstraintOf([]AstElement[AstSubtypeElement]{singleValueElement(9)}),
			}, Loc{}),
		},
	}}
	topAst := astConstraintOf([]AstElement[AstSubtypeElement]{
		NewAstElement[AstSubtypeElement](astInner, Loc{}),
	})
	pend, err := ParseTypeAssignmentConstraint(pc, &topAst, target)
	if err != nil {
		t.Fatal(err)
	}
	if pend == nil || pend.ComponentConstraints["a"] == nil {
		t.Fatalf("expected pending constraint with component a, got %+v", pend)
	}

	dt := &DeclaredType{Ident: NewQualifiedIdentifier(pc.Module, "Foo"), Type: target}
	if err := ApplyPendingConstraint(dt, pend); err != nil {
		t.Fatal(err)
	}
	st, ok := dt.Type.Type.(StructureType)
	if !ok {
		t.Fatalf("expected StructureType, got %T", dt.Type.Type)
	}
	comp, ok := LookupStructureComponent(st.Components, "a")
	if !ok || comp.Type.Constraint == nil {
		t.Fatalf("expected component a to carry a pushed-down constraint, got %+v", comp)
	}
	if dt.Type.Constraint == nil {
		t.Fatalf("expected top-level Constraint to be set on dt.Type")
	}
}

func TestParseTypeAssignmentConstraintNilAst(t *testing.T) {
	pc, _ := testParserContext()
	pend, err := ParseTypeAssignmentConstraint(pc, nil, intTarget())
	if err != nil {
		t.Fatal(err)
	}
	if pend != nil {
		t.Fatalf("expected nil PendingConstraint for nil ast, got %+v", pend)
	}
}
