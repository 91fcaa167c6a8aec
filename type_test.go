package asn1c

import "testing"

func TestUniversalTagOfSimpleType(t *testing.T) {
	tag, ok := universalTagOf(SimpleType{UniversalTag: TagOctetString})
	if !ok || tag != TagOctetString {
		t.Fatalf("expected TagOctetString, got %d ok=%v", tag, ok)
	}
}

func TestUniversalTagOfUnnamedIntegerIsSimpleType(t *testing.T) {
	// INTEGER without a named-number list is represented as SimpleType,
	// not IntegerType (see IntegerType's doc comment).
	tag, ok := universalTagOf(SimpleType{UniversalTag: TagInteger})
	if !ok || tag != TagInteger {
		t.Fatalf("expected TagInteger, got %d ok=%v", tag, ok)
	}
}

func TestUniversalTagOfNamedIntegerType(t *testing.T) {
	tag, ok := universalTagOf(IntegerType{NamedValues: []NamedNumber{{Name: "red", Value: bigToInteger(newBigInt(0))}}})
	if !ok || tag != TagInteger {
		t.Fatalf("expected TagInteger, got %d ok=%v", tag, ok)
	}
}

func TestUniversalTagOfBitStringType(t *testing.T) {
	tag, ok := universalTagOf(BitStringType{NamedBits: []NamedBit{{Name: "a", Value: 0}}})
	if !ok || tag != TagBitString {
		t.Fatalf("expected TagBitString, got %d ok=%v", tag, ok)
	}
}

func TestUniversalTagOfStructureType(t *testing.T) {
	tag, ok := universalTagOf(StructureType{TagType: TagSet})
	if !ok || tag != TagSet {
		t.Fatalf("expected TagSet, got %d ok=%v", tag, ok)
	}
}

func TestUniversalTagOfChoiceHasNoTag(t *testing.T) {
	_, ok := universalTagOf(ChoiceType{})
	if ok {
		t.Fatalf("expected CHOICE to have no universal tag of its own")
	}
}

func TestUniversalTagOfEnumeratedType(t *testing.T) {
	tag, ok := universalTagOf(EnumeratedType{})
	if !ok || tag != TagEnumerated {
		t.Fatalf("expected TagEnumerated, got %d ok=%v", tag, ok)
	}
}

func TestUniversalTagOfTypeReferenceIsUnresolved(t *testing.T) {
	_, ok := universalTagOf(TypeReference{Ident: NewQualifiedIdentifier(ModuleIdentifier{Name: "M"}, "Foo")})
	if ok {
		t.Fatalf("expected an unresolved TypeReference to have no universal tag")
	}
}

func TestTaggedTypeZeroValueHasNilTagAndConstraint(t *testing.T) {
	tt := TaggedType{Type: SimpleType{UniversalTag: TagBoolean}}
	if tt.Tag != nil {
		t.Fatalf("expected nil Tag, got %+v", tt.Tag)
	}
	if tt.Constraint != nil {
		t.Fatalf("expected nil Constraint, got %+v", tt.Constraint)
	}
}
