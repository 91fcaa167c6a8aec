package asn1c

/*
analyzer_value.go implements value lowering (§4.2 of the design):
turning a parser-produced [AstValue] into a resolved [Value] against a
target [TaggedType], grounded on the upstream compiler's
compiler/ast/values.rs parse_value dispatch over its BuiltinValue enum.
*/

/*
resolveUntagged follows a chain of [TypeReference]s until it reaches a
concrete [BuiltinType], the way [der_encoder.go]'s resolvedTagOf does
for DER tag resolution. ParseValue needs the same chase to know what
shape an AstStructureValue/AstStructureOfValue/AstChoiceValue/string
literal is actually being lowered against.
*/
func resolveUntagged(ctx *Context, t UntaggedType) (UntaggedType, error) {
	ref, ok := t.(TypeReference)
	if !ok {
		return t, nil
	}
	dt, err := resolveTypeReference(ctx, ref)
	if err != nil {
		return nil, err
	}
	return resolveUntagged(ctx, dt.Type.Type)
}

/*
ParseValue lowers ast into a [Value] against target, dispatching over
every [AstBuiltinValue] production plus the bare [AstValueReference]
case (resolved either as an ENUMERATED item name or a cross-module
value reference left unresolved as [ReferenceValue]).
*/
func ParseValue(pc *ParserContext, ast AstElement[AstValue], target TaggedType) (Value, error) {
	switch v := ast.Element.(type) {
	case AstValueReference:
		return parseValueReference(pc, ast.Loc, v, target)
	case AstNullValue:
		return NullValue{}, nil
	case AstBooleanValue:
		return BooleanValue{Value: v.Value}, nil
	case AstIntegerValue:
		return parseIntegerValue(v), nil
	case AstDecimalValue:
		return parseDecimalValue(ast.Loc, v)
	case AstSpecialRealValue:
		return parseSpecialRealValue(v), nil
	case AstStringLiteral:
		return parseStringLiteralValue(pc, ast.Loc, v, target)
	case AstObjectIdentifierValue:
		return parseObjectIdentifierValue(pc, v, target)
	case AstStructureValue:
		return parseStructureValue(pc, ast.Loc, v, target)
	case AstStructureOfValue:
		return parseStructureOfValue(pc, ast.Loc, v, target)
	case AstChoiceValue:
		return parseChoiceValue(pc, ast.Loc, v, target)
	case AstContainingValue:
		return parseContainingValue(pc, ast.Loc, v, target)
	default:
		return nil, astErrorf(ast.Loc, "unsupported value syntax production")
	}
}

/*
parseValueReference resolves a bare identifier in value position: an
ENUMERATED item name if target resolves to an [EnumeratedType], else a
value assignment the caller's [Context] already registered, else a
dangling [ReferenceValue] left for the caller to resolve lazily.
*/
func parseValueReference(pc *ParserContext, loc Loc, v AstValueReference, target TaggedType) (Value, error) {
	if under, err := resolveUntagged(pc.Context, target.Type); err == nil {
		if et, ok := under.(EnumeratedType); ok {
			item, ok := LookupEnumerationItemByName(et.Items, v.Name)
			if !ok {
				return nil, astErrorf(loc, "ENUMERATED type has no item named ", v.Name)
			}
			return EnumeratedValue{Name: item.Name, Value: item.Value}, nil
		}
	}

	if mod, ok := pc.resolveModuleFor(v.Name); ok {
		ident := NewQualifiedIdentifier(mod, v.Name)
		if dv, ok := pc.Context.LookupValue(ident); ok {
			return dv.Value, nil
		}
		return ReferenceValue{Ident: ident}, nil
	}

	return ReferenceValue{Ident: NewQualifiedIdentifier(pc.Module, v.Name)}, nil
}

/*
resolveModuleFor asks the current module's header (if registered) which
module actually declares name, per [ModuleHeader.ResolveSymbol]. Absent a
registered header, every reference is treated as local.
*/
func (pc *ParserContext) resolveModuleFor(name string) (ModuleIdentifier, bool) {
	h, ok := pc.Context.LookupModule(pc.Module.Name)
	if !ok {
		return ModuleIdentifier{}, false
	}
	isLocal := func(m ModuleIdentifier, n string) bool {
		q := NewQualifiedIdentifier(m, n)
		if _, ok := pc.Context.LookupValue(q); ok {
			return true
		}
		_, ok := pc.Context.LookupType(q)
		return ok
	}
	return h.ResolveSymbol(name, isLocal)
}

func parseIntegerValue(v AstIntegerValue) Value {
	n := newBigInt(0).Set(v.Value)
	if v.Negative {
		n.Neg(n)
	}
	return IntegerValue{Value: bigToInteger(n)}
}

func parseSpecialRealValue(v AstSpecialRealValue) Value {
	switch v.Kind {
	case SpecialRealPlusInfinity:
		return RealValue{Value: NewRealPlusInfinity()}
	case SpecialRealMinusInfinity:
		return RealValue{Value: NewRealMinusInfinity()}
	default:
		return RealValue{Value: NewRealNotANumber()}
	}
}

/*
parseDecimalValue converts a decimal-notation REAL literal into the
exact base-2 mantissa/exponent pair DER's binary encoding requires
(X.690 §8.5.7). A decimal fraction only has an exact binary
representation when its reduced denominator is a power of two (e.g.
0.5, 0.25, 12.75); a value like 0.1 has no terminating binary
expansion and is rejected, since DER forbids the decimal (NR3) encoding
BER would otherwise fall back to.
*/
func parseDecimalValue(loc Loc, v AstDecimalValue) (Value, error) {
	ten := newBigInt(10)
	denom := newBigInt(1)
	for i := 0; i < v.FracLen; i++ {
		denom.Mul(denom, ten)
	}

	numer := newBigInt(0).Mul(v.Whole, denom)
	numer.Add(numer, v.Fraction)

	g := newBigInt(0).GCD(nil, nil, newBigInt(0).Abs(numer), denom)
	if g.Sign() != 0 {
		numer.Quo(numer, g)
		denom.Quo(denom, g)
	}

	exponent := 0
	two := newBigInt(2)
	rem := newBigInt(0)
	quo := newBigInt(0)
	for denom.Cmp(newBigInt(1)) != 0 {
		quo.QuoRem(denom, two, rem)
		if rem.Sign() != 0 {
			return nil, astErrorf(loc, "decimal REAL value has no exact binary representation")
		}
		denom.Set(quo)
		exponent--
	}

	if v.Negative {
		numer.Neg(numer)
	}

	return RealValue{Value: Real{Mantissa: bigToInteger(numer), Exponent: exponent}}, nil
}

func parseStringLiteralValue(pc *ParserContext, loc Loc, v AstStringLiteral, target TaggedType) (Value, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}

	tagNum, ok := universalTagOf(under)
	if !ok {
		return nil, astErrorf(loc, "string literal is not valid for this type")
	}

	switch tagNum {
	case TagBitString:
		return parseBitStringLiteral(loc, v)
	case TagOctetString:
		return parseOctetStringLiteral(loc, v)
	case TagNumericString, TagPrintableString, TagT61String, TagVideotexString,
		TagIA5String, TagVisibleString, TagUTF8String, TagGraphicString, TagGeneralString,
		TagUniversalString, TagBMPString, TagObjectDescriptor, TagCharacterString:
		if v.Kind != StringKindC {
			return nil, astErrorf(loc, "character string value must use cstring notation")
		}
		check := map[int]func(rune) bool{
			TagNumericString: isNumericChar, TagPrintableString: isPrintableChar,
			TagIA5String: isIA5Char, TagVisibleString: isVisibleChar,
			TagT61String: isT61Char, TagVideotexString: isVideotexChar,
			TagGraphicString: isGraphicOrObjectDescriptorChar, TagObjectDescriptor: isGraphicOrObjectDescriptorChar,
		}[tagNum]
		if check != nil {
			if err := validateRunes(v.Data, check); err != nil {
				return nil, astErrorf(loc, err)
			}
		}
		return CharacterStringValue{Kind: tagNum, Data: v.Data}, nil
	default:
		return nil, astErrorf(loc, "string literal is not valid for this type")
	}
}

func parseBitStringLiteral(loc Loc, v AstStringLiteral) (Value, error) {
	switch v.Kind {
	case StringKindB:
		bs, err := NewBitStringFromBstring([]byte(v.Data))
		if err != nil {
			return nil, astErrorf(loc, err)
		}
		return BitStringValue{Value: bs}, nil
	case StringKindH:
		bs, err := NewBitStringFromHstring([]byte(v.Data))
		if err != nil {
			return nil, astErrorf(loc, err)
		}
		return BitStringValue{Value: bs}, nil
	default:
		return nil, astErrorf(loc, "BIT STRING value must use bstring or hstring notation")
	}
}

func parseOctetStringLiteral(loc Loc, v AstStringLiteral) (Value, error) {
	switch v.Kind {
	case StringKindH:
		oct, err := NewOctetStringFromHstring([]byte(v.Data))
		if err != nil {
			return nil, astErrorf(loc, err)
		}
		return OctetStringValue{Value: []byte(oct)}, nil
	case StringKindB:
		bs, err := NewBitStringFromBstring([]byte(v.Data))
		if err != nil {
			return nil, astErrorf(loc, err)
		}
		return OctetStringValue{Value: bs.Bytes}, nil
	default:
		return nil, astErrorf(loc, "OCTET STRING value must use bstring or hstring notation")
	}
}

func parseObjectIdentifierValue(pc *ParserContext, v AstObjectIdentifierValue, target TaggedType) (Value, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}
	tagNum, ok := universalTagOf(under)
	if !ok || (tagNum != TagOID && tagNum != TagRelativeOID) {
		return nil, astErrorf(Loc{}, "OBJECT IDENTIFIER literal is not valid for this type")
	}

	kind := ObjectIDKindObjectIdentifier
	if tagNum == TagRelativeOID {
		kind = ObjectIDKindRelativeOID
	}

	arcs, err := pc.ObjectIDs.ParseObjectIdentifier(pc, v, kind)
	if err != nil {
		return nil, err
	}
	if kind == ObjectIDKindRelativeOID {
		return RelativeOIDValue{Value: RelativeOID(arcs)}, nil
	}
	return ObjectIdentifierValue{Value: ObjectIdentifier(arcs)}, nil
}

func parseStructureValue(pc *ParserContext, loc Loc, v AstStructureValue, target TaggedType) (Value, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}
	st, ok := under.(StructureType)
	if !ok {
		return nil, astErrorf(loc, "SEQUENCE/SET value is not valid for this type")
	}

	lower := func(el AstElement[AstValue], tt TaggedType) (Value, error) {
		return ParseValue(pc, el, tt)
	}
	return ReorderStructureValue(loc, v, st, lower)
}

func parseStructureOfValue(pc *ParserContext, loc Loc, v AstStructureOfValue, target TaggedType) (Value, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}
	sot, ok := under.(StructureOfType)
	if !ok {
		return nil, astErrorf(loc, "SEQUENCE OF/SET OF value is not valid for this type")
	}

	lower := func(el AstElement[AstValue], tt TaggedType) (Value, error) {
		return ParseValue(pc, el, tt)
	}
	return LowerStructureOfValue(v, sot.TagType, sot.ComponentType, lower)
}

func parseChoiceValue(pc *ParserContext, loc Loc, v AstChoiceValue, target TaggedType) (Value, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}
	ct, ok := under.(ChoiceType)
	if !ok {
		return nil, astErrorf(loc, "CHOICE value is not valid for this type")
	}
	alt, ok := LookupChoiceAlternative(ct.Alternatives, v.Alternative.Element)
	if !ok {
		return nil, astErrorf(v.Alternative.Loc, errUnknownAlternative.Error(), ": ", v.Alternative.Element)
	}
	inner, err := ParseValue(pc, v.Value, alt.Type)
	if err != nil {
		return nil, err
	}
	return ChoiceValue{Alternative: v.Alternative.Element, Value: inner}, nil
}

/*
parseContainingValue lowers a `CONTAINING value` literal. The enclosing
type must carry a [ContentsConstraint] (errNoContentsConstraint
otherwise; the first one found is used) naming the type the inner value
is lowered against, and must
itself be a BIT STRING or OCTET STRING (errContainingNotOnBitOct), per
X.680 §51.8.
*/
func parseContainingValue(pc *ParserContext, loc Loc, v AstContainingValue, target TaggedType) (Value, error) {
	under, err := resolveUntagged(pc.Context, target.Type)
	if err != nil {
		return nil, err
	}
	tagNum, ok := universalTagOf(under)
	if !ok || (tagNum != TagBitString && tagNum != TagOctetString) {
		return nil, astErrorf(loc, errContainingNotOnBitOct.Error())
	}

	ref, err := findContentsConstraint(target.Constraint)
	if err != nil {
		return nil, astErrorf(loc, err)
	}

	dt, err := resolveTypeReference(pc.Context, TypeReference{Ident: ref.Ident})
	if err != nil {
		return nil, err
	}
	inner, err := ParseValue(pc, v.Value, dt.Type)
	if err != nil {
		return nil, err
	}
	return ContainingValue{Inner: inner}, nil
}

func findContentsConstraint(c *Constraint) (ContentsConstraint, error) {
	if c == nil {
		return ContentsConstraint{}, errNoContentsConstraint
	}
	for _, union := range c.Intersection {
		for _, elem := range union {
			if cc, ok := elem.(ContentsConstraint); ok {
				return cc, nil
			}
		}
	}
	return ContentsConstraint{}, errNoContentsConstraint
}
