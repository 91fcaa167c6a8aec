package asn1c

/*
structure.go implements the ASN.1 SEQUENCE/SET and SEQUENCE OF/SET OF
type and value domains (§3, §4.2, §4.7 of the design), consolidating
the teacher library's former seq.go/set.go pair into one file since DER
treats the two constructed types identically save for their tag number
and SET's canonical component-ordering rule (X.690 §11.6). Neither the
analyzer nor the encoder applies that rule: SET components are encoded
in declared order and SET OF elements in the order they were given.

Grounded on the upstream compiler's types/structured.rs Structure /
StructureOf shapes and compiler/ast/values.rs parse_structure_value's
two-phase reject-then-fill algorithm.
*/

/*
LookupStructureComponent finds the component named name among comps.
*/
func LookupStructureComponent(comps []StructureComponent, name string) (StructureComponent, bool) {
	for _, c := range comps {
		if c.Name == name {
			return c, true
		}
	}
	return StructureComponent{}, false
}

/*
ReorderStructureValue reorders a source-order AstStructureValue's
components to match the target type's declared component order,
filling in default values for omitted DEFAULT components and
failing on an unknown component name or a missing required component,
exactly as the upstream compiler's parse_structure_value two-phase
algorithm does:

 1. every named component in the literal must exist on the target type
    (errUnknownComponent otherwise);
 2. every declared component of the target type is then filled, in
    declared order, from the literal if present, from DefaultValue if
    absent-but-defaulted, left absent if optional, or reported via
    errMissingComponent otherwise.

lower lowers one AST value against its resolved component type.
*/
func ReorderStructureValue(
	loc Loc,
	ast AstStructureValue,
	target StructureType,
	lower func(AstElement[AstValue], TaggedType) (Value, error),
) (StructureValue, error) {
	bySource := make(map[string]AstElement[AstValue], len(ast.Components))
	for _, c := range ast.Components {
		if _, ok := LookupStructureComponent(target.Components, c.Name.Element); !ok {
			return StructureValue{}, astErrorf(c.Name.Loc, errUnknownComponent.Error(), ": ", c.Name.Element)
		}
		bySource[c.Name.Element] = c.Value
	}

	out := StructureValue{TagType: target.TagType, Components: make([]StructureValueComponent, 0, len(target.Components))}
	for _, comp := range target.Components {
		astVal, present := bySource[comp.Name]
		switch {
		case present:
			v, err := lower(astVal, comp.Type)
			if err != nil {
				return StructureValue{}, err
			}
			out.Components = append(out.Components, StructureValueComponent{Name: comp.Name, Value: v})
		case comp.DefaultValue != nil:
			out.Components = append(out.Components, StructureValueComponent{Name: comp.Name, Value: *comp.DefaultValue, IsDefault: true})
		case comp.Optional:
			// absent and optional: omitted from the resolved value entirely.
		default:
			return StructureValue{}, astErrorf(loc, errMissingComponent.Error(), ": ", comp.Name)
		}
	}
	return out, nil
}

/*
LowerStructureOfValue lowers every element of an AstStructureOfValue
against the component type shared by every element of a SEQUENCE
OF/SET OF value.
*/
func LowerStructureOfValue(
	ast AstStructureOfValue,
	tagType int,
	componentType TaggedType,
	lower func(AstElement[AstValue], TaggedType) (Value, error),
) (StructureOfValue, error) {
	out := StructureOfValue{TagType: tagType, Elements: make([]Value, 0, len(ast.Elements))}
	for _, el := range ast.Elements {
		v, err := lower(el, componentType)
		if err != nil {
			return StructureOfValue{}, err
		}
		out.Elements = append(out.Elements, v)
	}
	return out, nil
}
