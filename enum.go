package asn1c

/*
enum.go implements the ASN.1 ENUMERATED type domain (§3, §4.2 of the
design), grounded on the teacher library's enum.go naming idiom and the
upstream compiler's types/simple.rs EnumerationItemValue (Implied vs
Specified).
*/

/*
ResolveEnumerationItems assigns concrete numbers to every item of an
ENUMERATED type's declaration list: an item with no explicit value
(Implied) takes the value one greater than the previous item's resolved
value, starting at 0 for the first item, exactly as X.680 §20.5
requires. An item with an explicit value (Specified) keeps it verbatim.
*/
func ResolveEnumerationItems(ast []AstEnumerationItem, resolve func(AstElement[AstValue]) (Integer, error)) ([]EnumerationItem, error) {
	out := make([]EnumerationItem, 0, len(ast))
	next := int64(0)
	for _, item := range ast {
		var val Integer
		switch v := item.Value.(type) {
		case AstEnumerationImplied:
			val = MustNewInteger(next)
		case AstEnumerationSpecified:
			resolved, err := resolve(v.Value)
			if err != nil {
				return nil, err
			}
			val = resolved
		default:
			return nil, astErrorf(item.Name.Loc, "ENUMERATED item carries neither an implied nor specified value")
		}
		out = append(out, EnumerationItem{Name: item.Name.Element, Value: val})
		next = val.Native() + 1
	}
	return out, nil
}

/*
LookupEnumerationItemByName finds the item named name in items.
*/
func LookupEnumerationItemByName(items []EnumerationItem, name string) (EnumerationItem, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return EnumerationItem{}, false
}

/*
derEncodeEnumerated appends v's DER content octets to buf; ENUMERATED
shares INTEGER's two's-complement encoding, per X.690 §8.4.
*/
func derEncodeEnumerated(buf *[]byte, v EnumeratedValue) { derEncodeInteger(buf, v.Value) }
