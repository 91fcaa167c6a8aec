package asn1c

import "testing"

func TestResolveEnumerationItemsImplied(t *testing.T) {
	ast := []AstEnumerationItem{
		{Name: NewAstElement("red", Loc{}), Value: AstEnumerationImplied{Value: 0}},
		{Name: NewAstElement("green", Loc{}), Value: AstEnumerationImplied{Value: 1}},
		{Name: NewAstElement("blue", Loc{}), Value: AstEnumerationImplied{Value: 2}},
	}
	resolve := func(AstElement[AstValue]) (Integer, error) { return Integer{}, nil }
	items, err := ResolveEnumerationItems(ast, resolve)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{0, 1, 2}
	for i, it := range items {
		if it.Value.Native() != want[i] {
			t.Fatalf("item %d = %d, want %d", i, it.Value.Native(), want[i])
		}
	}
}

func TestResolveEnumerationItemsMixed(t *testing.T) {
	ast := []AstEnumerationItem{
		{Name: NewAstElement("a", Loc{}), Value: AstEnumerationSpecified{}},
		{Name: NewAstElement("b", Loc{}), Value: AstEnumerationImplied{}},
	}
	resolve := func(AstElement[AstValue]) (Integer, error) { return MustNewInteger(5), nil }
	items, err := ResolveEnumerationItems(ast, resolve)
	if err != nil {
		t.Fatal(err)
	}
	if items[0].Value.Native() != 5 {
		t.Fatalf("item 0 = %d, want 5", items[0].Value.Native())
	}
	if items[1].Value.Native() != 6 {
		t.Fatalf("item 1 = %d, want 6 (5+1)", items[1].Value.Native())
	}
}

func TestLookupEnumerationItemByName(t *testing.T) {
	items := []EnumerationItem{{Name: "a", Value: MustNewInteger(0)}}
	if _, ok := LookupEnumerationItemByName(items, "a"); !ok {
		t.Fatal("expected to find item a")
	}
	if _, ok := LookupEnumerationItemByName(items, "z"); ok {
		t.Fatal("expected not to find item z")
	}
}
