package asn1c

import "testing"

func TestNewQualifiedIdentifier(t *testing.T) {
	mod := ModuleIdentifier{Name: "Test-Module"}
	id := NewQualifiedIdentifier(mod, "Foo")
	if id.Module.Name != "Test-Module" || id.Name != "Foo" {
		t.Fatalf("got %+v", id)
	}
}

func TestModuleHeaderResolveSymbolLocal(t *testing.T) {
	h := ModuleHeader{Ident: ModuleIdentifier{Name: "Local"}}
	isLocal := func(ModuleIdentifier, string) bool { return true }
	mod, ok := h.ResolveSymbol("Foo", isLocal)
	if !ok || mod.Name != "Local" {
		t.Fatalf("expected local resolution, got %+v ok=%v", mod, ok)
	}
}

func TestModuleHeaderResolveSymbolImported(t *testing.T) {
	h := ModuleHeader{
		Ident:   ModuleIdentifier{Name: "Local"},
		Imports: []ImportedSymbol{{Name: "Bar", FromModule: "Other"}},
	}
	isLocal := func(ModuleIdentifier, string) bool { return false }
	mod, ok := h.ResolveSymbol("Bar", isLocal)
	if !ok || mod.Name != "Other" {
		t.Fatalf("expected import resolution to Other, got %+v ok=%v", mod, ok)
	}
	if _, ok := h.ResolveSymbol("Baz", isLocal); ok {
		t.Fatalf("expected unresolved symbol to fail")
	}
}

func TestModuleHeaderExports(t *testing.T) {
	all := ModuleHeader{ExportMode: ExportAll}
	if !all.Exports("Anything") {
		t.Fatalf("ExportAll should export everything")
	}

	none := ModuleHeader{ExportMode: ExportNone}
	if none.Exports("Anything") {
		t.Fatalf("ExportNone should export nothing")
	}

	some := ModuleHeader{ExportMode: ExportSymbols, ExportNames: []string{"Foo"}}
	if !some.Exports("Foo") {
		t.Fatalf("expected Foo to be exported")
	}
	if some.Exports("Bar") {
		t.Fatalf("expected Bar to not be exported")
	}
}
