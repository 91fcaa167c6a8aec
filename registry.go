package asn1c

/*
registry.go implements the [Context] registry (§4.1 of the design),
grounded on the upstream compiler's own context.rs: an insertion-ordered
catalog of modules, declared types and declared values, plus a
(class,number)-keyed tag index for [Context.LookupTypeByTag].
*/

/*
DeclaredType is one type assignment registered in the [Context]:
its resolved shape plus the formal parameters it was declared with, if
it is a parameterized type (parameterization itself is outside this
module's scope; the slot exists so a future parser can populate it).
*/
type DeclaredType struct {
	Ident      QualifiedIdentifier
	Parameters []string
	Type       TaggedType
}

/*
DeclaredValue is one value assignment registered in the [Context]: its
lowered value plus the type it was declared against.
*/
type DeclaredValue struct {
	Ident QualifiedIdentifier
	Type  TaggedType
	Value Value
}

/*
tagKey is the (class,number) composite key used by the tag index.
*/
type tagKey struct {
	Class  Class
	Number uint16
}

/*
Context is the registry the semantic analyzer builds up one module
assignment at a time and the encoder later reads from. Registration
order is preserved so diagnostics and re-serialization of a module can
reproduce source order; a [Context] is safe to read concurrently once
[Context.Seal] has been called, but registration itself is not
concurrency-safe, mirroring the single-pass, single-goroutine compiler
loop described in §5.
*/
type Context struct {
	sealed bool

	moduleOrder []ModuleIdentifier
	modules     map[string]*ModuleHeader // keyed by ModuleIdentifier.Name

	typeOrder []QualifiedIdentifier
	types     map[QualifiedIdentifier]*DeclaredType

	valueOrder []QualifiedIdentifier
	values     map[QualifiedIdentifier]*DeclaredValue

	tagIndex map[tagKey]QualifiedIdentifier
}

/*
NewContext returns an empty, unsealed [Context] ready for registration.
*/
func NewContext() *Context {
	return &Context{
		modules:  make(map[string]*ModuleHeader),
		types:    make(map[QualifiedIdentifier]*DeclaredType),
		values:   make(map[QualifiedIdentifier]*DeclaredValue),
		tagIndex: make(map[tagKey]QualifiedIdentifier),
	}
}

/*
Seal validates Invariant 1 (§3: every [ReferenceValue] must resolve in
the registry) by walking every registered value, recursing into
SEQUENCE/SET/SEQUENCE OF/SET OF/CHOICE/CONTAINING sub-values, and then
freezes the registry against further registration. Every lookup method
remains valid after sealing; only the Register* methods and
[Context.LookupTypeMut] begin returning errSealed. The encoder is expected to operate exclusively on a sealed
[Context]. A dangling reference aborts sealing with errDanglingReference
and leaves the registry unsealed.
*/
func (c *Context) Seal() error {
	for _, dv := range c.ListValues() {
		if err := checkValueReferences(c, dv.Value); err != nil {
			return err
		}
	}
	c.sealed = true
	return nil
}

/*
checkValueReferences walks v looking for [ReferenceValue]s that fail to
resolve via [Context.LookupValue], recursing into every composite Value
shape that can carry one.
*/
func checkValueReferences(c *Context, v Value) error {
	switch val := v.(type) {
	case ReferenceValue:
		if _, ok := c.LookupValue(val.Ident); !ok {
			return &Error{Kind: AstErrorKind{Message: errDanglingReference.Error()}}
		}
	case StructureValue:
		for _, comp := range val.Components {
			if err := checkValueReferences(c, comp.Value); err != nil {
				return err
			}
		}
	case StructureOfValue:
		for _, el := range val.Elements {
			if err := checkValueReferences(c, el); err != nil {
				return err
			}
		}
	case ChoiceValue:
		return checkValueReferences(c, val.Value)
	case ContainingValue:
		return checkValueReferences(c, val.Inner)
	}
	return nil
}

/*
Sealed reports whether the registry has been sealed.
*/
func (c *Context) Sealed() bool { return c.sealed }

/*
RegisterModule adds a module header to the registry. Re-registering a
module with the same name replaces its header without disturbing
declaration order.
*/
func (c *Context) RegisterModule(h *ModuleHeader) error {
	if c.sealed {
		return &Error{Kind: AstErrorKind{Message: errSealed.Error()}}
	}
	if _, exists := c.modules[h.Ident.Name]; !exists {
		c.moduleOrder = append(c.moduleOrder, h.Ident)
	}
	c.modules[h.Ident.Name] = h
	return nil
}

/*
RegisterType declares a new type assignment, failing if ident is already
registered.
*/
func (c *Context) RegisterType(ident QualifiedIdentifier, dt DeclaredType) error {
	if c.sealed {
		return &Error{Kind: AstErrorKind{Message: errSealed.Error()}}
	}
	if _, exists := c.types[ident]; exists {
		return &Error{Kind: AstErrorKind{Message: errDuplicateName.Error()}}
	}
	c.types[ident] = &dt
	c.typeOrder = append(c.typeOrder, ident)
	if dt.Type.Tag != nil {
		c.tagIndex[tagKey{dt.Type.Tag.Class, dt.Type.Tag.Number}] = ident
	}
	return nil
}

/*
RegisterValue declares a new value assignment, failing if ident is
already registered.
*/
func (c *Context) RegisterValue(ident QualifiedIdentifier, dv DeclaredValue) error {
	if c.sealed {
		return &Error{Kind: AstErrorKind{Message: errSealed.Error()}}
	}
	if _, exists := c.values[ident]; exists {
		return &Error{Kind: AstErrorKind{Message: errDuplicateName.Error()}}
	}
	c.values[ident] = &dv
	c.valueOrder = append(c.valueOrder, ident)
	return nil
}

/*
ListModules returns every registered module header, in registration
order.
*/
func (c *Context) ListModules() []*ModuleHeader {
	out := make([]*ModuleHeader, 0, len(c.moduleOrder))
	for _, id := range c.moduleOrder {
		out = append(out, c.modules[id.Name])
	}
	return out
}

/*
ListTypes returns every registered type declaration, in registration
order.
*/
func (c *Context) ListTypes() []*DeclaredType {
	out := make([]*DeclaredType, 0, len(c.typeOrder))
	for _, id := range c.typeOrder {
		out = append(out, c.types[id])
	}
	return out
}

/*
ListValues returns every registered value declaration, in registration
order.
*/
func (c *Context) ListValues() []*DeclaredValue {
	out := make([]*DeclaredValue, 0, len(c.valueOrder))
	for _, id := range c.valueOrder {
		out = append(out, c.values[id])
	}
	return out
}

/*
LookupModule returns the header for the named module, if registered.
*/
func (c *Context) LookupModule(name string) (*ModuleHeader, bool) {
	h, ok := c.modules[name]
	return h, ok
}

/*
LookupType resolves ident to its declared type.
*/
func (c *Context) LookupType(ident QualifiedIdentifier) (*DeclaredType, bool) {
	dt, ok := c.types[ident]
	return dt, ok
}

/*
LookupTypeMut behaves like [Context.LookupType] but is named separately
to mark call sites where the caller intends to mutate the returned
pointer in place (constraint application during the second analysis
pass, per §4.3). It is an error to call this after [Context.Seal].
*/
func (c *Context) LookupTypeMut(ident QualifiedIdentifier) (*DeclaredType, error) {
	if c.sealed {
		return nil, &Error{Kind: AstErrorKind{Message: errSealed.Error()}}
	}
	dt, ok := c.types[ident]
	if !ok {
		return nil, &Error{Kind: AstErrorKind{Message: errDanglingReference.Error()}}
	}
	return dt, nil
}

/*
LookupValue resolves ident to its declared value.
*/
func (c *Context) LookupValue(ident QualifiedIdentifier) (*DeclaredValue, bool) {
	dv, ok := c.values[ident]
	return dv, ok
}

/*
LookupTypeByTag finds the type registered under the given class and tag
number, if any. Only types with an explicit top-level [Tag] are
indexed; untagged types are not reachable this way.
*/
func (c *Context) LookupTypeByTag(class Class, number uint16) (*DeclaredType, bool) {
	ident, ok := c.tagIndex[tagKey{class, number}]
	if !ok {
		return nil, false
	}
	return c.LookupType(ident)
}
