package dotpath

import (
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/samber/lo"
	"go.trai.ch/zerr"
)

// Module is a named table of members, the unit an [Importer] hands out.
//
// Names are dotted ("encoding.json"); a module named "a.b" is a sub-module
// of "a" as far as [Resolver.Lookup] is concerned, whether or not "a" itself
// lists it as a member.
type Module struct {
	name    string
	members map[string]any
}

// NewModule creates a Module. The member map is copied.
func NewModule(name string, members map[string]any) *Module {
	return &Module{name: name, members: maps.Clone(members)}
}

// Name returns the full dotted module name.
func (m *Module) Name() string { return m.name }

// Member returns the member registered under name together with a presence
// flag, so that nil members are distinguishable from missing ones.
func (m *Module) Member(name string) (any, bool) {
	v, ok := m.members[name]
	return v, ok
}

// Members returns the member names in sorted order.
func (m *Module) Members() []string {
	names := lo.Keys(m.members)
	slices.Sort(names)
	return names
}

// Attr implements [Attributer].
func (m *Module) Attr(name string) (any, bool) { return m.Member(name) }

// Importer resolves a module name to a module. It is the stand-in for a host
// import system. Implementations return an error wrapping
// [ErrModuleNotFound] for unknown names.
type Importer interface {
	Import(name string) (*Module, error)
}

// owner identifies where a function or type was registered.
type owner struct {
	module string
	member string
}

// Registry is the default, goroutine-safe [Importer]. The zero value is an
// empty registry ready to use.
//
// Besides the name index it maintains a reverse index from function code
// pointers and named types to the module member that exposes them, which
// [PathOf] uses to produce paths that [Resolver.Lookup] can resolve again.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*Module
	funcs   map[uintptr]owner
	types   map[reflect.Type]owner
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]*Module),
		funcs:   make(map[uintptr]owner),
		types:   make(map[reflect.Type]owner),
	}
}

// Register adds m to the registry. Registering the same *Module twice is a
// no-op; registering a different module under an existing name returns
// [ErrDuplicateModule].
func (r *Registry) Register(m *Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.modules == nil {
		r.modules = make(map[string]*Module)
		r.funcs = make(map[uintptr]owner)
		r.types = make(map[reflect.Type]owner)
	}
	if existing, ok := r.modules[m.name]; ok {
		if existing == m {
			return nil
		}
		return zerr.With(zerr.Wrap(ErrDuplicateModule, "register"), "module", m.name)
	}
	r.modules[m.name] = m

	for _, name := range m.Members() {
		o := owner{module: m.name, member: name}
		switch v := m.members[name].(type) {
		case reflect.Type:
			if _, taken := r.types[v]; !taken {
				r.types[v] = o
			}
		default:
			rv := reflect.ValueOf(v)
			if rv.Kind() != reflect.Func || rv.IsNil() {
				continue
			}
			if _, taken := r.funcs[rv.Pointer()]; !taken {
				r.funcs[rv.Pointer()] = o
			}
		}
	}
	return nil
}

// MustRegister is like [Registry.Register] but panics on error. Intended for
// package init functions.
func (r *Registry) MustRegister(modules ...*Module) {
	for _, m := range modules {
		if err := r.Register(m); err != nil {
			panic(err)
		}
	}
}

// Unregister removes the module registered under name, along with its
// entries in the reverse index.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.modules[name]; !ok {
		return
	}
	delete(r.modules, name)
	maps.DeleteFunc(r.funcs, func(_ uintptr, o owner) bool { return o.module == name })
	maps.DeleteFunc(r.types, func(_ reflect.Type, o owner) bool { return o.module == name })
}

// Import implements [Importer].
func (r *Registry) Import(name string) (*Module, error) {
	r.mu.RLock()
	m, ok := r.modules[name]
	r.mu.RUnlock()
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrModuleNotFound, "import"), "module", name)
	}
	return m, nil
}

// Modules returns the registered module names in sorted order.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.modules)
	slices.Sort(names)
	return names
}

// Owner returns the module and member name under which element was first
// registered. Only functions and reflect.Type values are indexed.
func (r *Registry) Owner(element any) (module, member string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var o owner
	switch v := element.(type) {
	case reflect.Type:
		o, ok = r.types[v]
	default:
		rv := reflect.ValueOf(element)
		if rv.Kind() != reflect.Func || rv.IsNil() {
			return "", "", false
		}
		o, ok = r.funcs[rv.Pointer()]
	}
	return o.module, o.member, ok
}

// exposes reports the name of a module that holds element under name.
func (r *Registry) exposes(name string, element any) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, modName := range slices.Sorted(maps.Keys(r.modules)) {
		v, ok := r.modules[modName].members[name]
		if ok && sameValue(v, element) {
			return modName, true
		}
	}
	return "", false
}

func sameValue(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil {
		return ta == tb
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return va.Pointer() == vb.Pointer()
	}
	// Interface fields may hold uncomparable values even when the static
	// type is comparable.
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return false
}
