package proxy

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/samber/lo"
	"go.trai.ch/zerr"

	"github.com/hasbyte1/go-reflect-utils/dotpath"
)

// member is one entry of a proxy's member table.
type member struct {
	// static is called when the proxy is unbound: a content function, or a
	// method expression taking the receiver first. It is invalid for
	// methods of interface bases.
	static reflect.Value
	// sig is the signature callers see, without any receiver.
	sig reflect.Type
	// base is the type that contributed the member; nil for content.
	base reflect.Type
}

// Proxy forwards member calls to a target value. Its member set is fixed at
// construction from content functions and the method sets of base types;
// the target provides the behaviour of every member it has.
//
// A Proxy is immutable and safe for concurrent use; whether calls are safe
// depends on the target.
type Proxy struct {
	target  any
	bases   []reflect.Type
	members map[string]member
	names   []string
	logger  *slog.Logger
}

// reserved holds the names of the methods of *Proxy. Content and bases
// never override them.
var reserved = func() map[string]struct{} {
	t := reflect.TypeFor[*Proxy]()
	names := make(map[string]struct{}, t.NumMethod())
	for i := range t.NumMethod() {
		names[t.Method(i).Name] = struct{}{}
	}
	return names
}()

type options struct {
	bases    []any
	content  map[string]any
	resolver *dotpath.Resolver
	logger   *slog.Logger
}

// Option configures [New].
type Option func(*options)

// WithBases adds base types. A base is a reflect.Type or a dotted path
// resolved through the proxy's resolver to a reflect.Type.
func WithBases(bases ...any) Option {
	return func(o *options) { o.bases = append(o.bases, bases...) }
}

// WithContent adds members implemented by the given functions. Content
// takes precedence over base methods of the same name.
func WithContent(content map[string]any) Option {
	return func(o *options) {
		if o.content == nil {
			o.content = make(map[string]any, len(content))
		}
		maps.Copy(o.content, content)
	}
}

// WithResolver sets the resolver for string bases. Defaults to
// [dotpath.Default].
func WithResolver(r *dotpath.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithLogger sets the logger for construction diagnostics. Defaults to a
// logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New returns a proxy of target.
//
// Members come from content first, then from each base in order, the
// first definition of a name winning. Without bases or content the method
// set of target itself is used. Names of methods defined on *Proxy are
// skipped. A nil target gives an unbound proxy whose calls go to the
// static implementations.
func New(target any, opts ...Option) (*Proxy, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.resolver == nil {
		o.resolver = dotpath.Default()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	bases, err := resolveBases(o.resolver, o.bases)
	if err != nil {
		return nil, err
	}

	p := &Proxy{
		target:  target,
		bases:   bases,
		members: make(map[string]member),
		logger:  o.logger,
	}

	for _, name := range slices.Sorted(maps.Keys(o.content)) {
		fn := reflect.ValueOf(o.content[name])
		if fn.Kind() != reflect.Func || fn.IsNil() {
			return nil, zerr.With(zerr.Wrap(ErrInvalidContent, "add content"), "member", name)
		}
		p.add(name, member{static: fn, sig: fn.Type()})
	}

	if len(bases) == 0 && len(o.content) == 0 && target != nil {
		t := reflect.TypeOf(target)
		p.addMethods(t, t)
	}
	for _, base := range bases {
		p.addMethods(methodSet(base), base)
	}

	p.names = slices.Sorted(maps.Keys(p.members))
	p.logger.Debug("proxy: created",
		slog.String("target", typeName(target)),
		slog.Int("members", len(p.names)),
		slog.Int("bases", len(bases)))
	return p, nil
}

func resolveBases(r *dotpath.Resolver, raw []any) ([]reflect.Type, error) {
	bases := make([]reflect.Type, 0, len(raw))
	for _, b := range raw {
		if path, ok := b.(string); ok {
			v, err := r.Lookup(path)
			if err != nil {
				return nil, err
			}
			b = v
		}
		t, ok := b.(reflect.Type)
		if !ok || t == nil {
			return nil, invalidBase(b)
		}
		bases = append(bases, t)
	}
	return lo.Uniq(bases), nil
}

// methodSet returns the type whose methods a base contributes: the pointer
// method set for non-pointer concrete types.
func methodSet(base reflect.Type) reflect.Type {
	if base.Kind() == reflect.Pointer || base.Kind() == reflect.Interface {
		return base
	}
	return reflect.PointerTo(base)
}

// addMethods adds the exported methods of set as members contributed by
// base.
func (p *Proxy) addMethods(set, base reflect.Type) {
	for i := range set.NumMethod() {
		m := set.Method(i)
		if set.Kind() == reflect.Interface {
			p.add(m.Name, member{sig: m.Type, base: base})
			continue
		}
		p.add(m.Name, member{static: m.Func, sig: withoutReceiver(m.Type), base: base})
	}
}

func (p *Proxy) add(name string, m member) {
	if _, ok := reserved[name]; ok {
		p.logger.Debug("proxy: member skipped", slog.String("member", name), slog.String("reason", "reserved"))
		return
	}
	if _, ok := p.members[name]; ok {
		p.logger.Debug("proxy: member skipped", slog.String("member", name), slog.String("reason", "defined"))
		return
	}
	p.members[name] = m
}

func withoutReceiver(t reflect.Type) reflect.Type {
	in := make([]reflect.Type, 0, t.NumIn()-1)
	for i := 1; i < t.NumIn(); i++ {
		in = append(in, t.In(i))
	}
	out := make([]reflect.Type, 0, t.NumOut())
	for i := range t.NumOut() {
		out = append(out, t.Out(i))
	}
	return reflect.FuncOf(in, out, t.IsVariadic())
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// Call calls the member name with args and returns its results.
//
// A bound proxy calls the member of the same name on its target and
// returns the results unchanged: the target's method when it has one,
// otherwise the function found by [dotpath.Attr]. An unbound proxy calls the static
// implementation, passing the receiver as the first argument for base
// methods.
func (p *Proxy) Call(name string, args ...any) ([]any, error) {
	fn, err := p.routine(name)
	if err != nil {
		return nil, err
	}
	in, err := callArgs(name, fn.Type(), args)
	if err != nil {
		return nil, err
	}
	return lo.Map(fn.Call(in), func(v reflect.Value, _ int) any { return v.Interface() }), nil
}

// Invoke calls the member name and returns its first result. When the
// member's last result is a non-nil error, that error is returned as is.
func (p *Proxy) Invoke(name string, args ...any) (any, error) {
	results, err := p.Call(name, args...)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	if last, ok := results[len(results)-1].(error); ok && last != nil {
		return nil, last
	}
	return results[0], nil
}

// routine returns the function a call to name goes to.
func (p *Proxy) routine(name string) (reflect.Value, error) {
	m, ok := p.members[name]
	if !ok {
		return reflect.Value{}, noMember(name)
	}
	if p.target == nil {
		if !m.static.IsValid() {
			return reflect.Value{}, zerr.With(zerr.Wrap(ErrUnbound, "call member"), "member", name)
		}
		return m.static, nil
	}
	if fn := reflect.ValueOf(p.target).MethodByName(name); fn.IsValid() {
		return fn, nil
	}
	v, ok := dotpath.Attr(p.target, name)
	fn := reflect.ValueOf(v)
	if !ok || fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, zerr.With(noMember(name), "target", typeName(p.target))
	}
	return fn, nil
}

func callArgs(name string, ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, badArguments(name, ft)
		}
	} else if len(args) != n {
		return nil, badArguments(name, ft)
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if arg == nil {
			if !nillable(pt) {
				return nil, badArguments(name, ft)
			}
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, badArguments(name, ft)
		}
		in[i] = av
	}
	return in, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// Rebind returns a proxy with the same members bound to target.
func (p *Proxy) Rebind(target any) *Proxy {
	cp := *p
	cp.target = target
	return &cp
}

// Target returns the bound target, or nil.
func (p *Proxy) Target() any { return p.target }

// Bases returns the resolved base types.
func (p *Proxy) Bases() []reflect.Type { return slices.Clone(p.bases) }

// Members returns the member names in sorted order.
func (p *Proxy) Members() []string { return slices.Clone(p.names) }

// Has reports whether the proxy has a member called name.
func (p *Proxy) Has(name string) bool {
	_, ok := p.members[name]
	return ok
}

// Implements reports whether every method of the interface type iface is a
// member with the same signature.
func (p *Proxy) Implements(iface reflect.Type) bool {
	if iface == nil || iface.Kind() != reflect.Interface {
		return false
	}
	for i := range iface.NumMethod() {
		m := iface.Method(i)
		got, ok := p.members[m.Name]
		if !ok || got.sig != m.Type {
			return false
		}
	}
	return true
}
