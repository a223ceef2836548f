package dotpath

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Config holds the collaborators of a [Resolver].
type Config struct {
	// Importer resolves module names. Defaults to [DefaultRegistry].
	Importer Importer

	// Cache memoizes successful lookups. Defaults to [DefaultCache], the
	// process-wide cache; pass [NewCache] for an isolated resolver.
	Cache *Cache

	// Logger receives debug records about cache use and resolution steps.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultConfig returns a [Config] wired to the process-wide registry and
// cache.
func DefaultConfig() Config {
	return Config{
		Importer: DefaultRegistry,
		Cache:    DefaultCache,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

// Resolver turns dotted paths into live values.
//
// A Resolver is safe for concurrent use. Concurrent cached lookups of the
// same path share one resolution.
type Resolver struct {
	importer Importer
	cache    *Cache
	logger   *slog.Logger
	group    singleflight.Group
}

// NewResolver creates a Resolver. Zero fields of cfg are taken from
// [DefaultConfig].
func NewResolver(cfg Config) *Resolver {
	def := DefaultConfig()
	if cfg.Importer == nil {
		cfg.Importer = def.Importer
	}
	if cfg.Cache == nil {
		cfg.Cache = def.Cache
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return &Resolver{importer: cfg.Importer, cache: cfg.Cache, logger: cfg.Logger}
}

// Scope is an explicit symbol table consulted when the first path segment
// is not an importable module. Locals shadow Globals.
type Scope struct {
	Locals  map[string]any
	Globals map[string]any
}

// Resolve returns the binding for name, locals first.
func (s Scope) Resolve(name string) (any, bool) {
	if v, ok := s.Locals[name]; ok {
		return v, true
	}
	v, ok := s.Globals[name]
	return v, ok
}

func (s Scope) empty() bool { return len(s.Locals) == 0 && len(s.Globals) == 0 }

type lookupOptions struct {
	noCache bool
	scope   Scope
}

// LookupOption configures a single [Resolver.Lookup] call.
type LookupOption func(*lookupOptions)

// WithoutCache disables both reading from and writing to the cache.
func WithoutCache() LookupOption {
	return func(o *lookupOptions) { o.noCache = true }
}

// WithScope sets the fallback symbol table for the first segment.
func WithScope(s Scope) LookupOption {
	return func(o *lookupOptions) { o.scope = s }
}

// WithLocals sets the local bindings of the fallback scope.
func WithLocals(locals map[string]any) LookupOption {
	return func(o *lookupOptions) { o.scope.Locals = locals }
}

// WithGlobals sets the global bindings of the fallback scope.
func WithGlobals(globals map[string]any) LookupOption {
	return func(o *lookupOptions) { o.scope.Globals = globals }
}

// Lookup resolves path to a value.
//
// The first segment is imported as a module; when no such module exists it
// is looked up in the scope given through [WithScope] (locals, then
// globals). Following segments are imported as sub-modules ("a.b",
// "a.b.c", ...) for as long as that succeeds, after which the remaining
// segments are resolved with [Attr].
//
// Failures wrap [ErrNotFound] and carry "path" and "index" metadata, index
// being the position of the segment that could not be resolved. Only
// successful results are cached, and only the path is used as the cache
// key: a cached value is returned regardless of the scope of later calls.
// Concurrent misses on the same path are resolved once, except for calls
// with a non-empty scope, which always resolve on their own.
func (r *Resolver) Lookup(path string, opts ...LookupOption) (any, error) {
	var o lookupOptions
	for _, opt := range opts {
		opt(&o)
	}

	if path == "" {
		return nil, notFound(path, 0)
	}
	if o.noCache {
		return r.resolve(path, o.scope)
	}

	if v, ok := r.cache.Get(path); ok {
		r.logger.Debug("dotpath: cache hit", slog.String("path", path))
		return v, nil
	}

	if !o.scope.empty() {
		return r.resolveAndCache(path, o.scope)
	}
	v, err, _ := r.group.Do(path, func() (any, error) {
		if v, ok := r.cache.Get(path); ok {
			return v, nil
		}
		return r.resolveAndCache(path, Scope{})
	})
	return v, err
}

func (r *Resolver) resolveAndCache(path string, scope Scope) (any, error) {
	v, err := r.resolve(path, scope)
	if err != nil {
		return nil, err
	}
	r.cache.Put(path, v)
	r.logger.Debug("dotpath: cached", slog.String("path", path))
	return v, nil
}

func (r *Resolver) resolve(path string, scope Scope) (any, error) {
	segments := strings.Split(path, ".")
	if i := slices.Index(segments, ""); i >= 0 {
		err := zerr.With(zerr.Wrap(ErrInvalidPath, "wrong path"), "path", path)
		return nil, zerr.With(err, "index", i)
	}

	var result any
	mod, err := r.importer.Import(segments[0])
	switch {
	case err == nil:
		result = mod
	case errors.Is(err, ErrModuleNotFound):
		v, ok := scope.Resolve(segments[0])
		if !ok {
			err := notFound(path, 0)
			r.logger.Debug("dotpath: unresolved root", slog.Any("error", err))
			return nil, err
		}
		r.logger.Debug("dotpath: root from scope", slog.String("name", segments[0]))
		result = v
	default:
		return nil, zerr.With(zerr.Wrap(err, "import failed"), "path", path)
	}

	index := 1
	for ; index < len(segments); index++ {
		sub, err := r.importer.Import(strings.Join(segments[:index+1], "."))
		if errors.Is(err, ErrModuleNotFound) {
			break
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "import failed"), "path", path)
		}
		result = sub
	}

	if index < len(segments) {
		r.logger.Debug("dotpath: attribute traversal",
			slog.String("path", path), slog.String("from", strings.Join(segments[:index], ".")))
	}
	for ; index < len(segments); index++ {
		next, ok := Attr(result, segments[index])
		if !ok {
			err := notFound(path, index)
			err = zerr.With(err, "segment", segments[index])
			err = zerr.With(err, "resolved", strings.Join(segments[:index], "."))
			r.logger.Debug("dotpath: unresolved attribute", slog.Any("error", err))
			return nil, err
		}
		result = next
	}
	return result, nil
}

// ClearCache removes the cache entries of the given paths, or every entry
// when called without arguments.
func (r *Resolver) ClearCache(paths ...string) {
	if len(paths) == 0 {
		r.cache.Clear()
		r.logger.Debug("dotpath: cache cleared")
		return
	}
	r.cache.Delete(paths...)
	r.logger.Debug("dotpath: cache entries removed", slog.Any("paths", paths))
}

// Cache returns the cache used by r.
func (r *Resolver) Cache() *Cache { return r.cache }

var (
	// DefaultCache is the process-wide resolution cache.
	DefaultCache = NewCache()

	defaultResolver = NewResolver(Config{})
)

// Default returns the resolver behind the package-level functions.
func Default() *Resolver { return defaultResolver }

// Lookup resolves path with the default resolver. See [Resolver.Lookup].
func Lookup(path string, opts ...LookupOption) (any, error) {
	return defaultResolver.Lookup(path, opts...)
}

// ClearCache clears entries of the default cache. See [Resolver.ClearCache].
func ClearCache(paths ...string) {
	defaultResolver.ClearCache(paths...)
}

// PathOf returns the path of element using the default registry. See
// [Resolver.PathOf].
func PathOf(element any) (string, error) {
	return defaultResolver.PathOf(element)
}

// Register adds modules to [DefaultRegistry].
func Register(modules ...*Module) error {
	for _, m := range modules {
		if err := DefaultRegistry.Register(m); err != nil {
			return err
		}
	}
	return nil
}
