// Package dotpath resolves dotted symbolic paths ("strings.ToUpper",
// "app.models.User.Save") to live in-process values, and maps values back to
// their path.
//
// # Modules
//
// Go has no runtime import, so the role of importable modules is played by
// [Module] values registered in an [Importer]. The process-wide
// [DefaultRegistry] ships with a few standard library packages:
//
//	dotpath.Register(dotpath.NewModule("app.models", map[string]any{
//	    "User":    reflect.TypeFor[models.User](),
//	    "Migrate": models.Migrate,
//	}))
//
//	fn, _ := dotpath.Lookup("app.models.Migrate")
//	path, _ := dotpath.PathOf(models.Migrate) // "app.models.Migrate"
//
// # Resolution
//
// The first segment is imported as a module, falling back to an explicit
// [Scope] when no such module exists. Following segments are imported as
// sub-modules while possible, then resolved as attributes with [Attr]:
// struct fields, map entries, methods and method expressions.
//
//	v, err := dotpath.Lookup("cfg.Server.Port",
//	    dotpath.WithLocals(map[string]any{"cfg": cfg}))
//
// # Caching
//
// Successful lookups are memoized in a [Cache] keyed by path. Use
// [WithoutCache] for a one-off resolution and [ClearCache] to drop entries.
// Failures are never cached.
//
// # Errors
//
// Every failure wraps one of the package sentinels ([ErrNotFound],
// [ErrInvalidPath], [ErrInvalidArgument], ...) and carries structured
// metadata readable through *zerr.Error:
//
//	var zErr *zerr.Error
//	if errors.Is(err, dotpath.ErrNotFound) && errors.As(err, &zErr) {
//	    fmt.Println(zErr.Metadata()["index"])
//	}
package dotpath
