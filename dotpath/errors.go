package dotpath

import "go.trai.ch/zerr"

// Sentinel errors returned by the resolver, the registry and PathOf.
//
// Errors carry structured context as zerr metadata (path, index, segment,
// module). Branch on the kind with errors.Is, never on the message.
var (
	// ErrNotFound is returned when the root or an intermediate segment of a
	// path cannot be resolved to any value.
	ErrNotFound = zerr.New("dotpath: path not found")

	// ErrInvalidPath is returned for paths containing an empty segment.
	// It wraps ErrNotFound, since such a path can never be resolved.
	ErrInvalidPath = zerr.Wrap(ErrNotFound, "dotpath: empty path segment")

	// ErrModuleNotFound is returned by an Importer that has no module under
	// the requested name.
	ErrModuleNotFound = zerr.New("dotpath: module not found")

	// ErrDuplicateModule is returned by Registry.Register when a different
	// module is already registered under the same name.
	ErrDuplicateModule = zerr.New("dotpath: module already registered")

	// ErrInvalidArgument is returned by PathOf for elements that expose no
	// top-level name.
	ErrInvalidArgument = zerr.New("dotpath: element has no name")
)

func notFound(path string, index int) error {
	err := zerr.With(zerr.Wrap(ErrNotFound, "wrong path"), "path", path)
	return zerr.With(err, "index", index)
}
