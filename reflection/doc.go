// Package reflection answers structural questions about Go types and the
// values registered in a [dotpath.Module].
//
// Go has no inheritance; the closest notion of a base is an embedded field.
// [Bases] lists the types a struct embeds directly, [BaseMethods] lists the
// same-named methods those embedded types define (the methods that the
// outer type promotes or overrides), and [BaseElements] dispatches between
// the two.
//
// [FindEmbedding] walks a module's members to report the chain of
// containers through which a value is reachable:
//
//	chain := reflection.FindEmbedding(mod, (*Counter).Inc)
//	// [mod, reflect.TypeFor[Counter](), (*Counter).Inc]
package reflection
