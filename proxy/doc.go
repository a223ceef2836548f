// Package proxy builds forwarding wrappers around functions and values.
//
// [Func] and [Get] wrap a function in a new function of the same type that
// forwards every call. [New] builds a [Proxy]: a member table assembled from
// content functions and the method sets of base types, whose calls go to
// the same-named members of a target value.
//
//	p, _ := proxy.New(svc, proxy.WithBases(reflect.TypeFor[Greeter]()))
//	out, _ := p.Invoke("Greet", "gopher")
//
// Bases may also be given as dotted paths, resolved through a
// [dotpath.Resolver] to reflect.Type values.
//
// A proxy without a target is unbound: content functions are called
// directly, concrete base methods are called as method expressions with the
// receiver as the first argument, and interface methods fail with
// [ErrUnbound]. [Proxy.Rebind] gives a copy bound to another target.
//
// The members of a proxy never shadow the methods of *Proxy itself: such
// names are skipped when the member table is built.
package proxy
