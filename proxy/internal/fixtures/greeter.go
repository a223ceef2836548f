// Package fixtures holds the interfaces proxy tests forward to.
package fixtures

// Greeter is implemented by the targets proxied in tests.
//
//go:generate mockgen -source=greeter.go -destination=../mocks/mock_greeter.go -package=mocks
type Greeter interface {
	Greet(name string) string
	Join(sep string, parts ...string) string
	Count() (int, error)
}
