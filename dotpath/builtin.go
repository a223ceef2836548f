package dotpath

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultRegistry is the process-wide module registry. It comes with a
// "builtin" module holding the predeclared types and a handful of standard
// library packages; applications add their own with [Register].
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(
		NewModule("builtin", map[string]any{
			"any":        reflect.TypeFor[any](),
			"bool":       reflect.TypeFor[bool](),
			"byte":       reflect.TypeFor[byte](),
			"complex128": reflect.TypeFor[complex128](),
			"error":      reflect.TypeFor[error](),
			"float32":    reflect.TypeFor[float32](),
			"float64":    reflect.TypeFor[float64](),
			"int":        reflect.TypeFor[int](),
			"int64":      reflect.TypeFor[int64](),
			"rune":       reflect.TypeFor[rune](),
			"string":     reflect.TypeFor[string](),
			"uint":       reflect.TypeFor[uint](),
			"uint64":     reflect.TypeFor[uint64](),
		}),
		NewModule("errors", map[string]any{
			"As":     errors.As,
			"Is":     errors.Is,
			"Join":   errors.Join,
			"New":    errors.New,
			"Unwrap": errors.Unwrap,
		}),
		NewModule("fmt", map[string]any{
			"Errorf":   fmt.Errorf,
			"Sprint":   fmt.Sprint,
			"Sprintf":  fmt.Sprintf,
			"Sprintln": fmt.Sprintln,
			"Stringer": reflect.TypeFor[fmt.Stringer](),
		}),
		NewModule("math", map[string]any{
			"Abs":    math.Abs,
			"Max":    math.Max,
			"MaxInt": math.MaxInt,
			"Min":    math.Min,
			"Pi":     math.Pi,
			"Pow":    math.Pow,
			"Sqrt":   math.Sqrt,
		}),
		NewModule("reflect", map[string]any{
			"DeepEqual": reflect.DeepEqual,
			"Type":      reflect.TypeFor[reflect.Type](),
			"TypeOf":    reflect.TypeOf,
			"ValueOf":   reflect.ValueOf,
		}),
		NewModule("strconv", map[string]any{
			"Atoi":       strconv.Atoi,
			"FormatInt":  strconv.FormatInt,
			"Itoa":       strconv.Itoa,
			"ParseBool":  strconv.ParseBool,
			"ParseFloat": strconv.ParseFloat,
			"Quote":      strconv.Quote,
		}),
		NewModule("strings", map[string]any{
			"Builder":   reflect.TypeFor[strings.Builder](),
			"Contains":  strings.Contains,
			"Fields":    strings.Fields,
			"HasPrefix": strings.HasPrefix,
			"Join":      strings.Join,
			"Repeat":    strings.Repeat,
			"Split":     strings.Split,
			"ToLower":   strings.ToLower,
			"ToUpper":   strings.ToUpper,
			"TrimSpace": strings.TrimSpace,
		}),
		NewModule("unicode", map[string]any{
			"IsDigit":  unicode.IsDigit,
			"IsLetter": unicode.IsLetter,
			"IsUpper":  unicode.IsUpper,
			"ToUpper":  unicode.ToUpper,
		}),
		NewModule("unicode.utf8", map[string]any{
			"RuneCountInString": utf8.RuneCountInString,
			"RuneError":         utf8.RuneError,
			"ValidString":       utf8.ValidString,
		}),
	)
	return r
}
