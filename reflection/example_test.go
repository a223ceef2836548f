package reflection_test

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-reflect-utils/dotpath"
	"github.com/hasbyte1/go-reflect-utils/reflection"
)

func ExampleBases() {
	for _, base := range reflection.Bases(reflect.TypeFor[Dog]()) {
		fmt.Println(base)
	}
	// Output:
	// reflection_test.Animal
	// *reflection_test.Recorder
}

func ExampleFindEmbedding() {
	mod := dotpath.NewModule("zoo", map[string]any{"Dog": reflect.TypeFor[Dog]()})
	for _, elt := range reflection.FindEmbedding(mod, reflect.TypeFor[Dog]()) {
		switch e := elt.(type) {
		case *dotpath.Module:
			fmt.Println("module", e.Name())
		default:
			fmt.Println(e)
		}
	}
	// Output:
	// module zoo
	// reflection_test.Dog
}
