package source_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrand/source"
)

// ExampleNew draws from the pinned default engine.
func ExampleNew() {
	src, err := source.New(source.Default)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	src.Seed(0)
	for i := 0; i < 3; i++ {
		fmt.Printf("%.15f\n", src.Close1Open2())
	}
	// Output:
	// 1.030581026769374
	// 1.213140320067012
	// 1.299002525016001
}
