package bitsfmt_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrand/bitsfmt"
)

// ExampleFloat32 shows the field separation of a binary32 value.
func ExampleFloat32() {
	fmt.Println(bitsfmt.Float32(0.15625))
	fmt.Println(bitsfmt.Integer(int16(-3)))
	// Output:
	// 0 01111100 01000000000000000000000
	// 1111111111111101
}
