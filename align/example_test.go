package align_test

import (
	"fmt"

	"github.com/davejbax/memalign/align"
)

func Example() {
	fmt.Println(align.Up(13, 8), align.Down(13, 8))
	fmt.Println(align.IsAligned(16, 8), align.IsAligned(13, 8))
	fmt.Println(align.Down(int8(-3), 4))
	// Output:
	// 16 8
	// true false
	// -4
}
