package srx_test

import (
	"fmt"

	"github.com/Spectonic/srx"
)

func Example() {
	srx.Just(1, 2, 3, 4, 5).
		IgnoreEven().
		Multiply(10).
		Subscribe(func(v int) { fmt.Println(v) })

	// Output:
	// 10
	// 30
	// 50
}
