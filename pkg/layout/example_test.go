package layout_test

import (
	"fmt"

	"github.com/matzehuels/buttonstrip/pkg/layout"
)

func ExampleCompute() {
	policy := layout.DefaultPolicy()
	l := layout.Compute(5, policy, layout.Viewport{Width: 550, Height: 40})

	for _, it := range l.Items {
		fmt.Printf("%d: x=%g w=%g\n", it.Index, it.Box.X, it.Box.W)
	}
	// Output:
	// 0: x=0 w=102
	// 1: x=112 w=102
	// 2: x=224 w=102
	// 3: x=336 w=102
	// 4: x=448 w=102
}
