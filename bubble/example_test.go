package bubble_test

import (
	"fmt"

	"github.com/katalvlaran/lvsort/bubble"
	"github.com/katalvlaran/lvsort/core"
)

// ExampleSort sorts a short list and reports how much work the passes did.
func ExampleSort() {
	list := []int{5, 3, 8, 1}
	var st core.Stats
	if err := bubble.Sort(list, len(list), bubble.WithStats(&st)); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(list)
	fmt.Printf("passes=%d swaps=%d\n", st.Passes, st.Swaps)
	// Output:
	// [1 3 5 8]
	// passes=3 swaps=4
}

// ExampleWithOnPass shows the early exit on already sorted input.
func ExampleWithOnPass() {
	list := []string{"ant", "bee", "cat"}
	_ = bubble.Sort(list, len(list), bubble.WithOnPass(func(pass int, swapped bool) {
		fmt.Printf("pass %d swapped=%v\n", pass, swapped)
	}))
	// Output:
	// pass 1 swapped=false
}
