package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/valveflow/matrix"
)

// ExampleNewDistances builds hop counts for a square A–B–D–C–A.
func ExampleNewDistances() {
	//	A───B
	//	│   │
	//	C───D
	adj := [][]int{
		{1, 2}, // A
		{0, 3}, // B
		{0, 3}, // C
		{1, 2}, // D
	}
	d, err := matrix.NewDistances(adj)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)

	// Output:
	// [0 1 1 2]
	// [1 0 2 1]
	// [1 2 0 1]
	// [2 1 1 0]
}
