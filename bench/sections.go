package bench

import (
	"sort"

	"bradfield/csi/algorithms/analyzer/gen"
	"bradfield/csi/algorithms/analyzer/search"
	"bradfield/csi/algorithms/analyzer/sorting"
)

// sink keeps search results live so the timed calls are not elided.
var sink int

// Section is one algorithm's table. Prepare runs before the clock starts and
// may replace the target; Exec is the only timed step.
type Section struct {
	Name    string
	Prepare func(g *gen.Generator, arr []int, target int) int
	Exec    func(arr []int, target int)
}

func Sections() []Section {
	return []Section{
		{
			Name: "Linear Search",
			Exec: func(arr []int, target int) {
				sink = search.Linear(arr, target)
			},
		},
		{
			Name:    "Binary Search",
			Prepare: prepareBinary,
			Exec: func(arr []int, target int) {
				sink = search.Binary(arr, target)
			},
		},
		{
			Name: "Bubble Sort",
			Exec: func(arr []int, _ int) {
				sorting.Bubble(arr)
			},
		},
		{
			Name: "Quick Sort",
			Exec: func(arr []int, _ int) {
				sorting.QuickAll(arr)
			},
		},
	}
}

// Binary search needs sorted input; the target is re-drawn afterwards so
// it is guaranteed to be present.
func prepareBinary(g *gen.Generator, arr []int, _ int) int {
	sort.Ints(arr)
	return g.Pick(arr)
}
