package gen

import (
	"encoding/binary"
	"math/rand"

	"github.com/spaolacci/murmur3"
)

// Values drawn for an array of size n fall in [0, RangeFactor*n).
const RangeFactor = 10

type Generator struct {
	rnd *rand.Rand
}

func New(seed int64) *Generator {
	return NewFromSource(rand.NewSource(seed))
}

func NewFromSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Derive mixes a base seed with a label so that every label gets its own
// reproducible stream from the same base seed.
func Derive(seed int64, label string) int64 {
	h := murmur3.New64()

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(seed))
	h.Write(buf)
	h.Write([]byte(label))

	return int64(h.Sum64())
}

// Array returns size random values and a target picked from them.
// The target is 0 when size is not positive.
func (g *Generator) Array(size int) ([]int, int) {
	if size <= 0 {
		return []int{}, 0
	}

	arr := make([]int, size)
	for i := 0; i < size; i++ {
		arr[i] = g.rnd.Intn(size * RangeFactor)
	}
	return arr, g.Pick(arr)
}

func (g *Generator) Pick(arr []int) int {
	if len(arr) == 0 {
		return 0
	}
	return arr[g.rnd.Intn(len(arr))]
}
