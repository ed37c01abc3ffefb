package risk

import (
	"math/rand"
	"sort"
)

// Dice supplies six-sided rolls for combat. Injected so tests can pin exact
// outcomes; production uses NewDice over a seeded rand source.
type Dice interface {
	// Roll returns n die values in [1,6], sorted descending.
	Roll(n int) []int
}

type randDice struct {
	rng *rand.Rand
}

// NewDice returns a Dice backed by the given source.
func NewDice(rng *rand.Rand) Dice {
	return &randDice{rng: rng}
}

func (d *randDice) Roll(n int) []int {
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = d.rng.Intn(6) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}
