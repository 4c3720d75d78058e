package engine

import "math/rand"

// Dice produces the game's random numbers from a seeded source, so a run
// is reproducible from its seed.
type Dice struct {
	rng *rand.Rand
}

// NewDice creates dice seeded with seed.
func NewDice(seed int64) *Dice {
	return &Dice{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a number in [1, n]. n below 1 always rolls 1.
func (d *Dice) Roll(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 + d.rng.Intn(n)
}

// RollRange returns a number in [lo, hi] inclusive.
func (d *Dice) RollRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.Intn(hi-lo+1)
}
