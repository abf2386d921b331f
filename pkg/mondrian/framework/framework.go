package framework

import (
	"math/rand/v2"
)

// Solution describes the contract a candidate needs to implement so that
// generic drivers can copy and check it.
type Solution interface {
	Clone() Solution
	Valid() bool
}

// Operators describes the genetic operators of one representation. A driver
// owns the loop, the fitness and the selection policy and calls these as
// building blocks. Every call gets its own random stream.
type Operators interface {
	Name() string

	// Random builds a new structurally valid solution.
	Random(*rand.Rand) (Solution, error)

	// Mutate changes the solution in place and returns how many genes changed.
	Mutate(*rand.Rand, Solution) (int, error)

	// Crossover returns two children and leaves both parents untouched.
	Crossover(*rand.Rand, Solution, Solution) (Solution, Solution, error)
}
