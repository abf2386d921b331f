package mondrian

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/mondrian/apis/config/v1alpha1"
	"github.com/mihai-snyk/mondrian/pkg/mondrian/framework"
	"github.com/mihai-snyk/mondrian/pkg/mondrian/partition"
)

const (
	Name = "Mondrian"
)

// Mondrian bundles the grid-partition operators configured from PartitionArgs.
// It holds no mutable state and can be shared as long as every caller uses
// its own random stream.
type Mondrian struct {
	args      *v1alpha1.PartitionArgs
	generator *partition.Generator
	mutator   *partition.Mutator
	logger    logr.Logger
}

var _ framework.Operators = &Mondrian{}

// New builds the operators from a *v1alpha1.PartitionArgs. Unset fields are
// defaulted; the args are validated before use. The logger is taken from ctx.
func New(ctx context.Context, obj runtime.Object) (*Mondrian, error) {
	logger := klog.FromContext(ctx)
	logger.V(5).Info("creating instance of Mondrian")

	in, ok := obj.(*v1alpha1.PartitionArgs)
	if !ok {
		return nil, fmt.Errorf("want args to be of type PartitionArgs, got %T", obj)
	}
	args := &v1alpha1.PartitionArgs{}
	if in != nil {
		args = in.DeepCopy()
	}
	v1alpha1.SetDefaults_PartitionArgs(args)
	if err := v1alpha1.ValidatePartitionArgs(nil, args); err != nil {
		return nil, err
	}

	weighted := make([]partition.Weighted, len(args.ColorWeights))
	for i, w := range args.ColorWeights {
		weighted[i] = partition.Weighted{Color: partition.Color(w.Color), Weight: w.Weight}
	}
	palette, err := partition.NewPalette(weighted...)
	if err != nil {
		return nil, err
	}

	m := &Mondrian{
		args: args,
		generator: &partition.Generator{
			Palette:              palette,
			MinInterior:          int(*args.MinInteriorLines),
			MaxInterior:          int(*args.MaxInteriorLines),
			MinSpacing:           *args.MinLineSpacing,
			MinToggles:           int(*args.MinToggles),
			MaxToggles:           int(*args.MaxToggles),
			Fill:                 partition.Color(*args.DefaultColor),
			MaxPlacementAttempts: int(*args.MaxPlacementAttempts),
		},
		mutator: &partition.Mutator{
			Palette:           palette,
			ExpectedMutations: *args.ExpectedMutations,
		},
		logger: logger.WithName(Name),
	}
	logger.V(5).Info("Mondrian created",
		"interiorLines", fmt.Sprintf("[%d, %d]", *args.MinInteriorLines, *args.MaxInteriorLines),
		"minLineSpacing", *args.MinLineSpacing,
		"toggles", fmt.Sprintf("[%d, %d]", *args.MinToggles, *args.MaxToggles),
		"expectedMutations", *args.ExpectedMutations,
		"colorWeights", args.ColorWeights)
	return m, nil
}

func (m *Mondrian) Name() string {
	return Name
}

// Args returns a copy of the effective, defaulted args.
func (m *Mondrian) Args() *v1alpha1.PartitionArgs {
	return m.args.DeepCopy()
}

// Generate builds a random individual.
func (m *Mondrian) Generate(rng *rand.Rand) (*partition.Individual, error) {
	ind, err := m.generator.Generate(rng)
	if err != nil {
		m.logger.V(2).Info("generating individual failed", "err", err)
		return nil, err
	}
	cols, rows := ind.Shape()
	m.logger.V(5).Info("generated individual", "columns", cols, "rows", rows)
	return ind, nil
}

// MutateIndividual repaints cells of ind in place.
func (m *Mondrian) MutateIndividual(rng *rand.Rand, ind *partition.Individual) int {
	n := m.mutator.Mutate(rng, ind)
	m.logger.V(5).Info("mutated individual", "cells", len(ind.Cells), "rate", m.mutator.Rate(len(ind.Cells)), "repainted", n)
	return n
}

// Cross recombines two individuals over a random region.
func (m *Mondrian) Cross(rng *rand.Rand, a, b *partition.Individual) (*partition.Individual, *partition.Individual, error) {
	region, err := partition.PickRegion(rng, a, b)
	if err != nil {
		return nil, nil, err
	}
	childA, childB, err := partition.CrossoverRegion(a, b, region)
	if err != nil {
		return nil, nil, err
	}
	m.logger.V(5).Info("crossed individuals", "region", region,
		"childA", fmt.Sprintf("%dx%d", len(childA.Vertical), len(childA.Horizontal)),
		"childB", fmt.Sprintf("%dx%d", len(childB.Vertical), len(childB.Horizontal)))
	return childA, childB, nil
}

// Random implements framework.Operators.
func (m *Mondrian) Random(rng *rand.Rand) (framework.Solution, error) {
	ind, err := m.Generate(rng)
	if err != nil {
		return nil, err
	}
	return ind, nil
}

// Mutate implements framework.Operators.
func (m *Mondrian) Mutate(rng *rand.Rand, sol framework.Solution) (int, error) {
	ind, err := individual(sol)
	if err != nil {
		return 0, err
	}
	return m.MutateIndividual(rng, ind), nil
}

// Crossover implements framework.Operators.
func (m *Mondrian) Crossover(rng *rand.Rand, a, b framework.Solution) (framework.Solution, framework.Solution, error) {
	indA, err := individual(a)
	if err != nil {
		return nil, nil, err
	}
	indB, err := individual(b)
	if err != nil {
		return nil, nil, err
	}
	childA, childB, err := m.Cross(rng, indA, indB)
	if err != nil {
		return nil, nil, err
	}
	return childA, childB, nil
}

func individual(sol framework.Solution) (*partition.Individual, error) {
	ind, ok := sol.(*partition.Individual)
	if !ok || ind == nil {
		return nil, fmt.Errorf("%w: want *partition.Individual, got %T", framework.ErrUnsupportedSolution, sol)
	}
	return ind, nil
}
