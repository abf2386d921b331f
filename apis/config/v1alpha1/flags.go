/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// AddFlags binds the args to flags in fs. Unset fields are defaulted first so
// that the flag defaults show the effective values.
func (args *PartitionArgs) AddFlags(fs *pflag.FlagSet) {
	SetDefaults_PartitionArgs(args)

	fs.Int32Var(args.MinInteriorLines, "min-interior-lines", *args.MinInteriorLines, "Smallest number of interior lines per axis.")
	fs.Int32Var(args.MaxInteriorLines, "max-interior-lines", *args.MaxInteriorLines, "Largest number of interior lines per axis.")
	fs.Float64Var(args.MinLineSpacing, "min-line-spacing", *args.MinLineSpacing, "Smallest distance between two lines on the same axis.")
	fs.Int32Var(args.MinToggles, "min-toggles", *args.MinToggles, "Smallest number of presence toggles of a new line.")
	fs.Int32Var(args.MaxToggles, "max-toggles", *args.MaxToggles, "Largest number of presence toggles of a new line.")
	fs.Int32Var(args.MaxPlacementAttempts, "max-placement-attempts", *args.MaxPlacementAttempts, "Rejected positions allowed for a single line.")
	fs.Float64Var(args.ExpectedMutations, "expected-mutations", *args.ExpectedMutations, "Average number of cells repainted by one mutation.")
	fs.StringVar(args.DefaultColor, "default-color", *args.DefaultColor, "Color of freshly derived cells.")
	fs.Var(&colorWeightsValue{weights: &args.ColorWeights}, "color-weights", "Comma separated color=weight pairs, e.g. white=0.7,blue=0.1.")
}

// colorWeightsValue implements pflag.Value over a ColorWeight slice.
type colorWeightsValue struct {
	weights *[]ColorWeight
}

func (v *colorWeightsValue) String() string {
	if v.weights == nil {
		return ""
	}
	pairs := make([]string, len(*v.weights))
	for i, w := range *v.weights {
		pairs[i] = w.Color + "=" + strconv.FormatFloat(w.Weight, 'g', -1, 64)
	}
	return strings.Join(pairs, ",")
}

func (v *colorWeightsValue) Set(s string) error {
	var weights []ColorWeight
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		color, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("color weight %q is not of the form color=weight", pair)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("color weight %q: %w", pair, err)
		}
		weights = append(weights, ColorWeight{Color: strings.TrimSpace(color), Weight: weight})
	}
	if len(weights) == 0 {
		return fmt.Errorf("no color weights in %q", s)
	}
	*v.weights = weights
	return nil
}

func (v *colorWeightsValue) Type() string {
	return "colorWeights"
}
