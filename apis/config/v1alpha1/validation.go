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

	"gonum.org/v1/gonum/floats"
	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var knownColors = sets.New("white", "blue", "red", "yellow")

// ValidatePartitionArgs validates defaulted PartitionArgs.
func ValidatePartitionArgs(path *field.Path, args *PartitionArgs) error {
	var allErrs field.ErrorList

	minLines := validateCount(path.Child("minInteriorLines"), args.MinInteriorLines, 0, &allErrs)
	maxLines := validateCount(path.Child("maxInteriorLines"), args.MaxInteriorLines, 0, &allErrs)
	if minLines != nil && maxLines != nil && *maxLines < *minLines {
		allErrs = append(allErrs, field.Invalid(path.Child("maxInteriorLines"), *maxLines,
			fmt.Sprintf("must be greater than or equal to minInteriorLines (%d)", *minLines)))
	}

	if args.MinLineSpacing == nil {
		allErrs = append(allErrs, field.Required(path.Child("minLineSpacing"), ""))
	} else if s := *args.MinLineSpacing; s <= 0 || s >= 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("minLineSpacing"), s, "must be in (0, 1)"))
	} else if maxLines != nil && 2*float64(*maxLines)*s > 1 {
		// Every placed line, the two borders included, blocks at most 2*s of the
		// axis, so random placement always finds free space below this bound.
		allErrs = append(allErrs, field.Invalid(path.Child("minLineSpacing"), s,
			fmt.Sprintf("must not exceed 1/(2*maxInteriorLines) (%g) to place %d interior lines", 1/(2*float64(*maxLines)), *maxLines)))
	}

	minToggles := validateCount(path.Child("minToggles"), args.MinToggles, 1, &allErrs)
	maxToggles := validateCount(path.Child("maxToggles"), args.MaxToggles, 1, &allErrs)
	if minToggles != nil && maxToggles != nil {
		if *maxToggles < *minToggles {
			allErrs = append(allErrs, field.Invalid(path.Child("maxToggles"), *maxToggles,
				fmt.Sprintf("must be greater than or equal to minToggles (%d)", *minToggles)))
		} else if minLines != nil && *maxToggles > *minLines+2 {
			allErrs = append(allErrs, field.Invalid(path.Child("maxToggles"), *maxToggles,
				fmt.Sprintf("must not exceed the smallest line count (%d)", *minLines+2)))
		}
	}

	validateCount(path.Child("maxPlacementAttempts"), args.MaxPlacementAttempts, 1, &allErrs)

	if args.ExpectedMutations == nil {
		allErrs = append(allErrs, field.Required(path.Child("expectedMutations"), ""))
	} else if *args.ExpectedMutations <= 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("expectedMutations"), *args.ExpectedMutations, "must be positive"))
	}

	if args.DefaultColor == nil {
		allErrs = append(allErrs, field.Required(path.Child("defaultColor"), ""))
	} else if !knownColors.Has(*args.DefaultColor) {
		allErrs = append(allErrs, field.NotSupported(path.Child("defaultColor"), *args.DefaultColor, sets.List(knownColors)))
	}

	allErrs = append(allErrs, validateColorWeights(path.Child("colorWeights"), args.ColorWeights)...)

	return allErrs.ToAggregate()
}

func validateCount(path *field.Path, v *int32, lower int32, allErrs *field.ErrorList) *int32 {
	if v == nil {
		*allErrs = append(*allErrs, field.Required(path, ""))
		return nil
	}
	if *v < lower {
		*allErrs = append(*allErrs, field.Invalid(path, *v, fmt.Sprintf("must be greater than or equal to %d", lower)))
		return nil
	}
	return v
}

func validateColorWeights(path *field.Path, weights []ColorWeight) field.ErrorList {
	var allErrs field.ErrorList
	if len(weights) == 0 {
		return append(allErrs, field.Required(path, ""))
	}

	seen := sets.New[string]()
	values := make([]float64, 0, len(weights))
	for i, w := range weights {
		if !knownColors.Has(w.Color) {
			allErrs = append(allErrs, field.NotSupported(path.Index(i).Child("color"), w.Color, sets.List(knownColors)))
		} else if seen.Has(w.Color) {
			allErrs = append(allErrs, field.Duplicate(path.Index(i).Child("color"), w.Color))
		}
		seen.Insert(w.Color)
		if w.Weight < 0 {
			allErrs = append(allErrs, field.Invalid(path.Index(i).Child("weight"), w.Weight, "must not be negative"))
		}
		values = append(values, w.Weight)
	}
	if floats.Sum(values) <= 0 {
		allErrs = append(allErrs, field.Invalid(path, weights, "weights must sum to a positive value"))
	}
	return allErrs
}
