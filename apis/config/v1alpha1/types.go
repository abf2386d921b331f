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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the group name used in this package
const GroupName = "config.mondrian.io"

// SchemeGroupVersion is group version used to register these objects
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// Kind of PartitionArgs
const PartitionArgsKind = "PartitionArgs"

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// PartitionArgs holds the arguments used to build the grid-partition operators.
type PartitionArgs struct {
	metav1.TypeMeta `json:",inline"`

	// MinInteriorLines is the smallest number of lines per axis, not counting
	// the two boundary lines.
	MinInteriorLines *int32 `json:"minInteriorLines,omitempty"`

	// MaxInteriorLines is the largest number of lines per axis, not counting
	// the two boundary lines.
	MaxInteriorLines *int32 `json:"maxInteriorLines,omitempty"`

	// MinLineSpacing is the smallest distance between two lines on the same axis.
	MinLineSpacing *float64 `json:"minLineSpacing,omitempty"`

	// MinToggles and MaxToggles bound the number of presence toggles a new line gets.
	MinToggles *int32 `json:"minToggles,omitempty"`
	MaxToggles *int32 `json:"maxToggles,omitempty"`

	// MaxPlacementAttempts caps the rejected positions for a single line
	// before generation gives up.
	MaxPlacementAttempts *int32 `json:"maxPlacementAttempts,omitempty"`

	// ExpectedMutations is the average number of cells repainted by one mutation.
	ExpectedMutations *float64 `json:"expectedMutations,omitempty"`

	// DefaultColor is the color of freshly derived cells.
	DefaultColor *string `json:"defaultColor,omitempty"`

	// ColorWeights is the categorical distribution used to paint cells.
	ColorWeights []ColorWeight `json:"colorWeights,omitempty"`
}

// ColorWeight is the relative weight of one palette color.
type ColorWeight struct {
	// Color is one of white, blue, red or yellow.
	Color string `json:"color"`

	// Weight must not be negative.
	Weight float64 `json:"weight"`
}
