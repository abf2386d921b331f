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
	"k8s.io/utils/ptr"
)

var (
	defaultMinInteriorLines     int32   = 3
	defaultMaxInteriorLines     int32   = 10
	defaultMinLineSpacing       float64 = 0.05
	defaultMinToggles           int32   = 2
	defaultMaxToggles           int32   = 4
	defaultMaxPlacementAttempts int32   = 10000
	defaultExpectedMutations    float64 = 10
	defaultColor                        = "white"

	defaultColorWeights = []ColorWeight{
		{Color: "white", Weight: 0.7},
		{Color: "blue", Weight: 0.1},
		{Color: "red", Weight: 0.1},
		{Color: "yellow", Weight: 0.1},
	}
)

// SetDefaults_PartitionArgs sets the default parameters for the grid-partition operators.
func SetDefaults_PartitionArgs(obj *PartitionArgs) {
	if obj.MinInteriorLines == nil {
		obj.MinInteriorLines = ptr.To(defaultMinInteriorLines)
	}
	if obj.MaxInteriorLines == nil {
		obj.MaxInteriorLines = ptr.To(defaultMaxInteriorLines)
	}
	if obj.MinLineSpacing == nil {
		obj.MinLineSpacing = ptr.To(defaultMinLineSpacing)
	}
	if obj.MinToggles == nil {
		obj.MinToggles = ptr.To(defaultMinToggles)
	}
	if obj.MaxToggles == nil {
		obj.MaxToggles = ptr.To(defaultMaxToggles)
	}
	if obj.MaxPlacementAttempts == nil {
		obj.MaxPlacementAttempts = ptr.To(defaultMaxPlacementAttempts)
	}
	if obj.ExpectedMutations == nil {
		obj.ExpectedMutations = ptr.To(defaultExpectedMutations)
	}
	if obj.DefaultColor == nil {
		obj.DefaultColor = ptr.To(defaultColor)
	}
	if len(obj.ColorWeights) == 0 {
		obj.ColorWeights = make([]ColorWeight, len(defaultColorWeights))
		copy(obj.ColorWeights, defaultColorWeights)
	}
}
