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

	"sigs.k8s.io/yaml"
)

// LoadPartitionArgs decodes YAML (or JSON) into PartitionArgs, rejecting
// unknown fields, then applies defaults and validates the result.
func LoadPartitionArgs(data []byte) (*PartitionArgs, error) {
	args := &PartitionArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", PartitionArgsKind, err)
	}

	if args.APIVersion != "" && args.APIVersion != SchemeGroupVersion.String() {
		return nil, fmt.Errorf("want apiVersion %s, got %s", SchemeGroupVersion, args.APIVersion)
	}
	if args.Kind != "" && args.Kind != PartitionArgsKind {
		return nil, fmt.Errorf("want kind %s, got %s", PartitionArgsKind, args.Kind)
	}
	args.SetGroupVersionKind(SchemeGroupVersion.WithKind(PartitionArgsKind))

	SetDefaults_PartitionArgs(args)
	if err := ValidatePartitionArgs(nil, args); err != nil {
		return nil, err
	}
	return args, nil
}
