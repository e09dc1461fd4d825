/*
Copyright 2024 The Ceph-CSI Authors.

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

package util

import (
	"errors"
	"fmt"
)

type pairError struct {
	first  error
	second error
}

func (e pairError) Error() string {
	return fmt.Sprintf("%v: %v", e.first, e.second)
}

// Is checks if target error is wrapped in the first error.
func (e pairError) Is(target error) bool {
	return errors.Is(e.first, target)
}

// Unwrap returns the second error.
func (e pairError) Unwrap() error {
	return e.second
}

// JoinErrors combines two errors. Of the returned error, Is() follows the first
// branch, Unwrap() follows the second branch. A sentinel passed as e1 and a
// typed detail passed as e2 are thus reachable through errors.Is and
// errors.As respectively.
func JoinErrors(e1, e2 error) error {
	return pairError{e1, e2}
}
