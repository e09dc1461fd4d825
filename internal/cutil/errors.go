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

package cutil

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index is negative or not below
	// the length of the array.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNilArray is returned when a non-empty array has a NULL base address.
	ErrNilArray = errors.New("nil array")
	// ErrInvalidLength is returned for negative lengths and for lengths that
	// can not be indexed with a C int.
	ErrInvalidLength = errors.New("invalid array length")
	// ErrUnsupportedType is returned by VarArgsPtr for values that can not be
	// represented as a uintptr.
	ErrUnsupportedType = errors.New("unsupported argument type")
)

// RangeError describes a rejected index. It is joined with
// ErrIndexOutOfRange, use errors.As to retrieve it.
type RangeError struct {
	Op     string
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d, length %d", e.Op, e.Index, e.Length)
}
