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
	"fmt"
	"math"
	"unsafe"

	"github.com/ceph/go-cptr/internal/util"
	"github.com/ceph/go-cptr/internal/util/log"
)

// maxLength is the largest length whose indices all fit the C int taken by
// the accessor helpers.
const maxLength = math.MaxInt32

// StrArray is a bounds checked view of a C `char*` array. The caller that
// creates it guarantees the length and that the memory outlives every read;
// the view never frees or copies the array.
type StrArray struct {
	base   CharPtrPtr
	length int
}

// NewStrArray returns a view of the length elements starting at base.
func NewStrArray(base CharPtrPtr, length int) (*StrArray, error) {
	if err := checkArray(unsafe.Pointer(base), length); err != nil {
		return nil, fmt.Errorf("failed to create string array: %w", err)
	}

	return &StrArray{base: base, length: length}, nil
}

// Len returns the number of elements in the array.
func (a *StrArray) Len() int {
	return a.length
}

// At returns the pointer stored at index i.
func (a *StrArray) At(i int) (CharPtr, error) {
	if err := checkIndex("StrArray.At", i, a.length); err != nil {
		return nil, err
	}

	return StrArrAt(a.base, i), nil
}

// String returns a copy of the string stored at index i.
func (a *StrArray) String(i int) (string, error) {
	s, err := a.At(i)
	if err != nil {
		return "", err
	}

	return goString(s), nil
}

// Bytes returns a copy of the string stored at index i.
func (a *StrArray) Bytes(i int) ([]byte, error) {
	s, err := a.At(i)
	if err != nil {
		return nil, err
	}

	return goBytes(s), nil
}

// Strings copies all elements.
func (a *StrArray) Strings() []string {
	return StrArrToStringSlice(a.base, a.length)
}

// ByteSlices copies all elements.
func (a *StrArray) ByteSlices() [][]byte {
	return StrArrToByteSlice(a.base, a.length)
}

// PtrArray is a bounds checked view of a C `void*` array. Elements are handed
// out as opaque integers; the same ownership rules as for StrArray apply.
type PtrArray struct {
	base   unsafe.Pointer
	length int
}

// NewPtrArray returns a view of the length elements starting at base.
func NewPtrArray(base unsafe.Pointer, length int) (*PtrArray, error) {
	if err := checkArray(base, length); err != nil {
		return nil, fmt.Errorf("failed to create pointer array: %w", err)
	}

	return &PtrArray{base: base, length: length}, nil
}

// Len returns the number of elements in the array.
func (a *PtrArray) Len() int {
	return a.length
}

// At returns the pointer stored at index i as an integer.
func (a *PtrArray) At(i int) (uintptr, error) {
	if err := checkIndex("PtrArray.At", i, a.length); err != nil {
		return 0, err
	}

	return PtrArrAt(a.base, i), nil
}

// Uintptrs copies all elements.
func (a *PtrArray) Uintptrs() []uintptr {
	ptrs := make([]uintptr, a.length)
	for i := range ptrs {
		ptrs[i] = PtrArrAt(a.base, i)
	}

	return ptrs
}

func checkArray(base unsafe.Pointer, length int) error {
	switch {
	case length < 0 || length > maxLength:
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	case base == nil && length > 0:
		return ErrNilArray
	}

	return nil
}

func checkIndex(op string, i, length int) error {
	if i >= 0 && i < length {
		return nil
	}
	outOfRange.WithLabelValues(op).Inc()
	log.DebugLogMsg("%s: rejected index %d for array of length %d", op, i, length)

	return util.JoinErrors(ErrIndexOutOfRange, &RangeError{Op: op, Index: i, Length: length})
}
