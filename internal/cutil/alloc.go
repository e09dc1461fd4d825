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

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/ceph/go-cptr/internal/util/log"
)

// CString copies s into C memory. Release it with Free.
func CString(s string) CharPtr {
	return CharPtr(unsafe.Pointer(C.CString(s)))
}

// Free releases C memory allocated by this package.
func Free(p unsafe.Pointer) {
	C.free(p)
}

// CStringArray manages a C `char*` array and the strings it points to.
type CStringArray struct {
	// carr represents an array of char* C memory
	carr unsafe.Pointer
	// length of the array (in elements)
	length int
}

// callocPtrs allocates a zeroed C array of l pointer sized entries.
func callocPtrs(l int) (unsafe.Pointer, error) {
	if l < 0 || l > maxLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, l)
	}
	p := C.calloc(C.size_t(l), C.size_t(PtrSize))
	if p == nil && l > 0 {
		return nil, fmt.Errorf("%w: failed to allocate %d entries", ErrInvalidLength, l)
	}

	return p, nil
}

// NewCStringArray copies strs into a new C `char*` array.
func NewCStringArray(strs []string) (*CStringArray, error) {
	carr, err := callocPtrs(len(strs))
	if err != nil {
		return nil, fmt.Errorf("failed to create C string array: %w", err)
	}
	a := &CStringArray{
		carr:   carr,
		length: len(strs),
	}
	elems := unsafe.Slice((**C.char)(a.carr), a.length)
	for i, s := range strs {
		elems[i] = C.CString(s)
	}

	return a, nil
}

// Pointer returns the base address of the array.
func (a *CStringArray) Pointer() CharPtrPtr {
	return CharPtrPtr(a.carr)
}

// Len returns the number of entries in the array.
func (a *CStringArray) Len() int {
	return a.length
}

// View returns a bounds checked view of the array. It is valid until Free.
func (a *CStringArray) View() (*StrArray, error) {
	return NewStrArray(a.Pointer(), a.length)
}

// Free the strings and the array.
func (a *CStringArray) Free() {
	if a.carr == nil {
		return
	}
	for _, s := range unsafe.Slice((**C.char)(a.carr), a.length) {
		C.free(unsafe.Pointer(s))
	}
	C.free(a.carr)
	a.carr = nil
	a.length = 0
}

// CPtrArray manages a zeroed C `void*` array. The pointed to memory is not
// owned by the array.
type CPtrArray struct {
	carr   unsafe.Pointer
	length int
}

// NewCPtrArray allocates a C `void*` array of l NULL entries.
func NewCPtrArray(l int) (*CPtrArray, error) {
	carr, err := callocPtrs(l)
	if err != nil {
		return nil, fmt.Errorf("failed to create C pointer array: %w", err)
	}

	return &CPtrArray{carr: carr, length: l}, nil
}

// Set stores p at position i. It panics if i is out of range.
func (a *CPtrArray) Set(i int, p uintptr) {
	unsafe.Slice((*C.uintptr_t)(a.carr), a.length)[i] = C.uintptr_t(p)
}

// SetPtr stores the C pointer p at position i. p must point to C memory.
// It panics if i is out of range.
func (a *CPtrArray) SetPtr(i int, p unsafe.Pointer) {
	a.Set(i, cPtrToUintptr(p))
}

// Pointer returns the base address of the array.
func (a *CPtrArray) Pointer() unsafe.Pointer {
	return a.carr
}

// Len returns the number of entries in the array.
func (a *CPtrArray) Len() int {
	return a.length
}

// View returns a bounds checked view of the array. It is valid until Free.
func (a *CPtrArray) View() (*PtrArray, error) {
	return NewPtrArray(a.carr, a.length)
}

// Free the array.
func (a *CPtrArray) Free() {
	if a.carr != nil {
		C.free(a.carr)
		a.carr = nil
		a.length = 0
	}
}

// VarArgsPtr packs args into a C `uintptr_t` array suitable for a C variadic
// argument list. Only chan, map, pointer, unsafe.Pointer, func, slice and
// uintptr values are accepted. Go memory referenced this way is not kept
// alive by the array.
//
// Free the result after use.
func VarArgsPtr(args ...interface{}) (unsafe.Pointer, error) {
	list, err := callocPtrs(len(args))
	if err != nil {
		return nil, err
	}
	vals := unsafe.Slice((*C.uintptr_t)(list), len(args))
	for i, arg := range args {
		val, err := argToUintptr(arg)
		if err != nil {
			C.free(list)
			log.DebugLogMsg("failed to pack argument %d: %v", i, err)

			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		vals[i] = C.uintptr_t(val)
	}

	return list, nil
}

func argToUintptr(arg interface{}) (uintptr, error) {
	ref := reflect.ValueOf(arg)
	switch ref.Kind() {
	case reflect.Chan, reflect.Map, reflect.Ptr, reflect.UnsafePointer, reflect.Func, reflect.Slice:
		return ref.Pointer(), nil
	case reflect.Uintptr:
		return uintptr(ref.Uint()), nil
	default:
		return 0, fmt.Errorf("%w: can not cast %T %#v to uintptr", ErrUnsupportedType, arg, arg)
	}
}
