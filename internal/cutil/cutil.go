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
#include <stdlib.h>
#include <string.h>
#include "cutil.h"
*/
import "C"

import (
	"unsafe"
)

// StrArrAt returns the n-th element of the C `char*` array arr.
// n must be within the bounds of arr, otherwise the behaviour is undefined.
func StrArrAt(arr CharPtrPtr, n int) CharPtr {
	return CharPtr(unsafe.Pointer(C.StrArrAt((**C.char)(unsafe.Pointer(arr)), C.int(n))))
}

// PtrArrAt returns the n-th element of the C `void*` array arr as an integer.
// n must be within the bounds of arr, otherwise the behaviour is undefined.
func PtrArrAt(arr unsafe.Pointer, n int) uintptr {
	return uintptr(C.PtrArrAt(arr, C.int(n)))
}

// PtrToUintptr returns the address held by ptr as an integer. Any pointer is
// accepted, including pointers to Go memory that holds Go pointers.
func PtrToUintptr(ptr unsafe.Pointer) uintptr {
	return uintptr(ptr)
}

// cPtrToUintptr is PtrToUintptr for pointers to C memory only. ptr is passed
// to C, so the cgo pointer passing rules apply to it.
func cPtrToUintptr(ptr unsafe.Pointer) uintptr {
	return uintptr(C.PtrToIntptr(ptr))
}

// VoidPtr casts a uintptr value to an unsafe.Pointer value in order to use it
// directly as a void* argument in a C function call.
// CAUTION: NEVER store the result in a variable, or the Go GC could panic.
func VoidPtr(i uintptr) unsafe.Pointer {
	var nullPtr unsafe.Pointer
	// It's not possible to cast uintptr directly to unsafe.Pointer. Therefore we
	// cast a null pointer to uintptr and apply pointer arithmetic on it, which
	// allows us to cast it back to unsafe.Pointer.
	return unsafe.Pointer(uintptr(nullPtr) + i)
}

// StrArrToByteSlice copies the first n strings of the C `char*` array arr.
func StrArrToByteSlice(arr CharPtrPtr, n int) [][]byte {
	slices := make([][]byte, n)
	for i := 0; i < n; i++ {
		slices[i] = goBytes(StrArrAt(arr, i))
	}

	return slices
}

// StrArrToStringSlice copies the first n strings of the C `char*` array arr.
func StrArrToStringSlice(arr CharPtrPtr, n int) []string {
	slices := make([]string, n)
	for i := 0; i < n; i++ {
		slices[i] = goString(StrArrAt(arr, i))
	}

	return slices
}

// goBytes copies a NUL terminated C string. NULL yields nil.
func goBytes(s CharPtr) []byte {
	if s == nil {
		return nil
	}
	l := C.strlen((*C.char)(s))

	return C.GoBytes(unsafe.Pointer(s), C.int(l))
}

// goString copies a NUL terminated C string. NULL yields "".
func goString(s CharPtr) string {
	if s == nil {
		return ""
	}

	return C.GoString((*C.char)(s))
}
