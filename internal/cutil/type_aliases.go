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

// Package cutil provides access to C owned pointer arrays for cgo callers.
//
// The unchecked accessors mirror the C helpers one to one and leave bounds
// to the caller. StrArray and PtrArray carry a caller supplied length and
// reject out of range indices with ErrIndexOutOfRange instead.
package cutil

import (
	"unsafe"
)

// This section contains types that are basically just unsafe.Pointer but have
// specific types to help "self document" what the underlying pointer is
// really meant to represent.

// CharPtrPtr is an unsafe pointer wrapping C's `char**`.
type CharPtrPtr unsafe.Pointer

// CharPtr is an unsafe pointer wrapping C's `char*`.
type CharPtr unsafe.Pointer

// PtrSize is the pointer width of the target platform in bytes.
const PtrSize = int(unsafe.Sizeof(uintptr(0)))
