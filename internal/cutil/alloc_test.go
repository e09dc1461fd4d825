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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPtrArray(t *testing.T, l int) *CPtrArray {
	t.Helper()
	arr, err := NewCPtrArray(l)
	require.NoError(t, err)

	return arr
}

func newTestStrArray(t *testing.T, strs []string) *CStringArray {
	t.Helper()
	arr, err := NewCStringArray(strs)
	require.NoError(t, err)

	return arr
}

func ptrView(t *testing.T, a *CPtrArray) *PtrArray {
	t.Helper()
	v, err := a.View()
	require.NoError(t, err)

	return v
}

func strView(t *testing.T, a *CStringArray) *StrArray {
	t.Helper()
	v, err := a.View()
	require.NoError(t, err)

	return v
}

func TestCStringArray(t *testing.T) {
	t.Parallel()

	arr := newTestStrArray(t, []string{"one", "two"})
	assert.Equal(t, 2, arr.Len())
	assert.NotNil(t, arr.Pointer())
	assert.Equal(t, []string{"one", "two"}, strView(t, arr).Strings())

	arr.Free()
	assert.Zero(t, arr.Pointer())
	assert.Zero(t, arr.Len())
	// a second Free is a no-op
	arr.Free()
	assert.Zero(t, strView(t, arr).Len())
}

func TestCPtrArray(t *testing.T) {
	t.Parallel()

	arr := newTestPtrArray(t, 2)
	defer arr.Free()

	assert.Equal(t, []uintptr{0, 0}, ptrView(t, arr).Uintptrs())
	arr.Set(1, 0x10)
	assert.Equal(t, uintptr(0x10), PtrArrAt(arr.Pointer(), 1))
	assert.Panics(t, func() { arr.Set(2, 0x20) })

	cstr := CString("c")
	defer Free(unsafe.Pointer(cstr))
	arr.SetPtr(0, unsafe.Pointer(cstr))
	assert.Equal(t, PtrToUintptr(unsafe.Pointer(cstr)), PtrArrAt(arr.Pointer(), 0))
	assert.Equal(t, []string{"c"}, StrArrToStringSlice(CharPtrPtr(arr.Pointer()), 1))
}

func TestCArrayInvalidLength(t *testing.T) {
	t.Parallel()

	tooLong := maxLength
	tooLong++

	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "empty", length: 0},
		{name: "single", length: 1},
		{name: "negative", length: -1, wantErr: ErrInvalidLength},
		{name: "very negative", length: -100, wantErr: ErrInvalidLength},
		{name: "length above C int", length: tooLong, wantErr: ErrInvalidLength},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			arr, err := NewCPtrArray(tt.length)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, arr)

				return
			}
			require.NoError(t, err)
			defer arr.Free()

			view, err := arr.View()
			require.NoError(t, err)
			assert.Equal(t, tt.length, view.Len())
			assert.Len(t, view.Uintptrs(), tt.length)
		})
	}
}

func TestVarArgsPtr(t *testing.T) {
	t.Parallel()

	v := new(int)
	buf := []byte("xyz")
	m := map[string]int{}
	ch := make(chan int)

	list, err := VarArgsPtr(v, buf, unsafe.Pointer(v), uintptr(0x42), m, ch)
	require.NoError(t, err)
	defer Free(list)

	arr, err := NewPtrArray(list, 6)
	require.NoError(t, err)
	got := arr.Uintptrs()
	assert.Equal(t, uintptr(unsafe.Pointer(v)), got[0])
	assert.Equal(t, uintptr(unsafe.Pointer(&buf[0])), got[1])
	assert.Equal(t, uintptr(unsafe.Pointer(v)), got[2])
	assert.Equal(t, uintptr(0x42), got[3])
	assert.NotZero(t, got[4])
	assert.NotZero(t, got[5])
}

func TestVarArgsPtrUnsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []interface{}
	}{
		{name: "int", args: []interface{}{new(int), 3}},
		{name: "string", args: []interface{}{"str"}},
		{name: "nil", args: []interface{}{nil}},
		{name: "struct", args: []interface{}{struct{}{}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			list, err := VarArgsPtr(tt.args...)
			assert.ErrorIs(t, err, ErrUnsupportedType)
			assert.ErrorContains(t, err, "argument")
			assert.Zero(t, list)
		})
	}
}
