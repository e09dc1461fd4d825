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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/ceph/go-cptr/internal/cutil"
	"github.com/ceph/go-cptr/internal/util/log"
)

var errMismatch = errors.New("accessor mismatch")

// runCheck copies strs into C memory and reads them back through the
// accessors, writing one line per element to w.
func runCheck(ctx context.Context, strs []string, w io.Writer) error {
	carr, err := cutil.NewCStringArray(strs)
	if err != nil {
		return err
	}
	defer carr.Free()

	sa, err := cutil.NewStrArray(carr.Pointer(), carr.Len())
	if err != nil {
		return err
	}

	// the same char* values again, this time as opaque void* entries
	parr, err := cutil.NewCPtrArray(sa.Len())
	if err != nil {
		return err
	}
	defer parr.Free()
	for i := 0; i < sa.Len(); i++ {
		p, atErr := sa.At(i)
		if atErr != nil {
			return atErr
		}
		parr.SetPtr(i, unsafe.Pointer(p))
	}
	pa, err := parr.View()
	if err != nil {
		return err
	}

	for i, want := range strs {
		got, err := sa.String(i)
		if err != nil {
			return err
		}
		if got != want {
			return fmt.Errorf("%w: element %d is %q, expected %q", errMismatch, i, got, want)
		}

		p, err := sa.At(i)
		if err != nil {
			return err
		}
		u, err := pa.At(i)
		if err != nil {
			return err
		}
		if cutil.VoidPtr(u) != unsafe.Pointer(p) {
			return fmt.Errorf("%w: element %d round trips to %#x", errMismatch, i, u)
		}

		log.UsefulLog(ctx, "element %d at %#x verified", i, u)
		fmt.Fprintf(w, "%d\t%#x\t%q\n", i, u, got)
	}

	_, err = sa.At(len(strs))
	if !errors.Is(err, cutil.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: index %d was not rejected", errMismatch, len(strs))
	}
	fmt.Fprintf(w, "rejected: %v\n", err)

	return nil
}
