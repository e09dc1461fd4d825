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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: the counter is package global.
func TestOutOfRangeMetric(t *testing.T) {
	fixture := newTestPtrArray(t, 1)
	defer fixture.Free()
	arr := ptrView(t, fixture)

	counter := outOfRange.WithLabelValues("PtrArray.At")
	before := testutil.ToFloat64(counter)

	_, err := arr.At(0)
	require.NoError(t, err)
	_, err = arr.At(1)
	require.Error(t, err)
	_, err = arr.At(-1)
	require.Error(t, err)

	assert.InDelta(t, 2, testutil.ToFloat64(counter)-before, 0)
}

func TestRegisterMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	require.NoError(t, RegisterMetrics(reg))

	err := RegisterMetrics(reg)
	are := prometheus.AlreadyRegisteredError{}
	assert.True(t, errors.As(err, &are))
}
