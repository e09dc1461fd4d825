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
	"github.com/prometheus/client_golang/prometheus"
)

var outOfRange = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cutil",
	Name:      "out_of_range_total",
	Help:      "Number of array reads rejected because the index was out of range.",
}, []string{"op"})

// RegisterMetrics registers the package metrics with r.
func RegisterMetrics(r prometheus.Registerer) error {
	return r.Register(outOfRange)
}
