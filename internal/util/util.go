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
	"strings"

	"golang.org/x/sys/unix"
)

// variables which will be set during the build time.
var (
	// GitCommit tell the latest git commit image is built from.
	GitCommit string
	// Version of the cutilcheck binary.
	Version string
)

// Config holds the parameters list which can be configured.
type Config struct {
	// metrics related flags
	MetricsPath string // path of prometheus endpoint where metrics will be available
	MetricsIP   string // IP address the metrics endpoint listens on
	MetricsPort int    // TCP port for metrics requests

	EnableProfiling bool // flag to enable profiling
	Serve           bool // keep serving metrics after the check completes
	Version         bool // print version information and exit
}

// GetKernelVersion returns version of running kernel as a string.
func GetKernelVersion() (string, error) {
	utsname := unix.Utsname{}
	if err := unix.Uname(&utsname); err != nil {
		return "", err
	}

	return strings.TrimRight(string(utsname.Release[:]), "\x00"), nil
}
