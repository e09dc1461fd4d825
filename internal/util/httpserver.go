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
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"net/url"
	runtime_pprof "runtime/pprof"
	"strconv"
	"strings"

	"github.com/ceph/go-cptr/internal/util/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ValidateURL validates the metrics path.
func ValidateURL(c *Config) error {
	if !strings.HasPrefix(c.MetricsPath, "/") {
		return fmt.Errorf("metrics path %q must start with \"/\"", c.MetricsPath)
	}
	_, err := url.Parse(c.MetricsPath)

	return err
}

// NewServeMux returns a mux serving the metrics gathered by g on
// c.MetricsPath, plus the pprof handlers when c.EnableProfiling is set.
func NewServeMux(c *Config, g prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(c.MetricsPath, promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	if c.EnableProfiling {
		enableProfiling(mux)
	}

	return mux
}

// StartMetricsServer starts http server.
func StartMetricsServer(c *Config, g prometheus.Gatherer) {
	addr := net.JoinHostPort(c.MetricsIP, strconv.Itoa(c.MetricsPort))
	log.DefaultLog("serving metrics on %s%s", addr, c.MetricsPath)

	//nolint:gosec // TODO: add support for passing timeouts
	err := http.ListenAndServe(addr, NewServeMux(c, g))
	if err != nil {
		log.FatalLogMsg("failed to listen on address %v: %s", addr, err)
	}
}

func addPath(mux *http.ServeMux, name string, handler http.Handler) {
	mux.Handle("/debug/pprof/"+name, handler)
	log.DebugLogMsg("DEBUG: registered profiling handler on /debug/pprof/%s\n", name)
}

func enableProfiling(mux *http.ServeMux) {
	for _, profile := range runtime_pprof.Profiles() {
		name := profile.Name()
		addPath(mux, name, pprof.Handler(name))
	}

	// static profiles as listed in net/http/pprof/pprof.go:init()
	addPath(mux, "cmdline", http.HandlerFunc(pprof.Cmdline))
	addPath(mux, "profile", http.HandlerFunc(pprof.Profile))
	addPath(mux, "symbol", http.HandlerFunc(pprof.Symbol))
	addPath(mux, "trace", http.HandlerFunc(pprof.Trace))
}
