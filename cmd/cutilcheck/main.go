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
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/ceph/go-cptr/internal/cutil"
	"github.com/ceph/go-cptr/internal/util"
	"github.com/ceph/go-cptr/internal/util/log"

	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
)

var (
	conf util.Config

	defaultStrings = []string{"a", "bb", "ccc"}
)

func parseFlags() {
	flag.BoolVar(&conf.Version, "version", false, "Print cutilcheck version information")
	flag.BoolVar(&conf.Serve, "serve", false, "keep serving metrics after the check completed")
	flag.StringVar(&conf.MetricsIP, "metricsip", "", "IP address for metrics requests, defaults to POD_IP")
	flag.IntVar(&conf.MetricsPort, "metricsport", 8080, "TCP port for metrics requests")
	flag.StringVar(&conf.MetricsPath, "metricspath", "/metrics", "path of prometheus endpoint where metrics will be available")
	flag.BoolVar(&conf.EnableProfiling, "enableprofiling", false, "enable go profiling on the metrics endpoint")

	klog.InitFlags(nil)
	if err := flag.Set("logtostderr", "true"); err != nil {
		klog.Exitf("failed to set logtostderr flag: %v", err)
	}
	flag.Parse()
}

func printVersion() {
	fmt.Println("cutilcheck Version:", util.Version)
	fmt.Println("Git Commit:", util.GitCommit)
	fmt.Println("Go Version:", runtime.Version())
	fmt.Println("Compiler:", runtime.Compiler)
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Pointer width: %d bits\n", cutil.PtrSize*8)
	if kv, err := util.GetKernelVersion(); err == nil {
		fmt.Println("Kernel:", kv)
	}
}

func main() {
	parseFlags()
	if conf.Version {
		printVersion()
		os.Exit(0)
	}
	log.DefaultLog("cutilcheck version: %s and Git version: %s", util.Version, util.GitCommit)

	reg := prometheus.NewRegistry()
	if err := cutil.RegisterMetrics(reg); err != nil {
		klog.Fatalln(err)
	}

	strs := flag.Args()
	if len(strs) == 0 {
		strs = defaultStrings
	}

	ctx := context.WithValue(context.Background(), log.CtxKey, os.Getpid())
	if err := runCheck(ctx, strs, os.Stdout); err != nil {
		log.ErrorLog(ctx, "check failed: %v", err)
		os.Exit(1)
	}

	if !conf.Serve {
		return
	}
	if conf.MetricsIP == "" {
		conf.MetricsIP = os.Getenv("POD_IP")
	}
	if conf.MetricsIP == "" {
		log.WarningLogMsg("missing POD_IP env var defaulting to 0.0.0.0")
		conf.MetricsIP = "0.0.0.0"
	}
	if err := util.ValidateURL(&conf); err != nil {
		klog.Fatalln(err)
	}
	util.StartMetricsServer(&conf, reg)
}
