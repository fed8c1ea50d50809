// Package main cmd/netstab/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/bwoff11/net-stab/pkg/api"
	"github.com/bwoff11/net-stab/pkg/config"
	"github.com/bwoff11/net-stab/pkg/history"
	"github.com/bwoff11/net-stab/pkg/lifecycle"
	"github.com/bwoff11/net-stab/pkg/metrics"
	"github.com/bwoff11/net-stab/pkg/monitor"
	"github.com/bwoff11/net-stab/pkg/probe"
	"github.com/bwoff11/net-stab/pkg/sysinfo"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log.Printf("Starting netstab...")

	configPath := flag.String("config", "/etc/netstab/netstab.yaml", "Path to config file")
	flag.Parse()

	var cfg config.Config

	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("failed to create metrics: %w", err)
	}

	recorder := history.NewManager(0)
	apiServer := api.NewAPIServer(cfg.APIAddr, recorder)

	mon, err := monitor.New(&cfg, probe.NewRegistry(), m, sysinfo.NewProcReader(), recorder, apiServer)
	if err != nil {
		return fmt.Errorf("failed to create monitor: %w", err)
	}

	opts := lifecycle.ServerOptions{
		ServiceName: "netstab",
		Services: []lifecycle.Service{
			metrics.NewServer(cfg.ListenAddr, m.Registry()),
			apiServer,
			mon,
		},
	}

	if err := lifecycle.RunServer(context.Background(), &opts); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
