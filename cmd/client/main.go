package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-address-book/internal/adapter"
	"github.com/MKhiriev/go-address-book/internal/client"
	"github.com/MKhiriev/go-address-book/internal/config"
	"github.com/MKhiriev/go-address-book/internal/logger"
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger(cfg.SessionFile)

	serverAdapter, err := adapter.NewHTTPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Err(err).Msg("create adapter")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(serverAdapter, cfg, os.Stdout, log)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", client.UserMessage(err))
		stop()
		os.Exit(1)
	}
}
