package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/shop-backoffice/internal/app/api"
	orderexport "github.com/Apurer/shop-backoffice/internal/domains/orders/adapters/export"
	ordertypes "github.com/Apurer/shop-backoffice/internal/domains/orders/application/types"
	platformobservability "github.com/Apurer/shop-backoffice/internal/platform/observability"
)

func main() {
	output := flag.String("o", "-", "output file, - for stdout")
	search := flag.String("search", "", "customer name substring")
	status := flag.String("status", "all", "order status filter")
	timeout := flag.Duration("timeout", 30*time.Second, "overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Settings{
		ServiceName:     "shop-backoffice-orders-export",
		Environment:     cfg.Environment,
		LogFormat:       "text",
		LogOutput:       os.Stderr,
		TracingDisabled: true,
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()
	logger := instruments.Logger

	stores, closeStores, err := api.OpenStores(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStores()
	if stores.Driver == api.DriverMemory {
		logger.Warn("exporting from an empty in-memory store; set STORE_DRIVER to sqlite or postgres")
	}

	views, err := api.NewOrderService(stores, instruments).ListOrders(ctx, ordertypes.ListFilter{Search: *search, Status: *status})
	if err != nil {
		log.Fatalf("failed to list orders: %v", err)
	}

	var w io.Writer = os.Stdout
	if *output != "-" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatalf("failed to create %s: %v", *output, err)
		}
		defer file.Close()
		w = file
	}
	if err := orderexport.WriteCSV(w, views); err != nil {
		log.Fatalf("failed to write export: %v", err)
	}
	logger.Info("orders export completed", slog.Int("rows", len(views)), slog.String("output", *output))
}
