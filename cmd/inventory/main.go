package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/iyhunko/inventory-console/internal/config"
	"github.com/iyhunko/inventory-console/internal/console"
	"github.com/iyhunko/inventory-console/internal/csvio"
	"github.com/iyhunko/inventory-console/internal/logger"
	"github.com/iyhunko/inventory-console/internal/metrics"
	"github.com/iyhunko/inventory-console/internal/service"
	"github.com/iyhunko/inventory-console/internal/store"
	"github.com/iyhunko/inventory-console/internal/store/sqlite"
)

func main() {
	conf, err := config.LoadFromEnv()
	handleErr("loading config", err)

	logger.InitJSONLogger(conf.DebugMode)

	ctx := context.Background()
	db, err := sqlite.StartDB(ctx, conf.Database)
	handleErr("starting database", err)
	defer db.Close()

	productStore := sqlite.NewProductStore(db)
	inventoryService := service.NewInventoryService(productStore, csvio.NewImporter(), csvio.NewExporter())

	seedStore(ctx, conf, inventoryService, productStore)

	metrics.StartMetricsServer(conf)

	menu := console.New(inventoryService, os.Stdin, os.Stdout, conf.Import.Path, conf.Export.Path)
	err = menu.Run(ctx)
	handleErr("running console", err)
}

// seedStore imports the configured CSV file on first run. A store that
// already holds products is left alone, and a missing seed file is not an
// error.
func seedStore(ctx context.Context, conf *config.Config, svc *service.InventoryService, productStore store.ProductStore) {
	count, err := productStore.Count(ctx)
	handleErr("counting products", err)
	if count > 0 {
		return
	}

	if _, err := os.Stat(conf.Import.Path); errors.Is(err, os.ErrNotExist) {
		slog.Info("no seed CSV found, starting with an empty inventory", slog.String("path", conf.Import.Path))
		return
	}

	imported, skipped, err := svc.ImportCSV(ctx, conf.Import.Path)
	handleErr("importing seed CSV", err)
	slog.Info("seeded inventory from CSV", slog.String("path", conf.Import.Path), slog.Int("imported", imported), slog.Int("skipped", skipped))
}

func handleErr(msg string, err error) {
	if err != nil {
		log.Fatalf("error while %s: %v", msg, err)
	}
}
