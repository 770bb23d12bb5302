package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsImported is a Prometheus counter for tracking the total number of products imported from CSV.
	ProductsImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_imported_total",
		Help: "The total number of products imported from CSV",
	})

	// ImportRowsSkipped is a Prometheus counter for tracking CSV rows skipped during import.
	ImportRowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "import_rows_skipped_total",
		Help: "The total number of CSV rows skipped during import",
	})

	// ProductsExported is a Prometheus counter for tracking the total number of products exported to CSV.
	ProductsExported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_exported_total",
		Help: "The total number of products exported to CSV",
	})

	// AnalysesRun is a Prometheus counter for tracking the total number of analysis reports computed.
	AnalysesRun = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyses_run_total",
		Help: "The total number of analysis reports computed",
	})
)
