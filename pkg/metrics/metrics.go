// Package metrics instrumentación Prometheus de la aplicación.
//
// Expone los contadores de resultado de las operaciones masivas (cada lote
// emite exactamente un resumen de ok/failed) y el total de filas tocadas por
// el recálculo de markup. Montar el endpoint una vez en cmd/api/main.go:
//
//	app.Get("/metrics", adaptor.HTTPHandlerFunc(metrics.Handler()))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// BulkItems cuenta ítems de operaciones masivas por operación y resultado.
	BulkItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storehouse",
			Subsystem: "bulk",
			Name:      "items_total",
			Help:      "Ítems procesados en operaciones masivas.",
		},
		[]string{"operation", "outcome"}, // insert|update|delete × ok|failed
	)

	// MarkupRowsUpdated cuenta filas afectadas por recálculos de markup.
	MarkupRowsUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storehouse",
			Subsystem: "markup",
			Name:      "rows_updated_total",
			Help:      "Filas actualizadas por el recálculo masivo de markup.",
		},
	)

	// MarkupRequests cuenta llamadas de recálculo por resultado.
	MarkupRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storehouse",
			Subsystem: "markup",
			Name:      "requests_total",
			Help:      "Llamadas al recálculo masivo de markup.",
		},
		[]string{"result"}, // ok | rejected | error
	)
)

// DefaultRegistry registro Prometheus de la aplicación.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Métricas de runtime Go y del proceso
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(BulkItems, MarkupRowsUpdated, MarkupRequests)
}

// RecordBulk registra el resumen de un lote.
func RecordBulk(operation string, ok, failed int) {
	BulkItems.WithLabelValues(operation, "ok").Add(float64(ok))
	BulkItems.WithLabelValues(operation, "failed").Add(float64(failed))
}

// Handler devuelve el handler HTTP de la página /metrics.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
