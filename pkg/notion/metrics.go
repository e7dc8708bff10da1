package notion

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for Notion client operations.
var (
	notionQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notion_queries_total",
		Help: "Total database query requests by status",
	}, []string{"status"})

	notionQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "notion_query_duration_seconds",
		Help:    "Database query request duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	})

	notionErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notion_errors_total",
		Help: "Total transport errors by class",
	}, []string{"class"})

	notionPagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notion_pages_fetched_total",
		Help: "Total result pages fetched across all queries",
	})

	notionRecordsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notion_records_total",
		Help: "Total raw records received from the database",
	})

	notionRecordsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notion_records_skipped_total",
		Help: "Records dropped during parsing by reason",
	}, []string{"reason"})

	notionIngredientsParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notion_ingredients_parsed_total",
		Help: "Records successfully parsed into ingredients",
	})
)
