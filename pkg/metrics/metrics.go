// Package metrics provides the centralized Prometheus metrics registry for
// the Notion ingredient client. All metrics are defined in the notion package
// next to the code they instrument.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in the notion package.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Query Metrics (pkg/notion):
//   - notion_queries_total{status} (Counter): Database query requests by HTTP status
//     (plus "network_error" and "decode_error" outcomes)
//   - notion_query_duration_seconds (Histogram): Query round-trip duration
//   - notion_errors_total{class} (Counter): Transport errors by class
//     (client, server, rate_limit, network)
//
// Ingest Metrics (pkg/notion):
//   - notion_pages_fetched_total (Counter): Result pages fetched
//   - notion_records_total (Counter): Raw records received
//   - notion_records_skipped_total{reason} (Counter): Records dropped during
//     parsing (missing_required_field, invalid_enum, malformed_record)
//   - notion_ingredients_parsed_total (Counter): Records parsed into ingredients
//
// Example Prometheus Queries:
//
//   # Record Skip Rate
//   sum(rate(notion_records_skipped_total[5m])) /
//   sum(rate(notion_records_total[5m]))
//
//   # Transport Error Rate
//   rate(notion_errors_total[5m])
//
//   # P95 Query Latency
//   histogram_quantile(0.95, rate(notion_query_duration_seconds_bucket[5m]))
