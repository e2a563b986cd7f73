// meta/meta.go
package meta

// OUT_DIR is where run records are written unless -out is given.
const OUT_DIR = "experiments/runs"

// METRICS_PATH is the Prometheus scrape path served with -metrics-addr.
const METRICS_PATH = "/metrics"

// SHUTDOWN_TIMEOUT bounds the metrics server shutdown, in seconds.
const SHUTDOWN_TIMEOUT = 5
