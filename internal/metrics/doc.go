// Package metrics defines the Recorder abstraction used to instrument
// generation, preview rendering and document mutations, with a Prometheus
// implementation and a no-op default.
package metrics
