package metrics

import "time"

// ResultLabel enumerates outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFatal   ResultLabel = "fatal"
)

// Recorder defines observability hooks for generation, rendering and
// mutation activity. Implementations may forward to Prometheus; the
// NoopRecorder allows optional injection.
type Recorder interface {
	ObserveGenerateDuration(d time.Duration)
	IncGenerateOutcome(result ResultLabel)
	ObserveRenderDuration(d time.Duration)
	IncMutation(op string, condition string)
	SetPreviewClients(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerateDuration(time.Duration) {}
func (NoopRecorder) IncGenerateOutcome(ResultLabel)        {}
func (NoopRecorder) ObserveRenderDuration(time.Duration)   {}
func (NoopRecorder) IncMutation(string, string)            {}
func (NoopRecorder) SetPreviewClients(int)                 {}
