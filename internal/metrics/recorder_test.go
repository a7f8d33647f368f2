package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGenerateDuration(time.Second)
	r.IncGenerateOutcome(ResultSuccess)
	r.ObserveRenderDuration(time.Millisecond)
	r.IncMutation("add_section", "applied")
	r.SetPreviewClients(3)
}

func TestPrometheusRecorderRegisters(t *testing.T) {
	reg := prom.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.ObserveGenerateDuration(250 * time.Millisecond)
	r.IncGenerateOutcome(ResultSuccess)
	r.IncMutation("add_section", "applied")
	r.IncMutation("reorder_sections", "clamped")
	r.SetPreviewClients(2)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["siteforge_generate_duration_seconds"])
	assert.True(t, names["siteforge_mutations_total"])
	assert.True(t, names["siteforge_preview_clients"])
}
