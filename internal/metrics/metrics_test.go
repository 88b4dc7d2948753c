package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestMutationsCounter(t *testing.T) {
	before := testutil.ToFloat64(Mutations.WithLabelValues("create_team", "ok"))
	Mutations.WithLabelValues("create_team", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(Mutations.WithLabelValues("create_team", "ok")))
}

func TestCollectorsAreGathered(t *testing.T) {
	Register()
	StateWrites.Inc()

	families, err := prometheus.DefaultGatherer.Gather()
	assert.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["coach_state_writes_total"])
}
