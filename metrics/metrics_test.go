package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/Fantom-foundation/Statlab/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	var _ session.Observer = m

	m.Generated("linear-correlation", session.Initial)
	m.Generated("linear-correlation", session.Regenerate)
	m.Generated("linear-correlation", session.Regenerate)
	m.InputError("parse")
	m.SetSessions(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues("linear-correlation", "initial")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues("linear-correlation", "regenerate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inputErrors.WithLabelValues("parse")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.Generated("simpson", session.Initial)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `statlab_dataset_generations_total{scenario="simpson",trigger="initial"} 1`)
}
