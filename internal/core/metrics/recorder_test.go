package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecorder_Counters 测试指标计数
func TestRecorder_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg)
	require.NoError(t, err)

	r.ObserveResult(ResultCommitted)
	r.ObserveResult(ResultCommitted)
	r.ObserveResult(ResultPassThrough)
	r.NegotiationStarted()
	r.EventBuffered()
	r.EventBuffered()
	r.NegotiationEnded()

	assert.Equal(t, float64(2), testutil.ToFloat64(r.attempts.WithLabelValues(ResultCommitted)))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.attempts.WithLabelValues(ResultPassThrough)))
	assert.Equal(t, float64(0), testutil.ToFloat64(r.negotiating))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.buffered))
}

// TestRecorder_NilIsNoop 测试 nil 记录器为 no-op
func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveResult(ResultFailed)
		r.NegotiationStarted()
		r.NegotiationEnded()
		r.EventBuffered()
	})
}

// TestRecorder_DoubleRegister 测试重复注册报错
func TestRecorder_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)
	_, err = NewRecorder(reg)
	assert.Error(t, err)
}
