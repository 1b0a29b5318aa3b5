// Package metrics 实现升级引擎指标收集
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 升级尝试结果标签值
const (
	ResultCommitted         = "committed"
	ResultPassThrough       = "pass_through"
	ResultBuildFailed       = "build_failed"
	ResultOrderingViolation = "ordering_violation"
	ResultFailed            = "failed"
)

// Recorder 升级指标记录器
//
// 指针为 nil 时所有方法是 no-op。
type Recorder struct {
	attempts    *prometheus.CounterVec
	negotiating prometheus.Gauge
	buffered    prometheus.Counter
}

// NewRecorder 创建记录器并注册指标
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wirepulse_upgrade_attempts_total",
			Help: "Protocol upgrade attempts by result.",
		}, []string{"result"}),
		negotiating: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wirepulse_upgrade_negotiating",
			Help: "Connections currently negotiating an upgrade.",
		}),
		buffered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wirepulse_upgrade_buffered_events_total",
			Help: "Inbound events buffered while an upgrade was in flight.",
		}),
	}

	for _, c := range []prometheus.Collector{r.attempts, r.negotiating, r.buffered} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveResult 记录一次升级尝试的终态
func (r *Recorder) ObserveResult(result string) {
	if r == nil {
		return
	}
	r.attempts.WithLabelValues(result).Inc()
}

// NegotiationStarted 记录协商开始
func (r *Recorder) NegotiationStarted() {
	if r == nil {
		return
	}
	r.negotiating.Inc()
}

// NegotiationEnded 记录协商结束
func (r *Recorder) NegotiationEnded() {
	if r == nil {
		return
	}
	r.negotiating.Dec()
}

// EventBuffered 记录一个被缓冲的入站事件
func (r *Recorder) EventBuffered() {
	if r == nil {
		return
	}
	r.buffered.Inc()
}
