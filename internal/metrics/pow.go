// Package metrics 暴露身份生成过程的 Prometheus 指标。
//
// 原始实现的生成循环是裸的自旋等待，完全没有尝试次数或耗时的可观测
// 性；一个可能运行数秒的记忆困难工作量证明没有任何可观测性在运维上
// 是不可接受的，因此这里为 Create 路径补上计数器与耗时直方图。
package metrics

import (
	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PoWRecorder 记录身份生成过程中的工作量证明尝试次数与耗时。
type PoWRecorder struct {
	attemptsTotal *prometheus.CounterVec
	mintedTotal   *prometheus.CounterVec
	mintDuration  *prometheus.HistogramVec

	clock clock.Clock
}

// NewPoWRecorder 注册并返回一个新的 PoWRecorder。
func NewPoWRecorder() *PoWRecorder {
	return &PoWRecorder{
		attemptsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_pow_attempts_total",
				Help: "Total proof-of-work attempts made while minting an identity.",
			},
			[]string{"type"},
		),
		mintedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "identity_minted_total",
				Help: "Total identities successfully minted.",
			},
			[]string{"type"},
		),
		mintDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "identity_mint_duration_seconds",
				Help:    "Wall-clock time spent minting an identity, end to end.",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"type"},
		),
		clock: clock.New(),
	}
}

// RecordAttempt increments the attempt counter for the given identity type
// ("V0" or "V1") by one.
func (r *PoWRecorder) RecordAttempt(idType string) {
	if r == nil {
		return
	}
	r.attemptsTotal.WithLabelValues(idType).Inc()
}

// Timer starts a mint-duration stopwatch for the given identity type. Call
// the returned function once the identity has been minted (or generation
// has been abandoned) to record the elapsed time and, on success, bump the
// minted counter.
func (r *PoWRecorder) Timer(idType string) func(success bool) {
	if r == nil {
		return func(bool) {}
	}
	start := r.clock.Now()
	return func(success bool) {
		r.mintDuration.WithLabelValues(idType).Observe(r.clock.Since(start).Seconds())
		if success {
			r.mintedTotal.WithLabelValues(idType).Inc()
		}
	}
}
