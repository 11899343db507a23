package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prism_frames_rendered_total",
		Help: "Total number of frames presented",
	}, []string{"exercise"})
	DrawCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prism_draw_calls_total",
		Help: "Total number of draw calls issued",
	}, []string{"exercise"})
	ShaderReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "prism_shader_reloads_total",
		Help: "Total number of shader program rebuilds, by outcome",
	}, []string{"exercise", "result"})
	FrameSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "prism_frame_seconds",
		Help:    "Time between two presented frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.0167, 0.025, 0.0334, 0.05, 0.1, 0.25},
	}, []string{"exercise"})
)

type LoopMetrics struct {
	FramesRendered prometheus.Counter
	DrawCalls      prometheus.Counter
	ReloadsOK      prometheus.Counter
	ReloadsFailed  prometheus.Counter
	FrameSeconds   prometheus.Observer
}

func NewLoopMetrics(exercise string) LoopMetrics {
	m := LoopMetrics{
		FramesRendered: FramesRendered.WithLabelValues(exercise),
		DrawCalls:      DrawCalls.WithLabelValues(exercise),
		ReloadsOK:      ShaderReloads.WithLabelValues(exercise, "ok"),
		ReloadsFailed:  ShaderReloads.WithLabelValues(exercise, "failed"),
		FrameSeconds:   FrameSeconds.WithLabelValues(exercise),
	}
	m.FramesRendered.Add(0)
	m.DrawCalls.Add(0)
	m.ReloadsOK.Add(0)
	m.ReloadsFailed.Add(0)
	return m
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
