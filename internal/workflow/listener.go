package workflow

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// StepListener is notified after a step row is inserted.
type StepListener interface {
	OnStep(ctx context.Context, entry StepLogEntry)
}

type StepListenerFunc func(ctx context.Context, entry StepLogEntry)

func (f StepListenerFunc) OnStep(ctx context.Context, entry StepLogEntry) {
	f(ctx, entry)
}

// GaugeListener exposes the current step code.
type GaugeListener struct {
	gauge prometheus.Gauge
}

func NewGaugeListener(gauge prometheus.Gauge) *GaugeListener {
	return &GaugeListener{
		gauge: gauge,
	}
}

func (l *GaugeListener) OnStep(_ context.Context, entry StepLogEntry) {
	l.gauge.Set(float64(entry.Step))
}
