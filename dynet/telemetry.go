package dynet

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("github.com/katalvlaran/dynamic")
var meter = otel.Meter("github.com/katalvlaran/dynamic")

const (
	// extractionMode is the attribute key labelling each extraction record with
	// the kind of snapshot produced ("point", "interval", "collapse").
	extractionMode = "dynet.mode"
)

var (
	// extractDuration measures the duration of a single snapshot extraction.
	//
	// Each record is associated with the extractionMode.
	extractDuration metric.Float64Histogram
	// reconcileEmptied counts edges left without any spell by Reconcile.
	reconcileEmptied metric.Int64Counter
)

func init() {
	var err error
	extractDuration, err = meter.Float64Histogram(
		"dynet.extract.duration",
		metric.WithDescription("The duration of a single snapshot extraction from a dynamic network."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		panic("dynet: failed to init 'dynet.extract.duration' instrument")
	}

	reconcileEmptied, err = meter.Int64Counter(
		"dynet.reconcile.emptied",
		metric.WithDescription("The number of edges whose every spell was removed by reconciliation."),
	)
	if err != nil {
		panic("dynet: failed to init 'dynet.reconcile.emptied' instrument")
	}
}

// measureExtraction records the duration of one extraction labelled with mode.
func measureExtraction(ctx context.Context, mode string, d time.Duration) {
	attrs := attribute.NewSet(attribute.String(extractionMode, mode))
	// Floating-point division keeps sub-millisecond precision.
	duration := float64(d) / float64(time.Millisecond)
	extractDuration.Record(ctx, duration, metric.WithAttributeSet(attrs))
}
