package runtimeclient

import (
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const scopeName = "github.com/koscakluka/vf-runtime-client/core"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)
	logger = otelslog.NewLogger(scopeName)
)

var interactionCounter, _ = meter.Int64Counter("runtimeclient.interactions",
	metric.WithDescription("Interactions sent to the runtime"),
	metric.WithUnit("{interaction}"),
)
