package otel

import (
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Alturino/inventory/internal/constants"
)

var Tracer = otel.Tracer(
	constants.AppInventoryClient,
	trace.WithInstrumentationAttributes(semconv.ServiceName(constants.AppInventoryClient)),
)
