// SPDX-License-Identifier: MIT

// Package telemetry hands out OpenTelemetry tracers for the terrain packages.
//
// Spans go to whatever TracerProvider the host process registered with
// otel.SetTracerProvider; without one the global provider is a no-op, so the
// library never exports anything on its own.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationPrefix namespaces every tracer created here.
const instrumentationPrefix = "terraingen/"

// Tracer returns a named tracer for the given component from the global provider.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(instrumentationPrefix + name)
}
