// SPDX-License-Identifier: MIT

package tilemap

import (
	"io"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/trace"

	"github.com/PhilSoe/JavaTerrainGen/telemetry"
)

// Option customizes map construction. Option constructors panic on nil
// arguments; New itself never panics.
type Option func(*options)

// options holds the resolved non-Config knobs.
type options struct {
	logger *slog.Logger
	tracer trace.Tracer
	rng    *rand.Rand // nil ⇒ RandFromSeed(Config.Seed)
}

// newOptions applies opts over the defaults: discard logger, package tracer
// from the global provider, RNG from the config seed.
func newOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: telemetry.Tracer("tilemap"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger routes construction logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tilemap: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithTracer records construction spans with t.
func WithTracer(t trace.Tracer) Option {
	if t == nil {
		panic("tilemap: WithTracer(nil)")
	}
	return func(o *options) {
		o.tracer = t
	}
}

// WithRand makes every tile draw from r instead of a stream seeded from
// Config.Seed. The map consumes r in traversal order.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tilemap: WithRand(nil)")
	}
	return func(o *options) {
		o.rng = r
	}
}
