// Package trace provides a tracing subsystem for the tokenize/parse
// toolchain.
//
// The trace package tracks scan and parse boundaries, per-file processing
// in a directory run, and other operations, to help diagnose slow files
// and hangs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	surge parse --trace=- --trace-level=phase ./src
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - NopTracer: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything including AST nodes
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopePass: scan and parse
//   - ScopeModule: one file's scan+parse run in a directory pipeline
//   - ScopeNode: AST node level (future)
//
// # Context Propagation
//
// Tracers are propagated through the scan/parse pipeline via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "parse", parentID)
//	defer span.End("")
package trace
