package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"surge/internal/trace"
)

// setupTracing inspects the --trace* persistent flags, builds a tracer, and
// opens a ScopeDriver span named rootName around the whole command
// invocation (detail is attached to the span's end event, e.g. the file or
// directory path being processed). It returns a context carrying both the
// tracer and the open span, and a cleanup function that ends the span, stops
// any heartbeat, and flushes and closes the tracer; the caller must defer
// the cleanup.
func setupTracing(cmd *cobra.Command, rootName, detail string) (context.Context, func(), error) {
	flags := cmd.Root().PersistentFlags()

	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace flag: %w", err)
	}

	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --trace-level: %w", err)
	}

	if level == trace.LevelOff || traceOutput == "" {
		return trace.WithTracer(cmd.Context(), trace.Nop), func() {}, nil
	}

	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --trace-mode: %w", err)
	}

	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	var heartbeat *trace.Heartbeat
	if heartbeatInterval > 0 {
		heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	rootSpan := trace.Begin(tracer, trace.ScopeDriver, rootName, 0)
	ctx = trace.WithSpanContext(ctx, trace.SpanContext{SpanID: rootSpan.ID()})

	cleanup := func() {
		rootSpan.WithExtra("path", detail).End("")
		if heartbeat != nil {
			heartbeat.Stop()
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}

	return ctx, cleanup, nil
}
