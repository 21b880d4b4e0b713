package stream

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/observability"
)

// Metered wraps s so every value passing through increments the record
// counter for the named stage. The sequence is unchanged.
func Metered[T any](s *Stream[T], metrics *observability.Metrics, stage string) *Stream[T] {
	return Tap(s, func(ctx context.Context, _ T) error {
		metrics.RecordRecords(ctx, stage, 1)
		return nil
	})
}

// TracedRun wraps a Runnable with OpenTelemetry span creation.
// The whole run executes inside a span named "pipeline.{stage}".
func TracedRun(r *Runnable, stage string) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			ctx, span := observability.StartSpan(ctx, "pipeline."+stage)
			defer span.End()

			observability.SetSpanAttribute(ctx, "pipeline.stage", stage)

			err := r.Run(ctx)
			if err != nil {
				observability.SetSpanError(ctx, err)
			}
			return err
		},
	}
}

// MeteredRun wraps a Runnable with stage metrics: run count, duration, and
// errors.
func MeteredRun(r *Runnable, metrics *observability.Metrics, stage string) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			start := time.Now()
			err := r.Run(ctx)
			duration := time.Since(start)

			status := "ok"
			if err != nil {
				status = "error"
				metrics.RecordError(ctx, "run", stage)
			}
			metrics.RecordStage(ctx, stage, status, duration)
			return err
		},
	}
}

// LoggedRun wraps a Runnable with execution logging.
// Logs: stage, a run id, duration, and success/error status.
func LoggedRun(r *Runnable, log *logger.Logger, stage string) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			runID := uuid.NewString()
			start := time.Now()
			err := r.Run(ctx)
			duration := time.Since(start)

			fields := map[string]interface{}{
				logger.FieldStage:    stage,
				logger.FieldRunID:    runID,
				logger.FieldDuration: duration.Milliseconds(),
			}

			if err != nil {
				fields[logger.FieldError] = err.Error()
				log.Error("pipeline run failed", fields)
			} else {
				log.Debug("pipeline run completed", fields)
			}
			return err
		},
	}
}
