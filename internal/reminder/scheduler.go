// Package reminder delivers the assistant's daily briefing on a cron schedule.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultSchedule = "0 8 * * *"

type Briefer interface {
	Briefing(ctx context.Context) string
}

// Sink receives every briefing produced by the scheduler.
type Sink interface {
	Deliver(ctx context.Context, text string) error
}

type SinkFunc func(ctx context.Context, text string) error

func (f SinkFunc) Deliver(ctx context.Context, text string) error {
	return f(ctx, text)
}

// WriterSink prints each briefing followed by a blank line.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(_ context.Context, text string) error {
		_, err := fmt.Fprintf(w, "%s\n\n", text)
		return err
	})
}

type Scheduler struct {
	cron     *cron.Cron
	schedule string
	briefer  Briefer
	sinks    []Sink
	logger   *zap.Logger
}

// New validates schedule as a standard five-field cron expression or descriptor.
func New(schedule string, loc *time.Location, briefer Briefer, logger *zap.Logger, sinks ...Sink) (*Scheduler, error) {
	if briefer == nil {
		return nil, errors.New("briefer is nil")
	}
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("parse reminder schedule %q: %w", schedule, err)
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		schedule: schedule,
		briefer:  briefer,
		sinks:    sinks,
		logger:   logger,
	}, nil
}

// RunOnce builds one briefing and hands it to every sink. A failing sink does
// not stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := s.briefer.Briefing(ctx)

	var errs []error
	for i, sink := range s.sinks {
		if err := sink.Deliver(ctx, text); err != nil {
			errs = append(errs, fmt.Errorf("deliver reminder to sink %d: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

// Run fires RunOnce on the schedule until ctx is cancelled, then waits for a
// running job to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.logger.Info("reminder triggered", zap.String("schedule", s.schedule))
		if err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("reminder delivery failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}

	s.cron.Start()
	s.logger.Info("reminder scheduler started", zap.String("schedule", s.schedule))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("reminder scheduler stopped")

	return nil
}

// Next reports when the schedule fires after from.
func (s *Scheduler) Next(from time.Time) time.Time {
	sched, err := cron.ParseStandard(s.schedule)
	if err != nil {
		return time.Time{}
	}

	return sched.Next(from)
}
