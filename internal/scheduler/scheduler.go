package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// logged by cron.SkipIfStillRunning
const skipMessage = "skip"

// Scheduler runs a single job on a cron schedule. A trigger that fires while
// the previous run is still going is skipped.
type Scheduler struct {
	cron   *cron.Cron
	logger logrus.FieldLogger
}

func New(schedule string, job func(ctx context.Context), logger logrus.FieldLogger) (*Scheduler, error) {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("failed to parse schedule %q: %w", schedule, err)
	}

	cronLog := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		),
	)

	s := &Scheduler{cron: c, logger: logger}
	_, err := c.AddFunc(schedule, func() {
		job(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule job: %w", err)
	}

	return s, nil
}

// Run blocks until ctx is cancelled, then waits for a running job to finish.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	s.logger.Info("scheduler started")

	<-ctx.Done()

	s.logger.Info("scheduler stopping")
	<-s.cron.Stop().Done()
}

// cronLogger adapts logrus to cron's key/value logger.
type cronLogger struct {
	logger logrus.FieldLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	entry := l.logger.WithFields(fields(keysAndValues))
	if msg == skipMessage {
		entry.Warn("previous run still in progress, skipping trigger")
		return
	}
	entry.Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	out := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return out
}
