package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultPushReceiptSchedule checks receipts twice a minute.
const DefaultPushReceiptSchedule = "@every 30s"

var ErrReceiptCheckerIsRequired = errors.New("receipt checker is required")

// ReceiptChecker resolves outstanding push tickets and reports how many it settled.
type ReceiptChecker interface {
	CheckReceipts(ctx context.Context) (int, error)
}

// PushReceiptJob periodically asks the push channel to resolve its tickets.
type PushReceiptJob struct {
	checker  ReceiptChecker
	schedule cron.Schedule
	expr     string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPushReceiptJob parses the cron expression with the seconds-aware parser the scheduler
// uses, so a bad schedule is reported at construction.
func NewPushReceiptJob(checker ReceiptChecker, expr string, logger *slog.Logger) (*PushReceiptJob, error) {
	if checker == nil {
		return nil, ErrReceiptCheckerIsRequired
	}
	if expr == "" {
		expr = DefaultPushReceiptSchedule
	}

	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "push_receipt_job")
	return &PushReceiptJob{
		checker:  checker,
		schedule: schedule,
		expr:     expr,
		timeout:  time.Minute,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}, nil
}

func (j *PushReceiptJob) Name() string {
	return "push receipts"
}

// Start registers the check and starts the scheduler.
func (j *PushReceiptJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	}))

	j.cron.Start()
	j.logger.Info("Push receipt job started", "schedule", j.expr)
	return nil
}

// Run performs a single receipt check.
func (j *PushReceiptJob) Run(ctx context.Context) {
	settled, err := j.checker.CheckReceipts(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Push receipt check failed", "error", err, "settled", settled)
		return
	}
	if settled > 0 {
		j.logger.DebugContext(ctx, "Push receipts settled", "count", settled)
	}
}

// Stop stops scheduling and waits for a running check to finish.
func (j *PushReceiptJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Push receipt job stopped")
}
