package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodbot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ErrIntervalIsInvalid is returned for a non-positive sweep interval.
var ErrIntervalIsInvalid = errors.New("cart expiry interval must be greater than 0")

// ExpireIdleCartsHandler evicts idle carts.
type ExpireIdleCartsHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireIdleCartsCommand) (int, error)
}

// CartExpiryJob periodically drops in-progress orders that nobody touched
// for longer than the idle ttl.
type CartExpiryJob struct {
	handler  ExpireIdleCartsHandler
	cmd      commands.ExpireIdleCartsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartExpiryJob creates a job sweeping every interval for carts idle
// longer than ttl.
func NewCartExpiryJob(
	handler ExpireIdleCartsHandler,
	ttl, interval time.Duration,
	logger *slog.Logger,
) (*CartExpiryJob, error) {
	cmd, err := commands.NewExpireIdleCartsCommand(ttl)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, ErrIntervalIsInvalid
	}

	return &CartExpiryJob{
		handler:  handler,
		cmd:      cmd,
		schedule: fmt.Sprintf("@every %s", interval),
		cron:     cron.New(),
		logger:   logger.With("component", "cart_expiry_job"),
	}, nil
}

// Name identifies the job in logs and errors.
func (j *CartExpiryJob) Name() string {
	return "cart expiry"
}

// Start schedules the sweep.
func (j *CartExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart expiry job started",
		"schedule", j.schedule, "ttl", j.cmd.TTL().String())
	return nil
}

// Run performs one sweep.
func (j *CartExpiryJob) Run(ctx context.Context) {
	evicted, err := j.handler.Handle(ctx, j.cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart expiry job failed", "error", err)
		return
	}
	if evicted > 0 {
		j.logger.InfoContext(ctx, "Expired idle carts", "count", evicted)
	}
}

// Stop stops the schedule and waits for a running sweep to finish.
func (j *CartExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart expiry job stopped")
}
