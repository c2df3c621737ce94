package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodbot/internal/core/application/usecases/commands"
	"foodbot/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpireIdleCartsHandler struct {
	mock.Mock
}

func (m *MockExpireIdleCartsHandler) Handle(ctx context.Context, cmd commands.ExpireIdleCartsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCartExpiryJob_Validation(t *testing.T) {
	handler := new(MockExpireIdleCartsHandler)

	_, err := jobs.NewCartExpiryJob(handler, 0, time.Minute, discardLogger())
	require.ErrorIs(t, err, commands.ErrIdleTTLIsInvalid)

	_, err = jobs.NewCartExpiryJob(handler, time.Hour, 0, discardLogger())
	require.ErrorIs(t, err, jobs.ErrIntervalIsInvalid)
}

func TestCartExpiryJob_RunPassesTTL(t *testing.T) {
	handler := new(MockExpireIdleCartsHandler)
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExpireIdleCartsCommand) bool {
		return cmd.TTL() == 30*time.Minute
	})).Return(2, nil).Once()
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("store unavailable")).Once()

	job, err := jobs.NewCartExpiryJob(handler, 30*time.Minute, time.Minute, discardLogger())
	require.NoError(t, err)

	job.Run(t.Context())
	job.Run(t.Context())

	handler.AssertExpectations(t)
}

func TestCartExpiryJob_StartSweepsOnSchedule(t *testing.T) {
	swept := make(chan struct{}, 1)
	handler := new(MockExpireIdleCartsHandler)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, nil).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})

	job, err := jobs.NewCartExpiryJob(handler, time.Hour, time.Second, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "cart expiry", job.Name())

	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-swept:
	case <-time.After(5 * time.Second):
		t.Fatal("cart expiry job did not run")
	}
}
