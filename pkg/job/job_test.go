package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/samandr77/microservices/portal/pkg/job"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestService_RunsJobsUntilCancelled(t *testing.T) {
	t.Parallel()

	var (
		calls  atomic.Int32
		failed atomic.Int32
	)

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().
		RegisterJob("count", 5*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		RegisterJob("fail", 5*time.Millisecond, func(context.Context) error {
			failed.Add(1)
			return errors.New("boom")
		}).
		RegisterJob("panic", 5*time.Millisecond, func(context.Context) error {
			panic("unexpected")
		}).
		Start(ctx)

	require.Eventually(t, func() bool {
		return calls.Load() >= 3 && failed.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	s.Stop()
}

func TestService_TryRegisterJob_Disabled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewService().
		TryRegisterJob(false, "disabled", time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		TryRegisterJob(true, "no interval", 0, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		Start(ctx)

	time.Sleep(10 * time.Millisecond)
	cancel()
	s.Stop()

	require.Zero(t, calls.Load())
}
