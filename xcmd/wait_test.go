package xcmd

import (
	"context"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signalSelf(t *testing.T, sig os.Signal) {
	t.Helper()
	proc, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, proc.Signal(sig))
}

func TestWithInterrupt(t *testing.T) {
	t.Run("cancels on signal", func(t *testing.T) {
		ctx, cancel := WithInterrupt(context.Background(), unix.SIGUSR1)
		defer cancel()

		signalSelf(t, unix.SIGUSR1)

		select {
		case <-ctx.Done():
			cause := context.Cause(ctx)
			assert.ErrorIs(t, cause, ErrInterrupted)
			assert.Contains(t, cause.Error(), "user defined signal 1")
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for signal")
		}
	})

	t.Run("ignores other signals", func(t *testing.T) {
		ctx, cancel := WithInterrupt(context.Background(), unix.SIGUSR2)
		defer cancel()

		// keep SIGUSR1 from terminating the test binary
		other, stop := WithInterrupt(context.Background(), unix.SIGUSR1)
		defer stop()

		signalSelf(t, unix.SIGUSR1)
		<-other.Done()

		select {
		case <-ctx.Done():
			t.Fatal("context canceled by unrelated signal")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("cancel func", func(t *testing.T) {
		ctx, cancel := WithInterrupt(context.Background(), unix.SIGUSR2)
		cancel()

		<-ctx.Done()
		assert.Equal(t, context.Canceled, context.Cause(ctx))
	})

	t.Run("parent cancellation", func(t *testing.T) {
		parent, cancelParent := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancelParent()

		ctx, cancel := WithInterrupt(parent, unix.SIGUSR2)
		defer cancel()

		<-ctx.Done()
		assert.Equal(t, context.DeadlineExceeded, ctx.Err())
	})
}
