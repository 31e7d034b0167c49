package xcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ErrInterrupted is the cancellation cause of a context stopped by a signal.
var ErrInterrupted = errors.New("xcmd: interrupted")

// WithInterrupt returns a copy of ctx that is canceled when one of signals
// arrives, SIGINT and SIGTERM by default. context.Cause then wraps
// ErrInterrupted and names the signal.
func WithInterrupt(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = []os.Signal{unix.SIGINT, unix.SIGTERM}
	}

	ctx, cancel := context.WithCancelCause(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, signals...)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case v := <-sigChan:
			cancel(fmt.Errorf("%w: %s", ErrInterrupted, v))
		case <-ctx.Done():
		}
	}()

	return ctx, func() { cancel(nil) }
}
