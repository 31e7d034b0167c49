package main

import (
	"context"
	"os"

	"github.com/vitalvas/numfield/xcmd"
)

func main() {
	ctx, cancel := xcmd.WithInterrupt(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		os.Exit(1)
	}
}
