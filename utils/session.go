package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// CancelOnInterrupt cancels on the first SIGINT or SIGTERM so deferred
// cleanup can run; a second signal gets the default handler. The returned
// func detaches the handler.
func CancelOnInterrupt(cancel context.CancelFunc, out io.Writer) func() {
	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-c:
			fmt.Fprintln(out, "\nReceived interrupt signal, cleaning up...")
			signal.Stop(c)
			cancel()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(c)
		close(done)
	}
}

// ReportOutcome is the single catch point of every program: it logs the
// terminal lines and returns the process exit code.
func ReportOutcome(ctx context.Context, log Logger, out io.Writer, err error) int {
	code := 0
	if err != nil {
		log.Critical(ctx, "Script terminated due to error: %v", err)
		fmt.Fprintf(out, "Error: %v\n", err)
		code = 1
	}
	log.Info(ctx, "Script execution completed.")
	return code
}
