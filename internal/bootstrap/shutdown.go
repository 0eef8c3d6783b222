package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalContext returns a context cancelled on the first SIGINT or SIGTERM.
// The pipeline then finishes the record in flight and returns a partial
// report. A second signal exits the process without waiting.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 2)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			slog.Warn(LogMsgSignalReceived)
			cancel()
		case <-done:
			return
		}
		select {
		case <-sigs:
			slog.Error(LogMsgSecondSignal)
			os.Exit(ExitCodeInterrupted)
		case <-done:
		}
	}()

	var once sync.Once
	return ctx, func() {
		once.Do(func() { close(done) })
		cancel()
	}
}
