//go:build !windows

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// registerSignalTriggers lets operators act on a running server:
// SIGUSR1 prints the configuration, SIGHUP refreshes the suffix list.
func registerSignalTriggers(ctx context.Context, s *Server) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGUSR1, syscall.SIGHUP)

	go func() {
		defer signal.Stop(signals)

		for {
			select {
			case <-ctx.Done():
				return

			case sig := <-signals:
				s.onSignal(ctx, sig)
			}
		}
	}()
}

func (s *Server) onSignal(ctx context.Context, sig os.Signal) {
	switch sig {
	case syscall.SIGUSR1:
		s.printConfiguration()

	case syscall.SIGHUP:
		logger().Info("SIGHUP received, refreshing suffix list")

		ctx, cancel := context.WithTimeout(ctx, s.cfg.SuffixList.RefreshTimeout.ToDuration())
		defer cancel()

		s.extractor.Refresh(ctx, nil)
	}
}
