package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xERR0R/tldextract/evt"
	"github.com/0xERR0R/tldextract/log"
	"github.com/0xERR0R/tldextract/server"
	"github.com/0xERR0R/tldextract/util"
)

const shutdownTimeout = 10 * time.Second

//nolint:gochecknoglobals
var signals = make(chan os.Signal, 1)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Args:  cobra.NoArgs,
		Short: "start the tldextract HTTP API",
		RunE:  startServer,
	}
}

func startServer(_ *cobra.Command, _ []string) error {
	printBanner()

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}

	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't start server: %w", err)
	}

	errChan := make(chan error, 1)

	srv.Start(ctx, errChan)

	evt.Bus().Publish(evt.ApplicationStarted, util.Version, util.BuildTime)

	select {
	case <-signals:
		log.Log().Infof("Terminating...")

		stopCtx, stopCancel := context.WithTimeout(ctx, shutdownTimeout)
		defer stopCancel()

		util.LogOnError("can't stop server: ", srv.Stop(stopCtx))

		return nil

	case err := <-errChan:
		log.Log().Error("server start failed: ", err)

		return err
	}
}

func printBanner() {
	log.Log().Info("_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/")
	log.Log().Info("_/                                                              _/")
	log.Log().Info("_/    _/      _/        _/                                      _/")
	log.Log().Info("_/ _/_/_/_/  _/    _/_/_/    _/_/    _/    _/  _/_/_/_/         _/")
	log.Log().Info("_/  _/      _/  _/    _/  _/_/_/_/    _/_/      _/              _/")
	log.Log().Info("_/ _/      _/  _/    _/  _/        _/    _/    _/               _/")
	log.Log().Info("_/  _/_/  _/    _/_/_/    _/_/_/  _/    _/    _/_/    extract   _/")
	log.Log().Info("_/                                                              _/")
	log.Log().Infof("_/  Version: %-18s Build time: %-18s  _/", util.Version, util.BuildTime)
	log.Log().Info("_/                                                              _/")
	log.Log().Info("_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/_/")
}
