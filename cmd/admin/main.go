// Package main runs the admin console.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	admincmd "github.com/curkin/adminconsole/internal/cmd/admin"
	platformcmd "github.com/curkin/adminconsole/internal/platform/cmd"
	"github.com/curkin/adminconsole/internal/platform/config"
	perrors "github.com/curkin/adminconsole/internal/platform/errors"
)

func main() {
	cfg, err := admincmd.ParseConfig(flag.CommandLine, os.Args[1:], func(key string) (string, bool) {
		return os.LookupEnv(key)
	})
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[ADMIN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run prints its own failures; only telemetry setup errors reach the log.
	ran := false
	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceAdmin, func(ctx context.Context) error {
		ran = true
		return admincmd.Run(ctx, cfg, admincmd.Streams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr})
	})
	stop()
	if err != nil {
		if !ran {
			log.Printf("start: %v", err)
		}
		os.Exit(perrors.ExitCode(err))
	}
}
