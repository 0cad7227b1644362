// Package main is the entry point for the todolist CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"todolist/internal/backend/googletasks"
	"todolist/internal/cli"
	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The Google client is only built when a session exports.
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		client, err := googletasks.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
