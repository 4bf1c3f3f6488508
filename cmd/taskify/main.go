// Package main is the entry point for the taskify CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskify/internal/api"
	"taskify/internal/cli"
	"taskify/internal/commands"
	"taskify/internal/config"
	"taskify/internal/logging"
	"taskify/internal/service"
	"taskify/internal/session"
	"taskify/internal/taskcache"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Wire the API client behind the task-collection cache. Mutations publish
	// invalidations on the bus; the store reacts by going stale.
	factory := func(ctx context.Context, cfg *config.Config, sess *session.Store) (service.Service, error) {
		log := logging.New(os.Stderr, cfg.Debug)
		client := api.New(cfg, sess, log)
		bus := taskcache.NewBus()
		store := taskcache.NewStore(client.ListTasks, cfg.CachePath(), bus, log)
		return taskcache.NewService(client, store, bus), nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
