package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harrison/tagsearch/internal/cmd"
)

func main() {
	// Writes to a closed pipe must fail with EPIPE instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Execute(ctx, cmd.NewRootCommand()); err != nil {
		stop()
		os.Exit(1)
	}
}
