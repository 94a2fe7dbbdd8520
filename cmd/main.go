package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)

	code := execute(ctx)
	stop()
	os.Exit(code)
}

// execute runs the command tree and maps its outcome to a process exit status.
func execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("bootstrap failed", "error", err)
		return 1
	}
	return 0
}
