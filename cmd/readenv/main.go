// Command readenv serves a page showing the API endpoint configured through
// MYAPP_API_ENDPOINT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jschnasse/read-env-example/internal/cli"
)

// Populated at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(cli.Streams{Out: os.Stdout, Err: os.Stderr, Version: version})
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
