package main

import (
	"context"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for containers before any pool sizing happens.
	// Error ignored: maxprocs.Set only fails if the GOMAXPROCS env var is
	// invalid, in which case Go runtime defaults apply and the program
	// continues safely. The applied value is logged at debug level later.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())

	code := run(ctx, os.Args[1:], DefaultEnv())

	stop()
	os.Exit(code)
}
