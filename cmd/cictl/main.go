package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/doeshing/cictl/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{
		Verbose: os.Getenv("CICTL_DEBUG") != "",
	}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cictl: %v\n", err)
		os.Exit(cli.ExitInternal)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *cli.ExitCodeError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintf(os.Stderr, "cictl: %v\n", exitErr.Err)
			}
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "cictl: %v\n", err)
		stop()
		os.Exit(cli.ExitInternal)
	}
}
