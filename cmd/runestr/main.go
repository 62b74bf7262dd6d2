// Package main is the entry point for the runestr tool.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/scalecode-solutions/runestring/cmd/runestr/commands"
	"github.com/scalecode-solutions/runestring/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logger.New(stderr)

	cli := commands.New(log)
	cli.SetArgs(args)
	cli.SetIO(stdin, stdout)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, commands.ErrNoMatch) {
			return 1
		}
		log.Error(err)
		return 1
	}
	return 0
}
