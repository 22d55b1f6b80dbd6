package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"life-ca/internal/verify"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <reference command> [command...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Each command is one argument, split on whitespace; quote it in the shell.")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ok, err := verify.Check(ctx, os.Stdout, verify.Command, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	if !ok {
		stop()
		os.Exit(1)
	}
}
