// Package main provides the CLI entrypoint for localorie.
//
// localorie merges the YAML locale files of a project into one JSON
// translation tree:
//   - Finds every .yml/.yaml file under <root>/config/locales
//   - Records the source line and file of every translated value
//   - Deep-merges the files in sorted order, later files winning
//   - Prints the merged tree as JSON on stdout
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"localorie/internal/locale"
)

const (
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage: localorie <root>")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		if errors.Is(err, errUsage) {
			os.Exit(exitUsage)
		}

		os.Exit(exitError)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("localorie", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: localorie <root>")
		_, _ = fmt.Fprintln(stderr, "Merges <root>/config/locales/**/*.yml into one JSON tree on stdout.")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	root := fs.Arg(0)

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	cfg := locale.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	translations, err := locale.NewBuilder(cfg).Build(ctx, root)
	if err != nil {
		return err
	}

	// Encode fully before writing so a failure leaves stdout empty.
	var buf bytes.Buffer
	if err := locale.WriteJSON(&buf, translations); err != nil {
		return err
	}

	if _, err := stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
