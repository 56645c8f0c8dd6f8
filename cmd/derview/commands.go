// Package main provides CLI commands for the derview tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/derview/derview/internal/config"
	"github.com/derview/derview/internal/der"
	"github.com/derview/derview/internal/pemfile"
	"github.com/derview/derview/internal/render"
	"github.com/derview/derview/internal/rest"
)

// dumpCmd handles the dump command: decode one PEM key file and print
// its DER structure.
func dumpCmd(args []string) int {
	fs := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	format := fs.String("format", "text", `Output format: "text" or "json"`)
	noColor := fs.Bool("no-color", false, "Disable ANSI colors in text output")
	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		printDumpUsage(os.Stdout)
		return 0
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one key file path is required")
		printDumpUsage(os.Stderr)
		return 1
	}

	buf, err := pemfile.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	nodes, err := der.Decode(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch *format {
	case "text":
		if err := render.Text(os.Stdout, nodes, render.Options{NoColor: *noColor}); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	case "json":
		out, err := render.JSON(nodes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		return 1
	}

	return 0
}

// serveCmd handles the serve command: run the decode HTTP API.
func serveCmd(args []string) int {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	configPath := fs.String("config", "", "Path to YAML configuration file")
	address := fs.String("address", "", "Listen address (overrides config)")
	help := fs.BoolP("help", "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help {
		printServeUsage(os.Stdout)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if *address != "" {
		cfg.Address = *address
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rest.NewServer(cfg).Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server failed")
		return 1
	}
	return 0
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
