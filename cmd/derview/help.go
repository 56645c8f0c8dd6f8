package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `derview - DER structure inspector for PEM private keys

Usage:
  derview <command> [options]

Commands:
  dump        Decode a PEM key file and print its DER structure
  serve       Start the decode HTTP API
  version     Show version information

Use "derview <command> -h" for more information about a command.
`)
}

// printDumpUsage prints the dump command usage.
func printDumpUsage(w io.Writer) {
	fmt.Fprint(w, `Decode a PEM key file and print its DER structure

Usage:
  derview dump [options] <file>

Options:
  --format string
        Output format: "text" or "json" (default "text")
  --no-color
        Disable ANSI colors in text output
`)
}

// printServeUsage prints the serve command usage.
func printServeUsage(w io.Writer) {
	fmt.Fprint(w, `Start the decode HTTP API

Usage:
  derview serve [options]

Options:
  --config string
        Path to YAML configuration file
  --address string
        Listen address (overrides config)

Environment:
  DERVIEW_ADDRESS, DERVIEW_READ_TIMEOUT, DERVIEW_WRITE_TIMEOUT,
  DERVIEW_MAX_BODY_BYTES, DERVIEW_LOG_LEVEL, DERVIEW_LOG_FORMAT
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  derview version [options]

Options:
  --short
        Show only version number
`)
}
