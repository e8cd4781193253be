// Command ttlwrite streams JSON Lines triples into Turtle.
//
// Each input record has the form
//
//	{"subject": "http://example.org/s", "predicate": "http://example.org/p", "object": "\"v\"@en"}
//
// with terms in the notation read by rdf.ParseTerm.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface using Kong
type CLI struct {
	Input    string `name:"input" short:"i" help:"JSON Lines triples to read (default: stdin)" type:"path"`
	Output   string `name:"output" short:"o" help:"Turtle file to write (default: stdout)" type:"path"`
	Prefixes string `name:"prefixes" short:"p" help:"Prefix declarations (.yaml, .yml, .jsonld, .json)" type:"path"`
	XZ       bool   `name:"xz" help:"Compress the output with xz"`
	Verbose  bool   `name:"verbose" short:"v" help:"Log rejected triples and sink activity"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("ttlwrite"),
		kong.Description("Serialize JSON Lines triples to Turtle"),
		kong.UsageOnError(),
	)
	logger := newLogger(os.Stderr, cli.Verbose)
	kctx.FatalIfErrorf(cli.run(context.Background(), os.Stdin, os.Stdout, logger))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
