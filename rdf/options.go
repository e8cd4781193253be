package rdf

import (
	"io"
	"log/slog"
)

// Option configures writer behavior.
type Option func(*Options)

// Options configures a Writer.
type Options struct {
	// Sink receives the output. Nil means an in-memory buffer whose content
	// End returns.
	Sink Sink

	// Prefixes declared at the top of the output and used for compaction.
	Prefixes *PrefixTable

	// Logger for rejected triples and sink failures. Nil means slog.Default().
	Logger *slog.Logger
}

// OptSink sends output to sink.
func OptSink(sink Sink) Option {
	return func(opts *Options) {
		opts.Sink = sink
	}
}

// OptOutput sends output to w via NewStreamSink.
func OptOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Sink = NewStreamSink(w)
	}
}

// OptPrefixes declares prefixes in the given order.
func OptPrefixes(prefixes ...Prefix) Option {
	return func(opts *Options) {
		opts.Prefixes = NewPrefixTable(prefixes...)
	}
}

// OptPrefixTable uses an already built prefix table.
func OptPrefixTable(table *PrefixTable) Option {
	return func(opts *Options) {
		opts.Prefixes = table
	}
}

// OptLogger sets the logger.
func OptLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func defaultOptions() Options {
	return Options{}
}
