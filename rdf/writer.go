package rdf

import (
	"context"
	"errors"
	"log/slog"
)

type lifecycle uint8

const (
	writerOpen lifecycle = iota
	writerEnded
)

// Writer serializes triples to Turtle as they arrive.
//
// Consecutive triples sharing a subject are joined with ';', and those also
// sharing a predicate with ','. Each call blocks until the sink has accepted
// the chunk. A Writer is not safe for concurrent use.
type Writer struct {
	sink     Sink
	buffer   *bufferSink
	prefixes *PrefixTable
	logger   *slog.Logger

	group           grouper
	prefixesFlushed bool
	state           lifecycle
	err             error
}

// NewWriter creates a Turtle writer.
func NewWriter(opts ...Option) *Writer {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w := &Writer{
		sink:     options.Sink,
		prefixes: options.Prefixes,
		logger:   options.Logger,
	}
	if w.sink == nil {
		w.buffer = &bufferSink{}
		w.sink = w.buffer
	}
	if w.prefixes == nil {
		w.prefixes = NewPrefixTable()
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// AddTriple writes one triple.
//
// A triple with a literal subject or predicate is rejected with a
// *TermPositionError; nothing is written and the writer stays usable. A sink
// failure is returned as a *SinkError and repeated by later calls.
func (w *Writer) AddTriple(ctx context.Context, t Triple) error {
	if w.state == writerEnded {
		return ErrWriterEnded
	}
	if w.err != nil {
		return w.err
	}

	subject, predicate, object, err := w.render(t)
	if err != nil {
		w.logger.Debug("rejected triple", "subject", t.S, "predicate", t.P, "object", t.O, "error", err)
		return err
	}

	chunk := w.group.next(subject, predicate, object)
	if !w.prefixesFlushed {
		chunk = w.prefixes.DeclarationBlock() + chunk
		w.prefixesFlushed = true
	}
	if err := w.write(ctx, chunk); err != nil {
		w.err = err
		return err
	}
	return nil
}

// AddTriples writes triples in order and stops at the first error.
func (w *Writer) AddTriples(ctx context.Context, triples ...Triple) error {
	for _, t := range triples {
		if err := w.AddTriple(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// Flush asks the sink to flush buffered output, if it supports flushing.
func (w *Writer) Flush(ctx context.Context) error {
	if w.state == writerEnded {
		return ErrWriterEnded
	}
	if w.err != nil {
		return w.err
	}
	flusher, ok := w.sink.(Flusher)
	if !ok {
		return nil
	}
	if err := flusher.Flush(ctx); err != nil {
		w.err = &SinkError{Op: sinkOpWrite, Err: err}
		return w.err
	}
	return nil
}

// End terminates the open statement, writes the prefix declarations if no
// triple did, and closes the sink. The writer is ended afterwards even when
// closing fails.
//
// When the writer owns its in-memory sink, the complete output is returned.
func (w *Writer) End(ctx context.Context) (string, error) {
	if w.state == writerEnded {
		return "", ErrWriterEnded
	}
	w.state = writerEnded

	var errs []error
	if w.err != nil {
		errs = append(errs, w.err)
	} else {
		tail := w.group.close()
		if !w.prefixesFlushed {
			tail = w.prefixes.DeclarationBlock() + tail
			w.prefixesFlushed = true
		}
		if tail != "" {
			if err := w.write(ctx, tail); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := w.close(ctx); err != nil {
		errs = append(errs, err)
	}

	var output string
	if w.buffer != nil {
		output = w.buffer.String()
	}
	return output, errors.Join(errs...)
}

// Ended reports whether End has been called.
func (w *Writer) Ended() bool { return w.state == writerEnded }

func (w *Writer) render(t Triple) (subject, predicate, object string, err error) {
	if subject, err = renderTerm(t.S, PositionSubject, w.prefixes); err != nil {
		return "", "", "", err
	}
	if predicate, err = renderTerm(t.P, PositionPredicate, w.prefixes); err != nil {
		return "", "", "", err
	}
	if object, err = renderTerm(t.O, PositionObject, w.prefixes); err != nil {
		return "", "", "", err
	}
	return subject, predicate, object, nil
}

func (w *Writer) write(ctx context.Context, chunk string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SinkError{Op: sinkOpWrite, Err: sinkPanic(r)}
		}
		if err != nil {
			w.logger.Warn("sink write failed", "error", err)
		}
	}()
	if sinkErr := w.sink.Write(ctx, chunk); sinkErr != nil {
		return &SinkError{Op: sinkOpWrite, Err: sinkErr}
	}
	return nil
}

func (w *Writer) close(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &SinkError{Op: sinkOpClose, Err: sinkPanic(r)}
		}
		if err != nil {
			w.logger.Warn("sink close failed", "error", err)
		}
	}()
	if sinkErr := w.sink.Close(ctx); sinkErr != nil {
		return &SinkError{Op: sinkOpClose, Err: sinkErr}
	}
	return nil
}
