package rdf

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// Sink receives serialized Turtle chunks from a Writer.
//
// Write and Close return once the sink has accepted the chunk or finished
// closing. A sink may also panic; the Writer recovers and reports it as a
// *SinkError.
type Sink interface {
	Write(ctx context.Context, chunk string) error
	Close(ctx context.Context) error
}

// Flusher is implemented by sinks that buffer output.
type Flusher interface {
	Flush(ctx context.Context) error
}

// bufferSink accumulates output in memory. It is the Writer's default sink.
type bufferSink struct {
	buf    strings.Builder
	closed bool
}

func (s *bufferSink) Write(_ context.Context, chunk string) error {
	if s.closed {
		return io.ErrClosedPipe
	}
	s.buf.WriteString(chunk)
	return nil
}

func (s *bufferSink) Close(context.Context) error {
	s.closed = true
	return nil
}

func (s *bufferSink) String() string { return s.buf.String() }

// streamSink adapts an io.Writer.
type streamSink struct {
	writer *bufio.Writer
	closer io.Closer
}

// NewStreamSink returns a Sink writing to w through a buffer. Close flushes
// the buffer and closes w if it implements io.Closer.
func NewStreamSink(w io.Writer) Sink {
	s := &streamSink{writer: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	return s
}

func (s *streamSink) Write(_ context.Context, chunk string) error {
	_, err := s.writer.WriteString(chunk)
	return err
}

func (s *streamSink) Flush(context.Context) error {
	return s.writer.Flush()
}

func (s *streamSink) Close(context.Context) error {
	flushErr := s.writer.Flush()
	if s.closer == nil {
		return flushErr
	}
	return errors.Join(flushErr, s.closer.Close())
}
