package rdf

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidTermPosition indicates a literal in the subject or predicate slot.
	ErrCodeInvalidTermPosition ErrorCode = "INVALID_TERM_POSITION"
	// ErrCodeMissingTerm indicates a triple with a nil term.
	ErrCodeMissingTerm ErrorCode = "MISSING_TERM"
	// ErrCodeInvalidTerm indicates malformed term notation.
	ErrCodeInvalidTerm ErrorCode = "INVALID_TERM"
	// ErrCodeWriterEnded indicates a call on a writer that was already ended.
	ErrCodeWriterEnded ErrorCode = "WRITER_ENDED"
	// ErrCodeSinkWrite indicates the sink failed to accept a chunk.
	ErrCodeSinkWrite ErrorCode = "SINK_WRITE"
	// ErrCodeSinkClose indicates the sink failed to close.
	ErrCodeSinkClose ErrorCode = "SINK_CLOSE"
	// ErrCodeUnknown is returned for errors not produced by this package.
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

var (
	// ErrInvalidTermPosition indicates a literal in the subject or predicate slot.
	ErrInvalidTermPosition = errors.New("rdf: invalid term position")
	// ErrMissingTerm indicates a triple with a nil term.
	ErrMissingTerm = errors.New("rdf: missing statement term")
	// ErrInvalidTerm indicates malformed term notation.
	ErrInvalidTerm = errors.New("rdf: invalid term notation")
	// ErrWriterEnded indicates a call on a writer that was already ended.
	ErrWriterEnded = errors.New("rdf: writer ended")
)

// Code returns the error code for an error.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var sinkErr *SinkError
	if errors.As(err, &sinkErr) {
		if sinkErr.Op == sinkOpClose {
			return ErrCodeSinkClose
		}
		return ErrCodeSinkWrite
	}

	switch {
	case errors.Is(err, ErrInvalidTermPosition):
		return ErrCodeInvalidTermPosition
	case errors.Is(err, ErrMissingTerm):
		return ErrCodeMissingTerm
	case errors.Is(err, ErrInvalidTerm):
		return ErrCodeInvalidTerm
	case errors.Is(err, ErrWriterEnded):
		return ErrCodeWriterEnded
	}
	return ErrCodeUnknown
}

// TermPositionError reports a literal used as subject or predicate.
type TermPositionError struct {
	Position Position // Offending slot
	Term     Term     // Offending term
}

func (e *TermPositionError) Error() string {
	return fmt.Sprintf("A literal as %s is not allowed: %s", e.Position, e.Term)
}

// Is makes errors.Is(err, ErrInvalidTermPosition) hold.
func (e *TermPositionError) Is(target error) bool { return target == ErrInvalidTermPosition }

const (
	sinkOpWrite = "write"
	sinkOpClose = "close"
)

// SinkError wraps a failure reported or raised by a Sink.
type SinkError struct {
	Op  string // "write" or "close"
	Err error  // Underlying error
}

func (e *SinkError) Error() string {
	return "rdf: sink " + e.Op + ": " + e.Err.Error()
}

func (e *SinkError) Unwrap() error { return e.Err }

// sinkPanic converts a value recovered from a sink panic into an error.
func sinkPanic(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}
