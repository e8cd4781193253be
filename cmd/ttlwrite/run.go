package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"

	"github.com/geoknoesis/turtle-writer/internal/prefixfile"
	"github.com/geoknoesis/turtle-writer/rdf"
)

const tripleBuffer = 64

type tripleRecord struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

func (r tripleRecord) triple() (rdf.Triple, error) {
	s, err := rdf.ParseTerm(r.Subject)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("subject: %w", err)
	}
	p, err := rdf.ParseTerm(r.Predicate)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("predicate: %w", err)
	}
	o, err := rdf.ParseTerm(r.Object)
	if err != nil {
		return rdf.Triple{}, fmt.Errorf("object: %w", err)
	}
	return rdf.Triple{S: s, P: p, O: o}, nil
}

// output chains the closers of the layers stacked on the destination,
// innermost last.
type output struct {
	io.Writer
	closers []io.Closer
}

func (o *output) Close() error {
	var errs []error
	for _, c := range o.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func (c *CLI) run(ctx context.Context, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var prefixes []rdf.Prefix
	if c.Prefixes != "" {
		loaded, err := prefixfile.Load(c.Prefixes)
		if err != nil {
			return err
		}
		prefixes = loaded
		logger.Debug("loaded prefixes", "file", c.Prefixes, "count", len(prefixes))
	}

	in := stdin
	if c.Input != "" {
		f, err := os.Open(c.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out, err := c.openOutput(stdout)
	if err != nil {
		return err
	}

	w := rdf.NewWriter(
		rdf.OptOutput(out),
		rdf.OptPrefixes(prefixes...),
		rdf.OptLogger(logger),
	)

	triples := make(chan rdf.Triple, tripleBuffer)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(triples)
		return decodeTriples(gctx, in, triples)
	})
	g.Go(func() error {
		record := 0
		for t := range triples {
			record++
			if err := w.AddTriple(gctx, t); err != nil {
				return fmt.Errorf("record %d: %w", record, err)
			}
		}
		logger.Debug("wrote triples", "count", record)
		return nil
	})

	runErr := g.Wait()
	_, endErr := w.End(ctx)
	return errors.Join(runErr, endErr)
}

func (c *CLI) openOutput(stdout io.Writer) (*output, error) {
	// Hide stdout's Close so the stream sink leaves it open.
	out := &output{Writer: struct{ io.Writer }{stdout}}
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return nil, err
		}
		out.Writer = f
		out.closers = append(out.closers, f)
	}
	if c.XZ {
		xw, err := xz.NewWriter(out.Writer)
		if err != nil {
			_ = out.Close()
			return nil, err
		}
		out.Writer = xw
		out.closers = append([]io.Closer{xw}, out.closers...)
	}
	return out, nil
}

func decodeTriples(ctx context.Context, r io.Reader, triples chan<- rdf.Triple) error {
	dec := json.NewDecoder(r)
	for record := 1; ; record++ {
		var rec tripleRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("record %d: %w", record, err)
		}
		t, err := rec.triple()
		if err != nil {
			return fmt.Errorf("record %d: %w", record, err)
		}
		select {
		case triples <- t:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
