package rdf

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	chunks   []string
	closed   bool
	writeErr error
	closeErr error
}

func (s *recordingSink) Write(_ context.Context, chunk string) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.chunks = append(s.chunks, chunk)
	return nil
}

func (s *recordingSink) Close(context.Context) error {
	s.closed = true
	return s.closeErr
}

func (s *recordingSink) String() string { return strings.Join(s.chunks, "") }

type panickingSink struct {
	recordingSink
	panicOnWrite bool
}

func (s *panickingSink) Write(ctx context.Context, chunk string) error {
	if s.panicOnWrite {
		panic("write exploded")
	}
	return s.recordingSink.Write(ctx, chunk)
}

func (s *panickingSink) Close(context.Context) error {
	panic("error")
}

func parsedTriple(t *testing.T, s, p, o string) Triple {
	t.Helper()
	subject, err := ParseTerm(s)
	require.NoError(t, err)
	predicate, err := ParseTerm(p)
	require.NoError(t, err)
	object, err := ParseTerm(o)
	require.NoError(t, err)
	return Triple{S: subject, P: predicate, O: object}
}

func serialize(t *testing.T, prefixes []Prefix, triples [][3]string) string {
	t.Helper()
	ctx := context.Background()
	sink := &recordingSink{}
	w := NewWriter(OptSink(sink), OptPrefixes(prefixes...))
	for _, item := range triples {
		require.NoError(t, w.AddTriple(ctx, parsedTriple(t, item[0], item[1], item[2])))
	}
	output, err := w.End(ctx)
	require.NoError(t, err)
	assert.Empty(t, output, "external sink output is not returned by End")
	assert.True(t, sink.closed)
	return sink.String()
}

func TestWriterSerializes(t *testing.T) {
	tests := []struct {
		name     string
		triples  [][3]string
		expected string
	}{
		{name: "no triples", expected: ""},
		{
			name:     "one triple",
			triples:  [][3]string{{"abc", "def", "ghi"}},
			expected: "<abc> <def> <ghi>.\n",
		},
		{
			name:     "two triples",
			triples:  [][3]string{{"abc", "def", "ghi"}, {"jkl", "mno", "pqr"}},
			expected: "<abc> <def> <ghi>.\n<jkl> <mno> <pqr>.\n",
		},
		{
			name:     "three triples",
			triples:  [][3]string{{"abc", "def", "ghi"}, {"jkl", "mno", "pqr"}, {"stu", "vwx", "yz"}},
			expected: "<abc> <def> <ghi>.\n<jkl> <mno> <pqr>.\n<stu> <vwx> <yz>.\n",
		},
		{
			name:     "literal",
			triples:  [][3]string{{"a", "b", `"cde"`}},
			expected: "<a> <b> \"cde\".\n",
		},
		{
			name:     "typed literal",
			triples:  [][3]string{{"a", "b", `"cde"^^<fgh>`}},
			expected: "<a> <b> \"cde\"^^<fgh>.\n",
		},
		{
			name:     "language literal",
			triples:  [][3]string{{"a", "b", `"cde"@en-us`}},
			expected: "<a> <b> \"cde\"@en-us.\n",
		},
		{
			name:     "literal with single quote",
			triples:  [][3]string{{"a", "b", `"c'de"`}},
			expected: "<a> <b> \"c'de\".\n",
		},
		{
			name:     "literal with double quote",
			triples:  [][3]string{{"a", "b", `"c"de"`}},
			expected: "<a> <b> \"c\\\"de\".\n",
		},
		{
			name:     "literal with backslash",
			triples:  [][3]string{{"a", "b", `"c\de"`}},
			expected: "<a> <b> \"c\\\\de\".\n",
		},
		{
			name:     "literal with tab",
			triples:  [][3]string{{"a", "b", "\"c\tde\""}},
			expected: "<a> <b> \"c\\tde\".\n",
		},
		{
			name:     "literal with newline",
			triples:  [][3]string{{"a", "b", "\"c\nde\""}},
			expected: "<a> <b> \"c\\nde\".\n",
		},
		{
			name:     "literal with carriage return",
			triples:  [][3]string{{"a", "b", "\"c\rde\""}},
			expected: "<a> <b> \"c\\rde\".\n",
		},
		{
			name:     "literal with backspace",
			triples:  [][3]string{{"a", "b", "\"c\bde\""}},
			expected: "<a> <b> \"c\\bde\".\n",
		},
		{
			name:     "literal with form feed",
			triples:  [][3]string{{"a", "b", "\"c\fde\""}},
			expected: "<a> <b> \"c\\fde\".\n",
		},
		{
			name:     "blank nodes",
			triples:  [][3]string{{"_:a", "b", "_:c"}},
			expected: "_:a <b> _:c.\n",
		},
		{
			name:     "repeated subject",
			triples:  [][3]string{{"abc", "def", "ghi"}, {"abc", "mno", "pqr"}, {"stu", "vwx", "yz"}},
			expected: "<abc> <def> <ghi>;\n    <mno> <pqr>.\n<stu> <vwx> <yz>.\n",
		},
		{
			name: "repeated predicate",
			triples: [][3]string{
				{"abc", "def", "ghi"},
				{"abc", "def", "pqr"},
				{"abc", "bef", "ghi"},
				{"abc", "bef", "pqr"},
				{"stu", "bef", "yz"},
			},
			expected: "<abc> <def> <ghi>, <pqr>;\n" +
				"    <bef> <ghi>, <pqr>.\n" +
				"<stu> <bef> <yz>.\n",
		},
		{
			name:     "rdf:type as a",
			triples:  [][3]string{{"abc", RDFType, "def"}},
			expected: "<abc> a <def>.\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, serialize(t, nil, tt.triples))
		})
	}
}

func TestWriterPrefixes(t *testing.T) {
	prefixes := []Prefix{
		{Label: "a", Namespace: "http://a.org/"},
		{Label: "b", Namespace: "http://a.org/b#"},
		{Label: "c", Namespace: "http://a.org/b"},
	}

	t.Run("declared without triples", func(t *testing.T) {
		assert.Equal(t,
			"@prefix a: <http://a.org/>.\n"+
				"@prefix b: <http://a.org/b#>.\n\n",
			serialize(t, prefixes, nil))
	})

	t.Run("used when possible", func(t *testing.T) {
		output := serialize(t, prefixes, [][3]string{
			{"http://a.org/bc", "http://a.org/b#ef", "http://a.org/bhi"},
			{"http://a.org/bc/de", "http://a.org/b#e#f", "http://a.org/b#x/t"},
			{"http://a.org/3a", "http://a.org/b#3a", "http://a.org/b#a3"},
		})
		assert.Equal(t,
			"@prefix a: <http://a.org/>.\n"+
				"@prefix b: <http://a.org/b#>.\n\n"+
				"a:bc b:ef a:bhi.\n"+
				"<http://a.org/bc/de> <http://a.org/b#e#f> <http://a.org/b#x/t>.\n"+
				"<http://a.org/3a> <http://a.org/b#3a> b:a3.\n",
			output)
	})

	t.Run("rdf:type bypasses compaction", func(t *testing.T) {
		rdfPrefix := []Prefix{{Label: "rdf", Namespace: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"}}
		output := serialize(t, rdfPrefix, [][3]string{{"abc", RDFType, RDFType}})
		assert.Equal(t,
			"@prefix rdf: <http://www.w3.org/1999/02/22-rdf-syntax-ns#>.\n\n"+
				"<abc> a rdf:type.\n",
			output)
	})
}

func TestWriterRejectsLiteralPositions(t *testing.T) {
	tests := []struct {
		name     string
		triple   Triple
		expected string
	}{
		{
			name:     "subject",
			triple:   Triple{S: Literal{Lexical: "a"}, P: IRI{Value: "b"}, O: Literal{Lexical: "c"}},
			expected: `A literal as subject is not allowed: "a"`,
		},
		{
			name:     "predicate",
			triple:   Triple{S: IRI{Value: "a"}, P: Literal{Lexical: "b"}, O: Literal{Lexical: "c"}},
			expected: `A literal as predicate is not allowed: "b"`,
		},
		{
			name:     "tagged subject",
			triple:   Triple{S: Literal{Lexical: "a", Lang: "en"}, P: IRI{Value: "b"}, O: IRI{Value: "c"}},
			expected: `A literal as subject is not allowed: "a"@en`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sink := &recordingSink{}
			w := NewWriter(OptSink(sink))

			err := w.AddTriple(ctx, tt.triple)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.ErrorIs(t, err, ErrInvalidTermPosition)
			assert.Equal(t, ErrCodeInvalidTermPosition, Code(err))
			assert.Empty(t, sink.chunks, "nothing is written for a rejected triple")

			require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "a", "b", "c")))
			_, err = w.End(ctx)
			require.NoError(t, err)
			assert.Equal(t, "<a> <b> <c>.\n", sink.String())
		})
	}
}

func TestWriterRejectedTripleDoesNotJoinGroup(t *testing.T) {
	ctx := context.Background()
	w := NewWriter()
	require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "s", "p", "o1")))
	err := w.AddTriple(ctx, Triple{S: IRI{Value: "s"}, P: Literal{Lexical: "p"}, O: IRI{Value: "o2"}})
	require.ErrorIs(t, err, ErrInvalidTermPosition)
	require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "s", "p", "o3")))

	output, err := w.End(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<s> <p> <o1>, <o3>.\n", output)
}

func TestWriterMissingTerm(t *testing.T) {
	w := NewWriter()
	err := w.AddTriple(context.Background(), Triple{S: IRI{Value: "s"}, P: IRI{Value: "p"}})
	require.ErrorIs(t, err, ErrMissingTerm)
	assert.Equal(t, ErrCodeMissingTerm, Code(err))
}

func TestWriterBuffersWithoutSink(t *testing.T) {
	ctx := context.Background()

	t.Run("plain", func(t *testing.T) {
		w := NewWriter()
		require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "a", "b", "c")))
		output, err := w.End(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<a> <b> <c>.\n", output)
	})

	t.Run("with prefixes", func(t *testing.T) {
		w := NewWriter(OptPrefixes(Prefix{Label: "a", Namespace: "b#"}))
		require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "b#a", "b#b", "b#c")))
		output, err := w.End(ctx)
		require.NoError(t, err)
		assert.Equal(t, "@prefix a: <b#>.\n\na:a a:b a:c.\n", output)
	})
}

func TestWriterStreamsOneChunkPerTriple(t *testing.T) {
	ctx := context.Background()
	sink := &recordingSink{}
	w := NewWriter(OptSink(sink), OptPrefixes(Prefix{Label: "ex", Namespace: "http://example.org/"}))

	require.NoError(t, w.AddTriples(ctx,
		parsedTriple(t, "http://example.org/s", "http://example.org/p", "http://example.org/o1"),
		parsedTriple(t, "http://example.org/s", "http://example.org/p", "http://example.org/o2"),
		parsedTriple(t, "http://example.org/s", "http://example.org/q", `"x"`),
		parsedTriple(t, "http://example.org/t", "http://example.org/q", `"y"`),
	))
	require.Len(t, sink.chunks, 4)
	assert.Equal(t, "@prefix ex: <http://example.org/>.\n\nex:s ex:p ex:o1", sink.chunks[0])
	assert.Equal(t, ", ex:o2", sink.chunks[1])
	assert.Equal(t, ";\n    ex:q \"x\"", sink.chunks[2])
	assert.Equal(t, ".\nex:t ex:q \"y\"", sink.chunks[3])

	_, err := w.End(ctx)
	require.NoError(t, err)
	require.Len(t, sink.chunks, 5)
	assert.Equal(t, ".\n", sink.chunks[4])
}

func TestWriterEndClosePanics(t *testing.T) {
	w := NewWriter(OptSink(&panickingSink{}))

	var err error
	require.NotPanics(t, func() {
		_, err = w.End(context.Background())
	})
	require.Error(t, err)
	assert.Equal(t, ErrCodeSinkClose, Code(err))
	assert.Contains(t, err.Error(), "panic: error")
	assert.True(t, w.Ended())
}

func TestWriterWritePanics(t *testing.T) {
	ctx := context.Background()
	w := NewWriter(OptSink(&panickingSink{panicOnWrite: true}))

	var err error
	require.NotPanics(t, func() {
		err = w.AddTriple(ctx, parsedTriple(t, "a", "b", "c"))
	})
	require.Error(t, err)
	assert.Equal(t, ErrCodeSinkWrite, Code(err))
	assert.Contains(t, err.Error(), "write exploded")
}

func TestWriterSinkErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("write failure is sticky", func(t *testing.T) {
		sink := &recordingSink{writeErr: io.ErrClosedPipe}
		w := NewWriter(OptSink(sink))

		err := w.AddTriple(ctx, parsedTriple(t, "a", "b", "c"))
		require.ErrorIs(t, err, io.ErrClosedPipe)
		var sinkErr *SinkError
		require.True(t, errors.As(err, &sinkErr))
		assert.Equal(t, "write", sinkErr.Op)

		err = w.AddTriple(ctx, parsedTriple(t, "d", "e", "f"))
		assert.ErrorIs(t, err, io.ErrClosedPipe)
		assert.ErrorIs(t, w.Flush(ctx), io.ErrClosedPipe)

		_, err = w.End(ctx)
		assert.ErrorIs(t, err, io.ErrClosedPipe)
		assert.True(t, sink.closed, "sink is closed even after a write failure")
	})

	t.Run("close failure", func(t *testing.T) {
		closeErr := errors.New("disk full")
		sink := &recordingSink{closeErr: closeErr}
		w := NewWriter(OptSink(sink))
		require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "a", "b", "c")))

		_, err := w.End(ctx)
		require.ErrorIs(t, err, closeErr)
		assert.Equal(t, ErrCodeSinkClose, Code(err))
		assert.Equal(t, "<a> <b> <c>.\n", sink.String())
		assert.True(t, w.Ended())
	})
}

func TestWriterEnded(t *testing.T) {
	ctx := context.Background()
	w := NewWriter()
	_, err := w.End(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, w.AddTriple(ctx, parsedTriple(t, "a", "b", "c")), ErrWriterEnded)
	assert.ErrorIs(t, w.Flush(ctx), ErrWriterEnded)
	_, err = w.End(ctx)
	assert.ErrorIs(t, err, ErrWriterEnded)
	assert.Equal(t, ErrCodeWriterEnded, Code(err))
}

func TestWriterOutput(t *testing.T) {
	ctx := context.Background()
	var buf strings.Builder
	w := NewWriter(OptOutput(&buf))

	require.NoError(t, w.AddTriple(ctx, parsedTriple(t, "a", "b", "c")))
	assert.Empty(t, buf.String(), "stream sink buffers until flushed")
	require.NoError(t, w.Flush(ctx))
	assert.Equal(t, "<a> <b> <c>", buf.String())

	output, err := w.End(ctx)
	require.NoError(t, err)
	assert.Empty(t, output)
	assert.Equal(t, "<a> <b> <c>.\n", buf.String())
}
