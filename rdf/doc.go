// Package rdf provides a streaming Turtle writer for RDF triples.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// Triples are rendered and handed to a Sink one at a time, so neither the
// triple set nor the output has to fit in memory:
//   - Terms: IRI, BlankNode and Literal; ParseTerm reads the compact string
//     notation ("lit"@en, _:b0, http://example.org/x).
//   - Prefixes: a PrefixTable declares @prefix lines once and abbreviates IRIs
//     with the longest matching namespace.
//   - Grouping: consecutive triples with the same subject are joined with ';',
//     and with the same subject and predicate with ','.
//   - rdf:type is written as "a".
//
// Example (writing to an io.Writer):
//
//	w := rdf.NewWriter(
//	    rdf.OptOutput(os.Stdout),
//	    rdf.OptPrefixes(rdf.Prefix{Label: "foaf", Namespace: "http://xmlns.com/foaf/0.1/"}),
//	)
//	err := w.AddTriple(ctx, rdf.Triple{
//	    S: rdf.IRI{Value: "http://example.org/alice"},
//	    P: rdf.IRI{Value: "http://xmlns.com/foaf/0.1/name"},
//	    O: rdf.Literal{Lexical: "Alice"},
//	})
//	if err != nil {
//	    // handle error
//	}
//	if _, err := w.End(ctx); err != nil {
//	    // handle error
//	}
//
// Without a sink the writer buffers in memory and End returns the text.
//
// Errors never escape as panics: literals in the subject or predicate slot
// are reported as *TermPositionError, and failures or panics from the sink as
// *SinkError. Code maps any returned error to an ErrorCode.
package rdf
