package rdf

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// RDFType is the rdf:type predicate, written as "a" in Turtle.
const RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
//
// A literal is either plain, language-tagged or typed. If both Lang and
// Datatype are set, Lang takes precedence.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns the literal in term notation, without escaping:
// "lexical", "lexical"@lang or "lexical"^^<datatype>.
// ParseTerm reads this notation back.
func (l Literal) String() string {
	quoted := `"` + l.Lexical + `"`
	if l.Lang != "" {
		return quoted + "@" + l.Lang
	}
	if l.Datatype.Value != "" {
		return quoted + "^^<" + l.Datatype.Value + ">"
	}
	return quoted
}

// Triple is an RDF triple. Writers reject a Literal in S or P.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P Term
	// O is the object.
	O Term
}

// Position identifies the slot a term occupies in a triple.
type Position uint8

const (
	// PositionSubject is the subject slot.
	PositionSubject Position = iota
	// PositionPredicate is the predicate slot.
	PositionPredicate
	// PositionObject is the object slot.
	PositionObject
)

func (p Position) String() string {
	switch p {
	case PositionSubject:
		return "subject"
	case PositionPredicate:
		return "predicate"
	case PositionObject:
		return "object"
	default:
		return "unknown"
	}
}
