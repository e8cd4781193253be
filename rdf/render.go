package rdf

import "strings"

var literalEscaper = strings.NewReplacer(
	`"`, `\"`,
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
	"\b", `\b`,
	"\f", `\f`,
)

// escapeLiteral escapes the lexical form of a literal for a double-quoted
// Turtle string. Single quotes are left alone.
func escapeLiteral(lexical string) string {
	return literalEscaper.Replace(lexical)
}

// renderTerm renders term for the given slot.
func renderTerm(term Term, pos Position, prefixes *PrefixTable) (string, error) {
	switch value := term.(type) {
	case nil:
		return "", ErrMissingTerm
	case IRI:
		return renderIRI(value, pos, prefixes), nil
	case BlankNode:
		return value.String(), nil
	case Literal:
		if pos != PositionObject {
			return "", &TermPositionError{Position: pos, Term: value}
		}
		return renderLiteral(value), nil
	default:
		return "", ErrInvalidTerm
	}
}

func renderIRI(iri IRI, pos Position, prefixes *PrefixTable) string {
	if pos == PositionPredicate && iri.Value == RDFType {
		return "a"
	}
	if qname, ok := prefixes.Compact(iri.Value); ok {
		return qname
	}
	return "<" + iri.Value + ">"
}

func renderLiteral(lit Literal) string {
	quoted := `"` + escapeLiteral(lit.Lexical) + `"`
	if lit.Lang != "" {
		return quoted + "@" + lit.Lang
	}
	if lit.Datatype.Value != "" {
		return quoted + "^^<" + lit.Datatype.Value + ">"
	}
	return quoted
}
