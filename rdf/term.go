package rdf

import (
	"fmt"
	"strings"
)

// ParseTerm reads a term written in compact string notation:
//
//	http://example.org/x        IRI (any text not matching the forms below)
//	_:b0                        blank node
//	"lexical"                   plain literal
//	"lexical"@en                language-tagged literal
//	"lexical"^^<datatype>       typed literal (angle brackets optional)
//
// The lexical form runs up to the last double quote and is not unescaped, so
// "c"de" denotes the lexical form c"de.
func ParseTerm(value string) (Term, error) {
	switch {
	case value == "":
		return nil, fmt.Errorf("%w: empty term", ErrInvalidTerm)
	case strings.HasPrefix(value, "_:"):
		if len(value) == 2 {
			return nil, fmt.Errorf("%w: empty blank node label", ErrInvalidTerm)
		}
		return BlankNode{ID: value[2:]}, nil
	case value[0] == '"':
		return parseLiteral(value)
	default:
		return IRI{Value: value}, nil
	}
}

func parseLiteral(value string) (Term, error) {
	end := strings.LastIndexByte(value, '"')
	if end == 0 {
		return nil, fmt.Errorf("%w: unterminated literal %s", ErrInvalidTerm, value)
	}
	lit := Literal{Lexical: value[1:end]}
	suffix := value[end+1:]
	switch {
	case suffix == "":
	case strings.HasPrefix(suffix, "@") && len(suffix) > 1:
		lit.Lang = suffix[1:]
	case strings.HasPrefix(suffix, "^^") && len(suffix) > 2:
		datatype := suffix[2:]
		if strings.HasPrefix(datatype, "<") && strings.HasSuffix(datatype, ">") {
			datatype = datatype[1 : len(datatype)-1]
		}
		if datatype == "" {
			return nil, fmt.Errorf("%w: empty datatype in %s", ErrInvalidTerm, value)
		}
		lit.Datatype = IRI{Value: datatype}
	default:
		return nil, fmt.Errorf("%w: unexpected %q after literal", ErrInvalidTerm, suffix)
	}
	return lit, nil
}

// MustParseTerm is like ParseTerm but panics on error.
func MustParseTerm(value string) Term {
	term, err := ParseTerm(value)
	if err != nil {
		panic(err)
	}
	return term
}
