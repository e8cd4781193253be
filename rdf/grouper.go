package rdf

type groupState uint8

const (
	groupEmpty groupState = iota
	groupOpen
)

const predicateIndent = "    "

// grouper tracks the open statement and decides the punctuation that joins
// the next triple to it. Terms are compared by their rendered form.
type grouper struct {
	state     groupState
	subject   string
	predicate string
}

// next returns the text for a rendered triple and records it as the open
// statement.
func (g *grouper) next(subject, predicate, object string) string {
	switch {
	case g.state == groupOpen && subject == g.subject && predicate == g.predicate:
		return ", " + object
	case g.state == groupOpen && subject == g.subject:
		g.predicate = predicate
		return ";\n" + predicateIndent + predicate + " " + object
	}
	prefix := ""
	if g.state == groupOpen {
		prefix = ".\n"
	}
	g.state = groupOpen
	g.subject = subject
	g.predicate = predicate
	return prefix + subject + " " + predicate + " " + object
}

// close returns the terminator for the open statement, if any.
func (g *grouper) close() string {
	if g.state != groupOpen {
		return ""
	}
	g.state = groupEmpty
	g.subject, g.predicate = "", ""
	return ".\n"
}
