package rdf

// isLocalName reports whether value can follow "label:" unescaped.
func isLocalName(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

// '.' is a valid PN_LOCAL char but would merge with the statement terminator.
func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-'
}

// isDeclarableNamespace reports whether ns can be declared with @prefix.
func isDeclarableNamespace(ns string) bool {
	if ns == "" {
		return false
	}
	last := ns[len(ns)-1]
	return last == '/' || last == '#'
}
