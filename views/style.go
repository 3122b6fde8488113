package views

import (
	"strings"

	g "maragu.dev/gomponents"
)

// Decl is one CSS declaration of an inline style.
type Decl struct {
	Property string
	Value    string
}

// InlineStyle builds a style attribute. Declarations keep their given
// order so the output is stable across renders.
func InlineStyle(decls ...Decl) g.Node {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return g.Attr("style", strings.Join(parts, "; "))
}
