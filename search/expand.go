package search

// Expander widens a token set with entries from a static synonym table.
// Expansion is a single level deep: synonyms of synonyms are not followed.
type Expander struct {
	table map[string][]string
}

// NewExpander wraps a synonym table. The table is read, never mutated.
func NewExpander(table map[string][]string) *Expander {
	return &Expander{table: table}
}

// Expand returns the token set unioned with the synonyms of every token that
// appears as a key in the table. The result is always a superset of the input;
// tokens without synonyms pass through unchanged.
func (e *Expander) Expand(tokens []string) map[string]struct{} {
	expanded := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		expanded[tok] = struct{}{}
	}
	for _, tok := range tokens {
		for _, syn := range e.table[tok] {
			expanded[syn] = struct{}{}
		}
	}
	return expanded
}
