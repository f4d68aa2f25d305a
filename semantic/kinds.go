package semantic

// KindTable is the value-to-kind lookup populated by the lexical analysis
// collaborator: every scanned token contributes one value/kind pair. It also
// keeps the reverse kind-to-value direction, which the analyzer uses to
// resolve the assignment marker's literal value. In both directions the last
// writer wins on duplicates.
type KindTable struct {
	kindOf  map[string]string
	valueOf map[string]string
}

// NewKindTable creates an empty lookup.
func NewKindTable() *KindTable {
	return &KindTable{
		kindOf:  make(map[string]string),
		valueOf: make(map[string]string),
	}
}

// Put records that value was scanned as a token of the given kind.
func (t *KindTable) Put(value, kind string) {
	t.kindOf[value] = kind
	t.valueOf[kind] = value
}

// KindOf returns the kind recorded for a token value, or "" if none.
func (t *KindTable) KindOf(value string) string {
	return t.kindOf[value]
}

// ValueOf returns the token value last recorded for a kind, or "" if none.
func (t *KindTable) ValueOf(kind string) string {
	return t.valueOf[kind]
}

// Len returns the number of distinct token values recorded.
func (t *KindTable) Len() int {
	return len(t.kindOf)
}
