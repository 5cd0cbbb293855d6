package sparql

import "fmt"

// CellKind identifies the RDF term kind held by a Cell.
type CellKind uint8

const (
	// CellIRI represents an IRI term.
	CellIRI CellKind = iota
	// CellLiteral represents a literal term.
	CellLiteral
	// CellBlankNode represents a blank node term.
	CellBlankNode
)

// String returns the lower-case name of the kind.
func (k CellKind) String() string {
	switch k {
	case CellIRI:
		return "iri"
	case CellLiteral:
		return "literal"
	case CellBlankNode:
		return "bnode"
	default:
		return "unknown"
	}
}

// Cell is one bound value in a solution row.
type Cell struct {
	// Kind is the RDF term kind.
	Kind CellKind
	// Value is the lexical form: the IRI string, the literal text, or
	// the blank node label.
	Value string
	// Datatype is the datatype IRI of a typed literal. Never set
	// together with Lang.
	Datatype string
	// Lang is the language tag of a language-tagged literal. Never set
	// together with Datatype.
	Lang string
	// ID is the raw term identifier: equal to Value for IRIs, the label
	// for blank nodes, empty for literals.
	ID string
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellIRI:
		return "<" + c.Value + ">"
	case CellBlankNode:
		return "_:" + c.Value
	default:
		if c.Lang != "" {
			return fmt.Sprintf("%q@%s", c.Value, c.Lang)
		}
		if c.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", c.Value, c.Datatype)
		}
		return fmt.Sprintf("%q", c.Value)
	}
}

// Row maps variable names to bound cells. A variable absent from the map
// is unbound in this solution; an unbound variable is never represented
// as an empty-string literal.
type Row map[string]Cell

// Bound returns the cell bound to the named variable and whether the
// variable is bound at all.
func (r Row) Bound(name string) (Cell, bool) {
	c, ok := r[name]
	return c, ok
}

// Results is a decoded query result. The concrete type is one of
// *TableResult, *BooleanResult, or *GraphResult.
type Results interface {
	resultForm()
}

// TableResult holds the solutions of a SELECT query.
type TableResult struct {
	// Columns lists the variable names in the exact order declared by
	// the response's head.vars.
	Columns []string
	// Rows holds one Row per solution, in response order.
	Rows []Row
}

func (*TableResult) resultForm() {}

// RowCount returns the number of solution rows.
func (t *TableResult) RowCount() int { return len(t.Rows) }

// BooleanResult holds the answer of an ASK query.
type BooleanResult struct {
	// Value is the boolean answer.
	Value bool
}

func (*BooleanResult) resultForm() {}

// GraphResult holds a response body that is not in the JSON results
// family (Turtle, RDF/XML, JSON-LD, XML results, CSV, TSV, ...). The
// body is passed through verbatim; no structural parsing is attempted.
type GraphResult struct {
	// Raw is the response body text, unmodified.
	Raw string
	// ContentType is the media type declared by the endpoint.
	ContentType string
}

func (*GraphResult) resultForm() {}
