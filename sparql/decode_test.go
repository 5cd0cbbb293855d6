package sparql

import (
	"reflect"
	"testing"
)

const selectBody = `{
  "head": {"vars": ["s", "label", "age", "note", "anon"]},
  "results": {"bindings": [
    {
      "s": {"type": "uri", "value": "http://example.org/alice"},
      "label": {"type": "literal", "value": "Alice", "xml:lang": "en"},
      "age": {"type": "literal", "value": "42", "datatype": "http://www.w3.org/2001/XMLSchema#integer"},
      "note": {"type": "literal", "value": "plain"},
      "anon": {"type": "bnode", "value": "b0"}
    },
    {
      "s": {"type": "uri", "value": "http://example.org/bob"}
    }
  ]}
}`

func TestDecodeSelect(t *testing.T) {
	res, err := DecodeResults(selectBody, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table, ok := res.(*TableResult)
	if !ok {
		t.Fatalf("expected *TableResult, got %T", res)
	}

	wantCols := []string{"s", "label", "age", "note", "anon"}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v (head.vars order preserved)", table.Columns, wantCols)
	}
	if table.RowCount() != 2 {
		t.Fatalf("rows = %d, want 2", table.RowCount())
	}

	row := table.Rows[0]
	if c := row["s"]; c.Kind != CellIRI || c.Value != "http://example.org/alice" || c.ID != c.Value {
		t.Fatalf("iri cell = %+v", c)
	}
	if c := row["label"]; c.Kind != CellLiteral || c.Lang != "en" || c.Datatype != "" {
		t.Fatalf("language-tagged cell = %+v (datatype must be absent)", c)
	}
	if c := row["age"]; c.Kind != CellLiteral || c.Datatype != "http://www.w3.org/2001/XMLSchema#integer" || c.Lang != "" {
		t.Fatalf("typed cell = %+v (lang must be absent)", c)
	}
	if c := row["note"]; c.Kind != CellLiteral || c.Datatype != "" || c.Lang != "" {
		t.Fatalf("plain literal cell = %+v", c)
	}
	if c := row["anon"]; c.Kind != CellBlankNode || c.Value != "b0" {
		t.Fatalf("bnode cell = %+v", c)
	}
}

// A variable missing from a binding is unbound: the row omits the key
// entirely instead of holding an empty-string literal.
func TestDecodeUnboundVariables(t *testing.T) {
	res, err := DecodeResults(selectBody, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := res.(*TableResult).Rows[1]
	if len(row) != 1 {
		t.Fatalf("row 1 has %d keys, want 1", len(row))
	}
	if _, bound := row.Bound("label"); bound {
		t.Fatal("label must be unbound in row 1")
	}
}

func TestDecodeEmptyBinding(t *testing.T) {
	body := `{"head":{"vars":["x"]},"results":{"bindings":[{}]}}`
	res, err := DecodeResults(body, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table := res.(*TableResult)
	if !reflect.DeepEqual(table.Columns, []string{"x"}) {
		t.Fatalf("columns = %v", table.Columns)
	}
	if len(table.Rows) != 1 || len(table.Rows[0]) != 0 {
		t.Fatalf("want one row with zero keys, got %v", table.Rows)
	}
}

func TestDecodeBoolean(t *testing.T) {
	res, err := DecodeResults(`{"head":{"vars":[]},"boolean":true}`, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok := res.(*BooleanResult)
	if !ok {
		t.Fatalf("expected *BooleanResult, got %T", res)
	}
	if !b.Value {
		t.Fatal("value = false, want true")
	}
}

func TestDecodeBooleanWrongType(t *testing.T) {
	_, err := DecodeResults(`{"head":{"vars":[]},"boolean":"yes"}`, mediaTypeResultsJSON)
	if Kind(err) != ErrParse {
		t.Fatalf("kind = %v, want %v", Kind(err), ErrParse)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := DecodeResults(`{"head":`, mediaTypeResultsJSON)
	if Kind(err) != ErrParse {
		t.Fatalf("kind = %v, want %v", Kind(err), ErrParse)
	}
}

func TestDecodeMissingResultsSection(t *testing.T) {
	_, err := DecodeResults(`{"head":{"vars":["x"]}}`, mediaTypeResultsJSON)
	if Kind(err) != ErrParse {
		t.Fatalf("kind = %v, want %v", Kind(err), ErrParse)
	}
}

func TestDecodeUnrecognizedTermKind(t *testing.T) {
	body := `{"head":{"vars":["x"]},"results":{"bindings":[{"x":{"type":"quad","value":"?"}}]}}`
	_, err := DecodeResults(body, mediaTypeResultsJSON)
	if Kind(err) != ErrParse {
		t.Fatalf("kind = %v, want %v", Kind(err), ErrParse)
	}
}

func TestDecodeLegacyTypedLiteral(t *testing.T) {
	body := `{"head":{"vars":["x"]},"results":{"bindings":[{"x":{"type":"typed-literal","value":"1","datatype":"http://www.w3.org/2001/XMLSchema#int"}}]}}`
	res, err := DecodeResults(body, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := res.(*TableResult).Rows[0]["x"]
	if c.Kind != CellLiteral || c.Datatype == "" {
		t.Fatalf("cell = %+v", c)
	}
}

func TestDecodeGraphPassThrough(t *testing.T) {
	raw := "@prefix ex: <http://example.org/> .\nex:a ex:b ex:c ."
	res, err := DecodeResults(raw, "text/turtle; charset=utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, ok := res.(*GraphResult)
	if !ok {
		t.Fatalf("expected *GraphResult, got %T", res)
	}
	if g.Raw != raw {
		t.Fatal("graph body must pass through verbatim")
	}
	if g.ContentType != "text/turtle; charset=utf-8" {
		t.Fatalf("content type = %q", g.ContentType)
	}
}

// Decoding holds no hidden state: the same payload decodes to
// structurally equal results every time.
func TestDecodeIdempotent(t *testing.T) {
	first, err := DecodeResults(selectBody, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DecodeResults(selectBody, mediaTypeResultsJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("decoding the same payload twice must yield structurally equal results")
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		cell Cell
		want string
	}{
		{Cell{Kind: CellIRI, Value: "http://ex.org/a", ID: "http://ex.org/a"}, "<http://ex.org/a>"},
		{Cell{Kind: CellBlankNode, Value: "b0", ID: "b0"}, "_:b0"},
		{Cell{Kind: CellLiteral, Value: "hi", Lang: "en"}, `"hi"@en`},
		{Cell{Kind: CellLiteral, Value: "1", Datatype: "http://www.w3.org/2001/XMLSchema#int"}, `"1"^^<http://www.w3.org/2001/XMLSchema#int>`},
		{Cell{Kind: CellLiteral, Value: "plain"}, `"plain"`},
	}
	for _, c := range cases {
		if got := c.cell.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
