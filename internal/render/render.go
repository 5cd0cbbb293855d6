// Package render turns decoded SPARQL results into deterministic plain
// text. It is a thin consumer of the typed result model: column order and
// row order are preserved exactly, and an unbound variable renders as an
// empty cell, never as an empty-string literal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/geoknoesis/sparql-go/sparql"
)

// Text writes a textual rendering of any decoded result.
func Text(w io.Writer, res sparql.Results) error {
	switch r := res.(type) {
	case *sparql.TableResult:
		return table(w, r)
	case *sparql.BooleanResult:
		_, err := fmt.Fprintf(w, "%t\n", r.Value)
		return err
	case *sparql.GraphResult:
		_, err := io.WriteString(w, ensureTrailingNewline(r.Raw))
		return err
	default:
		return fmt.Errorf("render: unsupported result type %T", res)
	}
}

func table(w io.Writer, t *sparql.TableResult) error {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	cells := make([][]string, len(t.Rows))
	for ri, row := range t.Rows {
		line := make([]string, len(t.Columns))
		for ci, col := range t.Columns {
			if cell, bound := row.Bound(col); bound {
				line[ci] = formatCell(cell)
			}
			if len(line[ci]) > widths[ci] {
				widths[ci] = len(line[ci])
			}
		}
		cells[ri] = line
	}

	if err := writeLine(w, t.Columns, widths); err != nil {
		return err
	}
	rule := make([]string, len(t.Columns))
	for i, width := range widths {
		rule[i] = strings.Repeat("-", width)
	}
	if err := writeLine(w, rule, widths); err != nil {
		return err
	}
	for _, line := range cells {
		if err := writeLine(w, line, widths); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "(%d rows)\n", t.RowCount())
	return err
}

func writeLine(w io.Writer, fields []string, widths []int) error {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + strings.Repeat(" ", widths[i]-len(f))
	}
	_, err := io.WriteString(w, strings.TrimRight(strings.Join(parts, " | "), " ")+"\n")
	return err
}

// formatCell renders one bound value. IRIs keep their angle brackets and
// blank nodes their _: prefix so the term kind stays visible; literal
// annotations follow the value.
func formatCell(c sparql.Cell) string {
	switch c.Kind {
	case sparql.CellIRI:
		return "<" + c.Value + ">"
	case sparql.CellBlankNode:
		return "_:" + c.Value
	default:
		switch {
		case c.Lang != "":
			return c.Value + "@" + c.Lang
		case c.Datatype != "":
			return c.Value + "^^<" + c.Datatype + ">"
		default:
			return c.Value
		}
	}
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
