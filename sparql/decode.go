package sparql

import (
	"encoding/json"
	"fmt"
)

// Wire structs for the SPARQL 1.1 Query Results JSON format. Boolean is
// kept raw so that presence and type can be checked independently: a
// present non-boolean value is a decode failure, not a coercion.
type jsonResultsDoc struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Boolean json.RawMessage `json:"boolean"`
	Results *struct {
		Bindings []map[string]jsonTerm `json:"bindings"`
	} `json:"results"`
}

type jsonTerm struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype"`
	Lang     string `json:"xml:lang"`
}

// DecodeResults decodes a response body according to its declared content
// type. Only the JSON results family is decoded structurally; any other
// content type is returned verbatim as a *GraphResult. Decoding is pure
// and deterministic: the same input always yields structurally equal
// output, and malformed input always fails with a parse-kind *QueryError
// rather than being coerced.
func DecodeResults(body, contentType string) (Results, error) {
	if !isJSONResults(contentType) {
		return &GraphResult{Raw: body, ContentType: contentType}, nil
	}

	var doc jsonResultsDoc
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, parseError("the response is not valid SPARQL results JSON", body, err)
	}

	if doc.Boolean != nil {
		var value bool
		if err := json.Unmarshal(doc.Boolean, &value); err != nil {
			return nil, parseError("the boolean field is not a boolean", body, err)
		}
		return &BooleanResult{Value: value}, nil
	}

	if doc.Results == nil {
		return nil, parseError("the response carries neither a boolean nor a results section", body, nil)
	}

	columns := doc.Head.Vars
	if columns == nil {
		columns = []string{}
	}

	rows := make([]Row, 0, len(doc.Results.Bindings))
	for i, binding := range doc.Results.Bindings {
		row := make(Row, len(binding))
		for name, term := range binding {
			cell, err := parseTerm(term)
			if err != nil {
				return nil, parseError(
					fmt.Sprintf("binding %d, variable %q: %v", i, name, err), body, err)
			}
			row[name] = cell
		}
		rows = append(rows, row)
	}

	return &TableResult{Columns: columns, Rows: rows}, nil
}

// parseTerm converts one wire-format term into a typed Cell. It is total
// over well-formed terms and fails on an unrecognized term kind. A
// language-tagged literal never carries a datatype: the tagged form wins,
// matching the mutual exclusivity of the two annotations.
func parseTerm(term jsonTerm) (Cell, error) {
	switch term.Type {
	case "uri":
		return Cell{Kind: CellIRI, Value: term.Value, ID: term.Value}, nil
	case "bnode":
		return Cell{Kind: CellBlankNode, Value: term.Value, ID: term.Value}, nil
	case "literal", "typed-literal":
		// "typed-literal" is the legacy spelling some stores still emit.
		cell := Cell{Kind: CellLiteral, Value: term.Value}
		switch {
		case term.Lang != "":
			cell.Lang = term.Lang
		case term.Datatype != "":
			cell.Datatype = term.Datatype
		}
		return cell, nil
	default:
		return Cell{}, fmt.Errorf("unrecognized term kind %q", term.Type)
	}
}
