package sparql

import "strings"

// ResultFormat identifies response serializations a client can ask for.
type ResultFormat string

const (
	// FormatJSON is the SPARQL 1.1 Query Results JSON format.
	FormatJSON ResultFormat = "json"
	// FormatXML is the SPARQL Query Results XML format.
	FormatXML ResultFormat = "xml"
	// FormatCSV is the SPARQL 1.1 Query Results CSV format.
	FormatCSV ResultFormat = "csv"
	// FormatTSV is the SPARQL 1.1 Query Results TSV format.
	FormatTSV ResultFormat = "tsv"
	// FormatTurtle is the Turtle graph serialization.
	FormatTurtle ResultFormat = "turtle"
	// FormatNTriples is the N-Triples graph serialization.
	FormatNTriples ResultFormat = "ntriples"
	// FormatRDFXML is the RDF/XML graph serialization.
	FormatRDFXML ResultFormat = "rdfxml"
	// FormatJSONLD is the JSON-LD graph serialization.
	FormatJSONLD ResultFormat = "jsonld"
)

// Media types used on the wire.
const (
	mediaTypeResultsJSON = "application/sparql-results+json"
	mediaTypeResultsXML  = "application/sparql-results+xml"
	mediaTypeCSV         = "text/csv"
	mediaTypeTSV         = "text/tab-separated-values"
	mediaTypeTurtle      = "text/turtle"
	mediaTypeNTriples    = "application/n-triples"
	mediaTypeRDFXML      = "application/rdf+xml"
	mediaTypeJSONLD      = "application/ld+json"

	mediaTypeQuery  = "application/sparql-query"
	mediaTypeUpdate = "application/sparql-update"
)

// ParseResultFormat normalizes a format string.
func ParseResultFormat(value string) (ResultFormat, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON, true
	case "xml":
		return FormatXML, true
	case "csv":
		return FormatCSV, true
	case "tsv":
		return FormatTSV, true
	case "turtle", "ttl":
		return FormatTurtle, true
	case "ntriples", "nt":
		return FormatNTriples, true
	case "rdfxml", "rdf":
		return FormatRDFXML, true
	case "jsonld", "json-ld":
		return FormatJSONLD, true
	default:
		return "", false
	}
}

// MediaType returns the media type the format is requested as.
func (f ResultFormat) MediaType() string {
	switch f {
	case FormatJSON:
		return mediaTypeResultsJSON
	case FormatXML:
		return mediaTypeResultsXML
	case FormatCSV:
		return mediaTypeCSV
	case FormatTSV:
		return mediaTypeTSV
	case FormatTurtle:
		return mediaTypeTurtle
	case FormatNTriples:
		return mediaTypeNTriples
	case FormatRDFXML:
		return mediaTypeRDFXML
	case FormatJSONLD:
		return mediaTypeJSONLD
	default:
		return ""
	}
}

// AcceptHeader builds the weighted Accept header for a query form. The
// preferred format (or the form's default when preferred is empty) leads
// unweighted, followed by a fixed fallback chain; entries duplicating the
// preferred media type are omitted. The result is never empty and always
// ends in a wildcard fallback, so a conforming endpoint cannot 406 solely
// because a preference is unrecognized.
func AcceptHeader(qt QueryType, preferred ResultFormat) string {
	var lead string
	var chain []string
	switch qt {
	case QueryConstruct, QueryDescribe:
		lead = mediaTypeTurtle
		if mt := preferred.MediaType(); mt != "" {
			lead = mt
		}
		chain = []string{
			mediaTypeTurtle + ";q=0.9",
			mediaTypeJSONLD + ";q=0.8",
		}
	default:
		lead = mediaTypeResultsJSON
		if mt := preferred.MediaType(); mt != "" {
			lead = mt
		}
		chain = []string{
			mediaTypeResultsJSON + ";q=0.9",
			mediaTypeResultsXML + ";q=0.8",
		}
	}

	parts := []string{lead}
	for _, entry := range chain {
		if strings.HasPrefix(entry, lead+";") {
			continue
		}
		parts = append(parts, entry)
	}
	parts = append(parts, "*/*;q=0.7")
	return strings.Join(parts, ", ")
}

// isJSONResults reports whether the content type belongs to the JSON
// results family, the only family decoded structurally.
func isJSONResults(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch mediaType {
	case mediaTypeResultsJSON, "application/json":
		return true
	default:
		return false
	}
}
