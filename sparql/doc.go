// Package sparql implements a stateless SPARQL Protocol client and a
// result codec for the SPARQL 1.1 Query Results JSON format.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// The package covers the client side of the SPARQL Protocol:
//   - Classify: determines the query form (SELECT, ASK, CONSTRUCT,
//     DESCRIBE, or an update) from raw query text.
//   - AcceptHeader: builds a weighted content-negotiation header for a
//     query form and a preferred result format.
//   - Client.Execute: issues one HTTP request per call, selecting GET or
//     POST according to the query form and the encoded URL length, and
//     returns a decoded result or a *QueryError.
//   - DecodeResults: decodes a response body into a TableResult,
//     BooleanResult, or an opaque GraphResult, preserving RDF term kinds
//     (IRI, literal with datatype or language tag, blank node) and the
//     distinction between an unbound variable and an empty literal.
//
// Failures converge to a single *QueryError value carrying one of seven
// kinds (network, cors, timeout, http, sparql, parse, unknown). The
// package performs no logging, no retries, and no caching; those are the
// caller's responsibility.
//
// A Client holds no per-call state. Each call is fully independent and
// may run concurrently with any number of other calls; cancellation and
// timeouts are expressed through the context passed to Execute.
//
// Example (executing a SELECT query):
//
//	c := sparql.NewClient()
//	res, err := c.Execute(ctx, sparql.Request{
//	    Endpoint: "https://example.org/sparql",
//	    Query:    "SELECT * WHERE { ?s ?p ?o } LIMIT 10",
//	})
//	if err != nil {
//	    var qe *sparql.QueryError
//	    if errors.As(err, &qe) {
//	        // qe.Kind tells the caller how to react.
//	    }
//	}
//	if table, ok := res.(*sparql.TableResult); ok {
//	    // table.Columns preserves head.vars order; absent keys in a
//	    // row mean the variable is unbound.
//	}
//
// Only the JSON results family is decoded structurally. Every other
// content type (XML results, Turtle, RDF/XML, JSON-LD, CSV, TSV) is
// returned as a GraphResult holding the raw text and the declared
// content type.
package sparql
