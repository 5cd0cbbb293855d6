package sparql

import "strings"

// QueryType identifies the form of a SPARQL query or update.
type QueryType uint8

const (
	// QuerySelect is a SELECT query.
	QuerySelect QueryType = iota
	// QueryAsk is an ASK query.
	QueryAsk
	// QueryConstruct is a CONSTRUCT query.
	QueryConstruct
	// QueryDescribe is a DESCRIBE query.
	QueryDescribe
	// QueryUpdate is any SPARQL Update operation.
	QueryUpdate
)

// String returns the canonical upper-case name of the query type.
func (t QueryType) String() string {
	switch t {
	case QueryAsk:
		return "ASK"
	case QueryConstruct:
		return "CONSTRUCT"
	case QueryDescribe:
		return "DESCRIBE"
	case QueryUpdate:
		return "UPDATE"
	default:
		return "SELECT"
	}
}

// IsUpdate reports whether the type is a SPARQL Update operation.
func (t QueryType) IsUpdate() bool { return t == QueryUpdate }

// updateKeywords are the leading keywords of SPARQL 1.1 Update operations.
var updateKeywords = map[string]bool{
	"INSERT": true,
	"DELETE": true,
	"LOAD":   true,
	"CLEAR":  true,
	"CREATE": true,
	"DROP":   true,
	"COPY":   true,
	"MOVE":   true,
	"ADD":    true,
	"WITH":   true,
}

// Classify determines the query form from raw query text. It skips a
// prologue of zero or more BASE/PREFIX declarations and comments, then
// matches the first remaining keyword case-insensitively. Text that
// matches no known keyword classifies as SELECT.
func Classify(text string) QueryType {
	s := scanner{input: text}
	s.skipSpace()

	// Prologue: any interleaving of BASE and PREFIX declarations.
prologue:
	for {
		switch {
		case s.matchKeyword("PREFIX"):
			s.skipPrefixName()
			s.skipIRIRef()
		case s.matchKeyword("BASE"):
			s.skipIRIRef()
		default:
			break prologue
		}
	}

	word := strings.ToUpper(s.nextWord())
	switch word {
	case "SELECT":
		return QuerySelect
	case "ASK":
		return QueryAsk
	case "CONSTRUCT":
		return QueryConstruct
	case "DESCRIBE":
		return QueryDescribe
	}
	if updateKeywords[word] {
		return QueryUpdate
	}
	return QuerySelect
}

// scanner is a minimal cursor over query text, enough to step past the
// prologue and read the first significant keyword.
type scanner struct {
	input string
	pos   int
}

// skipSpace advances past whitespace and '#' comments.
func (s *scanner) skipSpace() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.pos++
		case c == '#':
			for s.pos < len(s.input) && s.input[s.pos] != '\n' {
				s.pos++
			}
		default:
			return
		}
	}
}

// matchKeyword consumes the keyword if it appears (case-insensitively) at
// the cursor followed by a non-word character.
func (s *scanner) matchKeyword(kw string) bool {
	s.skipSpace()
	end := s.pos + len(kw)
	if end > len(s.input) {
		return false
	}
	if !strings.EqualFold(s.input[s.pos:end], kw) {
		return false
	}
	if end < len(s.input) && isWordChar(s.input[end]) {
		return false
	}
	s.pos = end
	return true
}

// skipPrefixName advances past a "name:" prefix label.
func (s *scanner) skipPrefixName() {
	s.skipSpace()
	for s.pos < len(s.input) && s.input[s.pos] != ':' && s.input[s.pos] != '<' {
		s.pos++
	}
	if s.pos < len(s.input) && s.input[s.pos] == ':' {
		s.pos++
	}
}

// skipIRIRef advances past a "<iri>" reference.
func (s *scanner) skipIRIRef() {
	s.skipSpace()
	if s.pos >= len(s.input) || s.input[s.pos] != '<' {
		return
	}
	for s.pos < len(s.input) && s.input[s.pos] != '>' {
		s.pos++
	}
	if s.pos < len(s.input) {
		s.pos++ // consume '>'
	}
}

// nextWord reads the next run of word characters.
func (s *scanner) nextWord() string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.input) && isWordChar(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
