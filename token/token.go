// Package token defines the lexical token kinds produced by the lexer
// when scanning a Bayesian Interchange Format (BIF) source file.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds recognized by the BIF grammar (spec §4.1/§6.1).
const (
	// ILLEGAL marks a byte sequence the lexer could not classify.
	ILLEGAL Kind = iota
	// EOF marks end of input.
	EOF

	// Keywords.
	NETWORK
	VARIABLE
	PROBABILITY
	VARIABLETYPE // "type"
	DISCRETE
	DEFAULTVALUE // "default"
	TABLEVALUES  // "table"

	// Punctuation.
	LCURLY
	RCURLY
	LBRACKET
	RBRACKET
	LPARENS
	RPARENS
	SEMICOLON

	// Literals.
	DECIMAL
	FLOAT
	WORD
	PROPERTY
)

var names = map[Kind]string{
	ILLEGAL:      "ILLEGAL",
	EOF:          "EOF",
	NETWORK:      "NETWORK",
	VARIABLE:     "VARIABLE",
	PROBABILITY:  "PROBABILITY",
	VARIABLETYPE: "VARIABLETYPE",
	DISCRETE:     "DISCRETE",
	DEFAULTVALUE: "DEFAULTVALUE",
	TABLEVALUES:  "TABLEVALUES",
	LCURLY:       "L_CURLY",
	RCURLY:       "R_CURLY",
	LBRACKET:     "L_BRACKET",
	RBRACKET:     "R_BRACKET",
	LPARENS:      "L_PARENS",
	RPARENS:      "R_PARENS",
	SEMICOLON:    "SEMICOLON",
	DECIMAL:      "DECIMAL_LITERAL",
	FLOAT:        "FLOATING_POINT_LITERAL",
	WORD:         "WORD",
	PROPERTY:     "PROPERTY",
}

// String renders the canonical grammar name for k, e.g. "L_CURLY".
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps bare-word spellings to their reserved Kind.
var keywords = map[string]Kind{
	"network":     NETWORK,
	"variable":    VARIABLE,
	"probability": PROBABILITY,
	"type":        VARIABLETYPE,
	"discrete":    DISCRETE,
	"default":     DEFAULTVALUE,
	"table":       TABLEVALUES,
}

// Lookup returns the reserved Kind for word if it is a keyword, and
// ok=false otherwise (the caller should then classify it as WORD).
func Lookup(word string) (k Kind, ok bool) {
	k, ok = keywords[word]
	return k, ok
}

// Token is one lexical unit: a Kind plus whichever payload is relevant.
//
// Exactly one of Str, Int, or Float carries meaningful data, depending on
// Kind; the others are zero. Line is 1-based source line, used for
// parser diagnostics.
type Token struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
	Line  int
}

// String renders a Token for diagnostics and test failure messages.
func (t Token) String() string {
	switch t.Kind {
	case WORD, PROPERTY:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Str)
	case DECIMAL:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Int)
	case FLOAT:
		return fmt.Sprintf("%s(%g)", t.Kind, t.Float)
	default:
		return t.Kind.String()
	}
}
