// Package lexer — see lexer.go for the Lexer type.
//
// Token kinds: NETWORK, VARIABLE, PROBABILITY, VARIABLETYPE, DISCRETE,
// DEFAULTVALUE, TABLEVALUES, L_CURLY, R_CURLY, L_BRACKET, R_BRACKET,
// L_PARENS, R_PARENS, SEMICOLON, DECIMAL_LITERAL, FLOATING_POINT_LITERAL,
// WORD, PROPERTY (token.Kind).
//
// "//" starts a line comment that runs to end-of-line. A PROPERTY token
// captures everything between the "property" keyword and the
// terminating ";" verbatim. WORD matches both quoted strings and bare
// identifiers/paths.
package lexer
