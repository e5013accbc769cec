// Package parser — see parser.go for the Parser type and SyntaxError.
//
// Grammar (spec §4.2), implemented as recursive descent rather than a
// generated LALR(1) table — the original C sources (bnf-parser/Parser.c)
// are bison output; a hand-written Go parser expresses the identical
// productions without carrying a parser-generator dependency, per the
// "lift yylval/yychar into an explicit parser-state record" design note.
package parser
