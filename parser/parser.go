// Package parser implements a recursive-descent parser for the BIF
// grammar in spec §4.2, producing a binary ast.Node tree.
//
// Per the "lift yylval/yychar/yydebug into an explicit parser-state
// record" design note, all mutable parse state (current token, the
// lexer, line tracking) lives on the *Parser value; there are no package
// globals. On a grammar mismatch, Parse returns a *SyntaxError and no
// partial tree — callers never see a half-built AST.
package parser

import (
	"fmt"

	"github.com/arlenvance/beliefprop/ast"
	"github.com/arlenvance/beliefprop/lexer"
	"github.com/arlenvance/beliefprop/token"
)

// SyntaxError reports a grammar mismatch with line context, matching
// spec §4.2's "reports line context and aborts parsing".
type SyntaxError struct {
	Line     int
	Expected []token.Kind
	Got      token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: line %d: expected one of %v, got %s", e.Line, e.Expected, e.Got)
}

// Parser holds all mutable state for one parse.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	line int
}

// New returns a Parser that will scan src with lex.
func New(src []byte) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse scans and parses a complete BIF compilation unit, returning its
// root ast.Node. No partial tree is returned on error.
func Parse(src []byte) (*ast.Node, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.parseCompilationUnit()
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	p.line = tok.Line
	return nil
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	if p.cur.Kind != k {
		return token.Token{}, &SyntaxError{Line: p.line, Expected: []token.Kind{k}, Got: p.cur}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// parseCompilationUnit := network_declaration variable_or_prob
func (p *Parser) parseCompilationUnit() (*ast.Node, error) {
	net, err := p.parseNetworkDeclaration()
	if err != nil {
		return nil, err
	}
	decls, err := p.parseVariableOrProbList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindCompilationUnit, Left: net, Right: decls}, nil
}

// network_declaration := NETWORK WORD L_CURLY network_content
// network_content     := R_CURLY | property_list R_CURLY
func (p *Parser) parseNetworkDeclaration() (*ast.Node, error) {
	if _, err := p.expect(token.NETWORK); err != nil {
		return nil, err
	}
	name, err := p.expect(token.WORD)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LCURLY); err != nil {
		return nil, err
	}
	props, err := p.parsePropertyList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RCURLY); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindNetworkDeclaration, Value: name.Str, Left: props}, nil
}

// property_list := ε | property property_list
func (p *Parser) parsePropertyList() (*ast.Node, error) {
	var head, tail *ast.Node
	for p.cur.Kind == token.PROPERTY {
		n := &ast.Node{Kind: ast.KindProperty, Value: p.cur.Str}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
	return head, nil
}

// variable_or_prob := ε | (variable_declaration | probability_declaration) variable_or_prob
func (p *Parser) parseVariableOrProbList() (*ast.Node, error) {
	var head, tail *ast.Node
	for {
		var n *ast.Node
		var err error
		switch p.cur.Kind {
		case token.VARIABLE:
			n, err = p.parseVariableDeclaration()
		case token.PROBABILITY:
			n, err = p.parseProbabilityDeclaration()
		default:
			return head, nil
		}
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
}

// variable_declaration := VARIABLE WORD L_CURLY variable_content
// variable_content     := R_CURLY | property_or_variable_discrete R_CURLY
func (p *Parser) parseVariableDeclaration() (*ast.Node, error) {
	if _, err := p.expect(token.VARIABLE); err != nil {
		return nil, err
	}
	name, err := p.expect(token.WORD)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LCURLY); err != nil {
		return nil, err
	}
	content, err := p.parsePropertyOrVariableDiscreteList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RCURLY); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindVariableDeclaration, Value: name.Str, Left: content}, nil
}

// property_or_variable_discrete := ε | (property | variable_discrete) property_or_variable_discrete
func (p *Parser) parsePropertyOrVariableDiscreteList() (*ast.Node, error) {
	var head, tail *ast.Node
	for {
		var n *ast.Node
		var err error
		switch p.cur.Kind {
		case token.PROPERTY:
			n = &ast.Node{Kind: ast.KindProperty, Value: p.cur.Str}
			err = p.advance()
		case token.VARIABLETYPE:
			n, err = p.parseVariableDiscrete()
		default:
			return head, nil
		}
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
}

// variable_discrete := VARIABLETYPE DISCRETE L_BRACKET DECIMAL_LITERAL R_BRACKET
//
//	L_CURLY variable_values_list R_CURLY SEMICOLON
func (p *Parser) parseVariableDiscrete() (*ast.Node, error) {
	if _, err := p.expect(token.VARIABLETYPE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DISCRETE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACKET); err != nil {
		return nil, err
	}
	n, err := p.expect(token.DECIMAL)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LCURLY); err != nil {
		return nil, err
	}
	values, err := p.parseWordList()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, &SyntaxError{Line: p.line, Expected: []token.Kind{token.WORD}, Got: p.cur}
	}
	if _, err := p.expect(token.RCURLY); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindVariableDiscrete, IntValue: n.Int, Left: wordsToChain(values)}, nil
}

// parseWordList consumes zero or more WORD tokens and returns their text
// (nil when the current token is not a WORD).
func (p *Parser) parseWordList() ([]string, error) {
	var words []string
	for p.cur.Kind == token.WORD {
		words = append(words, p.cur.Str)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return words, nil
}

// parseNumberList consumes zero or more numeric (FLOAT or DECIMAL) tokens
// and returns their values as float64, matching the probability and
// table value lists of spec §6.1.
func (p *Parser) parseNumberList() ([]float64, error) {
	var nums []float64
	for p.cur.Kind == token.FLOAT || p.cur.Kind == token.DECIMAL {
		if p.cur.Kind == token.FLOAT {
			nums = append(nums, p.cur.Float)
		} else {
			nums = append(nums, float64(p.cur.Int))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return nums, nil
}

func wordsToChain(words []string) *ast.Node {
	var head, tail *ast.Node
	for _, w := range words {
		n := &ast.Node{Kind: ast.KindWord, Value: w}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
	return head
}

func floatsToChain(vals []float64) *ast.Node {
	var head, tail *ast.Node
	for _, v := range vals {
		n := &ast.Node{Kind: ast.KindFloatList, DoubleValue: v}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
	return head
}

// probability_declaration := PROBABILITY L_PARENS probability_names_list
//
//	R_PARENS L_CURLY probability_content
//
// probability_content     := R_CURLY | probability_content_entries R_CURLY
func (p *Parser) parseProbabilityDeclaration() (*ast.Node, error) {
	if _, err := p.expect(token.PROBABILITY); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPARENS); err != nil {
		return nil, err
	}
	names, err := p.parseWordList()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, &SyntaxError{Line: p.line, Expected: []token.Kind{token.WORD}, Got: p.cur}
	}
	if _, err := p.expect(token.RPARENS); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LCURLY); err != nil {
		return nil, err
	}
	entries, err := p.parseProbabilityContentEntries()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RCURLY); err != nil {
		return nil, err
	}
	pair := &ast.Node{Kind: ast.KindProbabilityNamesList, Left: wordsToChain(names), Right: entries}
	return &ast.Node{Kind: ast.KindProbabilityDeclaration, Left: pair}, nil
}

// probability_content_entries chains probability_default_entry,
// probability_entry, and probability_table items via Right.
func (p *Parser) parseProbabilityContentEntries() (*ast.Node, error) {
	var head, tail *ast.Node
	for {
		var n *ast.Node
		var err error
		switch p.cur.Kind {
		case token.DEFAULTVALUE:
			n, err = p.parseProbabilityDefaultEntry()
		case token.LPARENS:
			n, err = p.parseProbabilityEntry()
		case token.TABLEVALUES:
			n, err = p.parseProbabilityTable()
		default:
			return head, nil
		}
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = n
		} else {
			tail.Right = n
		}
		tail = n
	}
}

// probability_default_entry := DEFAULTVALUE probability_values_list SEMICOLON
func (p *Parser) parseProbabilityDefaultEntry() (*ast.Node, error) {
	if _, err := p.expect(token.DEFAULTVALUE); err != nil {
		return nil, err
	}
	vals, err := p.parseNumberList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindProbabilityDefaultEntry, Left: floatsToChain(vals)}, nil
}

// probability_entry := L_PARENS probability_values_list R_PARENS
//
//	probability_values_list SEMICOLON
//
// The left list holds parent-state WORD labels; the right list holds
// the numeric probabilities for that combination.
func (p *Parser) parseProbabilityEntry() (*ast.Node, error) {
	if _, err := p.expect(token.LPARENS); err != nil {
		return nil, err
	}
	states, err := p.parseWordList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPARENS); err != nil {
		return nil, err
	}
	vals, err := p.parseNumberList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	pair := &ast.Node{Kind: ast.KindProbabilityValuesList, Left: wordsToChain(states), Right: floatsToChain(vals)}
	return &ast.Node{Kind: ast.KindProbabilityEntry, Left: pair}, nil
}

// probability_table := TABLEVALUES floating_point_list SEMICOLON
func (p *Parser) parseProbabilityTable() (*ast.Node, error) {
	if _, err := p.expect(token.TABLEVALUES); err != nil {
		return nil, err
	}
	vals, err := p.parseNumberList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Node{Kind: ast.KindProbabilityTable, Left: floatsToChain(vals)}, nil
}
