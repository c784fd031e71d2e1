/*
File    : prose/internal/parser/parser.go
Package : parser
*/

// Package parser implements prose's recursive-descent parser: a mutable
// cursor over a token.Token slice, one handler per top-level sentence
// kind, and a right-associative expression/term/condition grammar.
// Blocks are read by balanced token-range extraction and handed to a
// fresh Parser instance — this is the one place the grammar is
// genuinely recursive at the token-stream level rather than just in
// the call stack.
package parser

import (
	"github.com/proselang/prosec/internal/ast"
	"github.com/proselang/prosec/internal/diag"
	"github.com/proselang/prosec/internal/token"
	"github.com/proselang/prosec/internal/value"
)

// Parser holds the token vector and the current cursor position.
type Parser struct {
	toks []token.Token
	pos  int
}

// New returns a Parser positioned at the start of toks.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse consumes every statement in toks and returns the program's root
// Block. toks must be EOF-terminated, as lexer.Tokens produces.
func Parse(toks []token.Token) (*ast.Block, error) {
	return New(toks).parseProgram()
}

func (p *Parser) parseProgram() (*ast.Block, error) {
	var stmts []ast.Node
	for {
		switch p.peek().Kind {
		case token.EOF:
			return &ast.Block{Stmts: stmts}, nil
		case token.End:
			// A Stop/End/Quit/Exit sentence halts parsing of the
			// enclosing block immediately; anything textually after it
			// is never turned into a statement, so it has no runtime
			// presence to account for.
			return &ast.Block{Stmts: stmts}, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// pushback decrements the cursor by one. The expression, term and
// condition parsers peek at an operator before consuming it, so none of
// them calls pushback.
func (p *Parser) pushback() {
	p.pos--
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return token.Token{}, diag.New(diag.Parse, tok.Line, "expected %s, got %s %q", kind, tok.Kind, tok.Text)
	}
	return p.advance(), nil
}

func (p *Parser) consumeOptional(kind token.Kind) bool {
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) isOperator(text string) bool {
	tok := p.peek()
	return tok.Kind == token.Operator && tok.Text == text
}

// parseStatement dispatches on the leading token of a sentence.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.peek().Kind {
	case token.Declaration:
		return p.parseDeclaration()
	case token.SetVar:
		return p.parseAssignment()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.FuncName:
		return p.parseCallStatement(p.advance().Text)
	case token.Identifier:
		return p.parseCallStatement(p.advance().Text)
	case token.When:
		return p.parseFuncImpl()
	default:
		tok := p.peek()
		return nil, diag.New(diag.Parse, tok.Line, "unexpected token %s %q at start of sentence", tok.Kind, tok.Text)
	}
}

// parseDeclaration handles `Declaration [Article] Identifier [KnownAs]
// Identifier [On Argument Identifier…]`, producing either a
// VarDeclaration or a FuncDeclaration depending on the type word.
func (p *Parser) parseDeclaration() (ast.Node, error) {
	line := p.peek().Line
	p.advance() // Declaration
	p.consumeOptional(token.Article)

	typeTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	p.consumeOptional(token.KnownAs)

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	var params []string
	if p.consumeOptional(token.On) {
		if _, err := p.expect(token.Argument); err != nil {
			return nil, err
		}
		params, err = p.parseIdentifierList()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Dot); err != nil {
		return nil, err
	}

	switch typeTok.Text {
	case "variable":
		return &ast.VarDeclaration{Name: nameTok.Text, Line: line}, nil
	case "function", "subroutine", "procedure":
		return &ast.FuncDeclaration{Name: nameTok.Text, Params: params, Line: line}, nil
	default:
		return nil, diag.New(diag.Parse, line, "unknown declaration type %q (expected variable/function/subroutine/procedure)", typeTok.Text)
	}
}

// parseIdentifierList reads Identifier tokens separated by the Operator
// "&" token that both "and" and "," lex to.
func (p *Parser) parseIdentifierList() ([]string, error) {
	var names []string
	for {
		tok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Text)
		if p.isOperator("&") {
			p.advance()
			continue
		}
		return names, nil
	}
}

// parseAssignment handles `SetVar [Article] [ValueOf] [Article]
// Identifier To <expression>`.
func (p *Parser) parseAssignment() (ast.Node, error) {
	line := p.peek().Line
	p.advance() // SetVar
	p.consumeOptional(token.Article)
	p.consumeOptional(token.ValueOf)
	p.consumeOptional(token.Article)

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.To); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Dot); err != nil {
		return nil, err
	}
	return &ast.Assignment{Name: nameTok.Text, RHS: rhs, Line: line}, nil
}

// parseIf handles `If <condition> BlockBegin … BlockEnd . [Else
// BlockBegin … BlockEnd .]`.
func (p *Parser) parseIf() (ast.Node, error) {
	line := p.peek().Line
	p.advance() // If
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.BlockBegin); err != nil {
		return nil, err
	}
	then, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Dot); err != nil {
		return nil, err
	}

	stmt := &ast.IfStatement{Condition: cond, Then: then, Line: line}
	if p.consumeOptional(token.Else) {
		if _, err := p.expect(token.BlockBegin); err != nil {
			return nil, err
		}
		elseBlock, err := p.parseBlockBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Dot); err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

// parseWhile handles `While <condition> BlockBegin … BlockEnd`.
func (p *Parser) parseWhile() (ast.Node, error) {
	line := p.peek().Line
	p.advance() // While
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.BlockBegin); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	p.consumeOptional(token.Dot)
	return &ast.WhileStatement{Condition: cond, Body: body, Line: line}, nil
}

// parseFuncImpl handles `When [Calling] Identifier BlockBegin … BlockEnd`.
func (p *Parser) parseFuncImpl() (ast.Node, error) {
	line := p.peek().Line
	p.advance() // When
	p.consumeOptional(token.Calling)

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.BlockBegin); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	p.consumeOptional(token.Dot)
	return &ast.FuncImpl{Name: nameTok.Text, Body: body, Line: line}, nil
}

// parseCallStatement handles both statement-call forms: a FuncName token
// carrying the name directly, and a bare Identifier interpreted as a
// function name. name's token was already consumed by the caller.
func (p *Parser) parseCallStatement(name string) (ast.Node, error) {
	line := p.toks[p.pos-1].Line
	var args []ast.Node
	switch {
	case p.consumeOptional(token.On):
		var err error
		args, err = p.parseArgExpressionList()
		if err != nil {
			return nil, err
		}
	case p.peek().Kind != token.Dot:
		// No On/With filler: a statement call's arguments may also
		// follow the name directly (e.g. "Print x and newline."),
		// matching how the source this grammar was distilled from
		// reads statement-level call arguments.
		var err error
		args, err = p.parseArgExpressionList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Dot); err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Name: name, Args: args, Line: line}, nil
}

// parseArgExpressionList reads expressions separated by the Operator "&"
// token (from "and" or ",") for a statement-level call's On/With clause.
func (p *Parser) parseArgExpressionList() ([]ast.Node, error) {
	var args []ast.Node
	for {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, expr)
		if p.isOperator("&") {
			p.advance()
			continue
		}
		return args, nil
	}
}

// parseBlockBody reads the balanced token range up to (and consuming)
// the matching BlockEnd, then parses it with a fresh Parser sharing no
// state with this one beyond the token slice — each block is its own
// self-contained sub-parse.
func (p *Parser) parseBlockBody() (*ast.Block, error) {
	toks, err := p.readBlockTokens()
	if err != nil {
		return nil, err
	}
	toks = append(toks, token.Token{Kind: token.EOF})
	return New(toks).parseProgram()
}

func (p *Parser) readBlockTokens() ([]token.Token, error) {
	start := p.pos
	depth := 1
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			return nil, diag.New(diag.Parse, tok.Line, "unterminated block: missing matching block end")
		case token.BlockBegin:
			depth++
			p.advance()
		case token.BlockEnd:
			depth--
			if depth == 0 {
				body := p.toks[start:p.pos]
				p.advance() // consume the matching BlockEnd itself
				return body, nil
			}
			p.advance()
		default:
			p.advance()
		}
	}
}

// parseExpression implements `expression := term (('+'|'-') expression)?`,
// right-associative.
func (p *Parser) parseExpression() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.isOperator("+") || p.isOperator("-") {
		opTok := p.advance()
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Expression{Left: left, Right: right, Op: opTok.Text[0], Line: opTok.Line}, nil
	}
	return left, nil
}

// parseTerm implements `term := primary (('*'|'/') term)?`,
// right-associative.
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.isOperator("*") || p.isOperator("/") {
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &ast.Expression{Left: left, Right: right, Op: opTok.Text[0], Line: opTok.Line}, nil
	}
	return left, nil
}

// parsePrimary implements:
//
//	primary := String | Number | Article primary
//	         | Identifier
//	         | FuncResult [Of] [Calling] FuncName-call
//	         | '(' expression ')'
//	         | '-' primary
func (p *Parser) parsePrimary() (ast.Node, error) {
	tok := p.peek()
	switch {
	case tok.Kind == token.StringLit:
		p.advance()
		return &ast.Literal{Val: value.String(tok.Text)}, nil

	case tok.Kind == token.NumberLit:
		p.advance()
		return &ast.Literal{Val: value.Number(tok.Number)}, nil

	case tok.Kind == token.Article:
		p.advance()
		return p.parsePrimary()

	case tok.Kind == token.Operator && tok.Text == "-":
		p.advance()
		child, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: '-', Child: child, Line: tok.Line}, nil

	case tok.Kind == token.Operator && tok.Text == "(":
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectOperator(")"); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Kind == token.FuncResult:
		p.advance()
		return p.parseFuncResultCall(tok.Line)

	case tok.Kind == token.Identifier:
		p.advance()
		return &ast.VarRef{Name: tok.Text, Line: tok.Line}, nil

	default:
		return nil, diag.New(diag.Parse, tok.Line, "unexpected token %s %q in expression", tok.Kind, tok.Text)
	}
}

// parseFuncResultCall handles `FuncResult [Of] [Calling] <func>`, where
// <func> is a FuncName token or a bare Identifier taken as the function
// name. A following On/With clause supplies arguments; without one the
// call takes none.
func (p *Parser) parseFuncResultCall(line int) (ast.Node, error) {
	p.consumeOptional(token.Of)
	p.consumeOptional(token.Calling)

	var name string
	switch p.peek().Kind {
	case token.FuncName:
		name = p.advance().Text
	case token.Identifier:
		name = p.advance().Text
	default:
		tok := p.peek()
		return nil, diag.New(diag.Parse, tok.Line, "expected a function name after %q, got %s %q", "result of", tok.Kind, tok.Text)
	}

	var args []ast.Node
	if p.consumeOptional(token.On) {
		var err error
		args, err = p.parseArgExpressionList()
		if err != nil {
			return nil, err
		}
	}
	return &ast.FunctionCall{Name: name, Args: args, Line: line}, nil
}

func (p *Parser) expectOperator(text string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != token.Operator || tok.Text != text {
		return token.Token{}, diag.New(diag.Parse, tok.Line, "expected operator %q, got %s %q", text, tok.Kind, tok.Text)
	}
	return p.advance(), nil
}

// parseCondition implements `condition := condition_term (('&'|'|')
// condition)?`.
func (p *Parser) parseCondition() (ast.Node, error) {
	left, err := p.parseConditionTerm()
	if err != nil {
		return nil, err
	}
	if p.isOperator("&") || p.isOperator("|") {
		opTok := p.advance()
		right, err := p.parseCondition()
		if err != nil {
			return nil, err
		}
		return &ast.Condition{Left: left, Right: right, Op: opTok.Text[0], Line: opTok.Line}, nil
	}
	return left, nil
}

// parseConditionTerm implements `condition_term := expression <rel-op>
// expression`.
func (p *Parser) parseConditionTerm() (ast.Node, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.Kind != token.Operator || !isRelOp(tok.Text) {
		return nil, diag.New(diag.Parse, tok.Line, "expected a comparison operator, got %s %q", tok.Kind, tok.Text)
	}
	p.advance()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Condition{Left: left, Right: right, Op: tok.Text[0], Line: tok.Line}, nil
}

func isRelOp(text string) bool {
	switch text {
	case "=", "!", "<", ">":
		return true
	default:
		return false
	}
}
