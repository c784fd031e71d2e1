/*
File    : prose/internal/lexer/lexer.go
Package : lexer
*/

// Package lexer turns prose source text into a token.Token slice. It
// reads a run of non-whitespace characters as a "word", strips any
// trailing sentence/argument punctuation, and looks the remainder up in
// the token synonym table; anything not in that table becomes an
// Identifier. Numbers, strings, and single-character operators are
// recognized directly from the leading byte, the same top-level switch
// go-mix/lexer.NextToken uses.
package lexer

import (
	"strconv"
	"strings"

	"github.com/proselang/prosec/internal/diag"
	"github.com/proselang/prosec/internal/token"
)

// Lexer holds the scanning position over a source string. It is used
// once: construct with New, then drain every token with Next until Kind
// == token.EOF.
type Lexer struct {
	src  string
	pos  int
	line int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, pos: 0, line: 1}
}

// Tokens drains the Lexer and returns every token up to and including the
// terminal EOF token. This is the entry point the parser uses.
func Tokens(src string) ([]token.Token, error) {
	l := New(src)
	var out []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

func (l *Lexer) atEOF() bool { return l.pos >= len(l.src) }

func (l *Lexer) peekByte() byte {
	if l.atEOF() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
	}
	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *Lexer) skipSpace() {
	for !l.atEOF() && isSpace(l.peekByte()) {
		l.advance()
	}
}

// Next scans and returns the single next token.
func (l *Lexer) Next() (token.Token, error) {
	l.skipSpace()
	if l.atEOF() {
		return token.Token{Kind: token.EOF, Line: l.line}, nil
	}

	line := l.line
	switch c := l.peekByte(); c {
	case '"':
		return l.readString()
	case '+', '-', '*', '/', '(', ')':
		l.advance()
		return token.Token{Kind: token.Operator, Text: string(c), Line: line}, nil
	case ',':
		l.advance()
		return token.Token{Kind: token.Operator, Text: "&", Line: line}, nil
	case '.':
		l.advance()
		return token.Token{Kind: token.Dot, Text: ".", Line: line}, nil
	default:
		if isDigit(c) {
			return l.readNumber()
		}
		return l.readWord()
	}
}

// readString consumes a `"`-delimited literal; its contents are taken
// verbatim, with no escape processing.
func (l *Lexer) readString() (token.Token, error) {
	line := l.line
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.atEOF() {
			return token.Token{}, diag.New(diag.Lex, line, "unterminated string literal")
		}
		c := l.advance()
		if c == '"' {
			return token.Token{Kind: token.StringLit, Text: sb.String(), Line: line}, nil
		}
		sb.WriteByte(c)
	}
}

// readNumber consumes a run of digits optionally containing a single '.'.
// A trailing '.' with no following digit is pushed back so the sentence
// terminator can match it — this is the load-bearing rule: "5." at the
// end of a sentence lexes as the number 5 followed by a Dot.
func (l *Lexer) readNumber() (token.Token, error) {
	line := l.line
	start := l.pos
	sawDot := false
	for !l.atEOF() {
		c := l.peekByte()
		if isDigit(c) {
			l.advance()
			continue
		}
		if c == '.' && !sawDot {
			// Only consume the dot if a digit follows it; otherwise it is
			// the sentence terminator, not part of this number.
			if l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
				sawDot = true
				l.advance()
				continue
			}
			break
		}
		break
	}
	text := l.src[start:l.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token.Token{}, diag.New(diag.Lex, line, "malformed number literal %q", text)
	}
	return token.Token{Kind: token.NumberLit, Number: n, Text: text, Line: line}, nil
}

// readRawWord skips any leading whitespace, then reads a run of
// non-whitespace characters, stopping short of (and leaving in place) a
// trailing '.' or ',' so that punctuation immediately following a word is
// retokenized on the next call instead of being swallowed into the word.
func (l *Lexer) readRawWord() string {
	l.skipSpace()
	start := l.pos
	for !l.atEOF() && !isSpace(l.peekByte()) {
		c := l.peekByte()
		if c == '.' || c == ',' {
			break
		}
		l.advance()
	}
	return l.src[start:l.pos]
}

// readWord assembles a word token and dispatches through the synonym
// table, handling every multi-word construct:
// "value of", "differs from", "is larger/greater/smaller/less/lower than",
// "That's all/it", and the `Call|Execute|Evaluate [article] function
// "name"` function-reference form.
func (l *Lexer) readWord() (token.Token, error) {
	line := l.line
	word := l.readRawWord()

	kind, ok := token.Lookup(word)
	if !ok {
		if sym, isLogical := token.LogicalWords[word]; isLogical {
			return token.Token{Kind: token.Operator, Text: string(sym), Line: line}, nil
		}
		return token.Token{Kind: token.Identifier, Text: word, Line: line}, nil
	}

	switch kind {
	case token.ValueOf:
		next := l.readRawWord()
		if next != "of" {
			return token.Token{}, diag.New(diag.Lex, line, `"value" must be followed by "of", got %q`, next)
		}
		return token.Token{Kind: token.ValueOf, Text: "value of", Line: line}, nil

	case token.NotEquals:
		next := l.readRawWord()
		if next != "from" {
			return token.Token{}, diag.New(diag.Lex, line, `"differs" must be followed by "from", got %q`, next)
		}
		return token.Token{Kind: token.Operator, Text: "!", Line: line}, nil

	case token.Is:
		next := l.readRawWord()
		var sym string
		switch next {
		case "larger", "greater":
			sym = ">"
		case "smaller", "less", "lower":
			sym = "<"
		default:
			return token.Token{}, diag.New(diag.Lex, line, `"is" must begin a comparison ("is larger/greater/smaller/less/lower than"), got %q`, next)
		}
		then := l.readRawWord()
		if then != "than" {
			return token.Token{}, diag.New(diag.Lex, line, `comparison must end in "than", got %q`, then)
		}
		return token.Token{Kind: token.Operator, Text: sym, Line: line}, nil

	case token.BlockEnd:
		next := l.readRawWord()
		if next != "all" && next != "it" {
			return token.Token{}, diag.New(diag.Lex, line, `"That's" must be followed by "all" or "it", got %q`, next)
		}
		return token.Token{Kind: token.BlockEnd, Text: "That's " + next, Line: line}, nil

	case token.FuncName:
		return l.readCallKeyword(line)

	case token.Plus:
		return token.Token{Kind: token.Operator, Text: "+", Line: line}, nil
	case token.Minus:
		return token.Token{Kind: token.Operator, Text: "-", Line: line}, nil
	case token.Times:
		return token.Token{Kind: token.Operator, Text: "*", Line: line}, nil
	case token.Equals:
		return token.Token{Kind: token.Operator, Text: "=", Line: line}, nil

	case token.Comment:
		l.skipToNextDot()
		return l.Next()

	default:
		return token.Token{Kind: kind, Text: word, Line: line}, nil
	}
}

// readCallKeyword handles `Call|Execute|Evaluate [Article]
// function|subroutine|routine|procedure "name"` — the quoted-name form
// the token table describes. A source that instead writes a bare name
// directly after Call/Execute/Evaluate (e.g. "Call add on r and
// three.") does not match that pattern; rather than raise a lex error,
// the keyword is treated as a no-op filler and scanning resumes from
// just after it, letting the bare name lex as a plain Identifier that the
// parser's statement-call path already handles.
func (l *Lexer) readCallKeyword(line int) (token.Token, error) {
	save, saveLine := l.pos, l.line
	word := l.readRawWord()
	if kind, ok := token.Lookup(word); ok && kind == token.Article {
		word = l.readRawWord()
	}
	switch word {
	case "function", "subroutine", "routine", "procedure":
	default:
		l.pos, l.line = save, saveLine
		return l.Next()
	}
	l.skipSpace()
	nameTok, err := l.Next()
	if err != nil {
		return token.Token{}, err
	}
	if nameTok.Kind != token.StringLit {
		return token.Token{}, diag.New(diag.Lex, line, "expected a quoted function name")
	}
	return token.Token{Kind: token.FuncName, Text: nameTok.Text, Line: line}, nil
}

// skipToNextDot implements the Comment token kind: Note/Notice skip the
// remainder of the sentence, including the terminating Dot.
func (l *Lexer) skipToNextDot() {
	for !l.atEOF() {
		if l.advance() == '.' {
			return
		}
	}
}
