/*
File    : prose/internal/token/token.go
Package : token
*/

// Package token defines the lexical token kinds recognized by the prose
// language and the synonym table that maps surface words onto them.
//
// prose's surface syntax is deliberately redundant: "Declare", "Create" and
// "Make" all introduce a declaration, "Set" and "Change" both assign, and
// so on. The Kind enumeration names the underlying grammatical role a word
// plays; Synonyms maps every recognized surface word to that role so the
// lexer can stay a single table lookup instead of a wall of string
// comparisons.
package token

import "fmt"

// Kind identifies the grammatical role of a token. It is a string so that
// tokens print legibly in error messages and test failures.
type Kind string

// Token kinds, grouped conceptually: declarations, control keywords,
// operators, and the catch-all Identifier/literal kinds.
const (
	EOF        Kind = "EOF"
	Identifier Kind = "IDENTIFIER"
	StringLit  Kind = "STRING"
	NumberLit  Kind = "NUMBER"

	Declaration Kind = "DECLARATION" // Declare, Create, Make, ...
	SetVar      Kind = "SETVAR"      // Change, Set, Vary, ...
	Article     Kind = "ARTICLE"     // a, an, another, the
	ValueOf     Kind = "VALUEOF"     // "value of"
	To          Kind = "TO"         // to, by, into
	KnownAs     Kind = "KNOWNAS"    // named, called, labeled, titled
	End         Kind = "END"        // Stop, End, Quit, Exit
	Plus        Kind = "PLUS"       // plus (word form of +)
	Minus       Kind = "MINUS"      // minus (word form of -)
	Times       Kind = "TIMES"      // times (word form of *)
	If          Kind = "IF"
	Else        Kind = "ELSE" // Otherwise, Else
	Equals      Kind = "EQUALS"
	NotEquals   Kind = "NOTEQUALS" // "differs from"
	Is          Kind = "IS"        // begins "is larger/smaller than"
	BlockBegin  Kind = "BLOCKBEGIN" // then:, do:
	BlockEnd    Kind = "BLOCKEND"   // "That's all"/"That's it"
	FuncName    Kind = "FUNCNAME"   // Call/Execute/Evaluate "function" "name"
	FuncResult  Kind = "FUNCRESULT" // result, outcome
	On          Kind = "ON"         // on, with
	Of          Kind = "OF"         // of, from
	While       Kind = "WHILE"
	Comment     Kind = "COMMENT" // Note, Notice (skips to next Dot)
	Argument    Kind = "ARGUMENT" // argument(s), parameter(s)
	When        Kind = "WHEN"     // When, Whenever, Upon
	Calling     Kind = "CALLING"  // calling, executing, evaluating, running

	Operator Kind = "OPERATOR" // '+' '-' '*' '/' '(' ')' '&' '|' '=' '!' '<' '>'
	Dot      Kind = "DOT"      // sentence terminator
)

// Token is a single lexical unit: its Kind, an optional payload (the
// literal word, string contents, a numeric value, or an operator rune),
// and the 1-indexed source line it was read from. Token order in the
// sequence a Lexer produces is significant — the parser never re-sorts it.
type Token struct {
	Kind   Kind
	Text   string  // identifier text, string contents, or operator symbol
	Number float64 // populated only when Kind == NumberLit
	Line   int
}

// synonymTable maps every recognized surface word to the Kind it denotes.
// Case is significant: the source distinguishes "If" (a keyword) from an
// identifier that happens to read "if" only by virtue of it not appearing
// here — by construction, everything below uses the exact casing the
// surface grammar gives each keyword.
var synonymTable = map[string]Kind{
	"Declare": Declaration, "Create": Declaration, "Make": Declaration,
	"Construct": Declaration, "Spawn": Declaration, "Manufacture": Declaration,
	"Name": Declaration, "Label": Declaration,

	"Change": SetVar, "Set": SetVar, "Vary": SetVar, "Alter": SetVar,
	"Modify": SetVar, "Adjust": SetVar,

	"a": Article, "an": Article, "another": Article, "the": Article,

	"value": ValueOf,

	"to": To, "by": To, "into": To,

	"named": KnownAs, "called": KnownAs, "labeled": KnownAs, "titled": KnownAs,

	"Stop": End, "End": End, "Quit": End, "Exit": End,

	"plus": Plus, "minus": Minus, "times": Times,

	"If": If,

	"Otherwise": Else, "Else": Else,

	"equals": Equals,

	"differs": NotEquals,

	"is": Is,

	"then:": BlockBegin, "do:": BlockBegin,

	"That's": BlockEnd,

	"Call": FuncName, "Execute": FuncName, "Evaluate": FuncName,

	"result": FuncResult, "outcome": FuncResult,

	"on": On, "with": On,

	"of": Of, "from": Of,

	"While": While,

	"Note": Comment, "Notice": Comment, "Note:": Comment, "Notice:": Comment,

	"argument": Argument, "arguments": Argument,
	"parameter": Argument, "parameters": Argument,

	"When": When, "Whenever": When, "Upon": When,

	"calling": Calling, "executing": Calling, "evaluating": Calling, "running": Calling,
}

// LogicalWords maps the word forms of the logical operators to the single
// operator rune the parser matches against, the same way Plus/Minus/Times
// collapse "plus"/"minus"/"times" onto '+'/'-'/'*'. "and" and "or" are kept
// out of synonymTable because, unlike the other word-operators, they share
// Kind Operator with the symbolic comma ('&') and have no word form of
// their own elsewhere in the grammar.
var LogicalWords = map[string]byte{
	"and": '&',
	"or":  '|',
}

// Lookup resolves a surface word to its Kind. The second return value is
// false when the word is not part of the synonym vocabulary, in which
// case the lexer treats it as a plain Identifier.
func Lookup(word string) (Kind, bool) {
	k, ok := synonymTable[word]
	return k, ok
}

// String renders a Token for diagnostics and the `prose lex` subcommand,
// e.g. `OPERATOR "+" @3`.
func (t Token) String() string {
	switch t.Kind {
	case NumberLit:
		return fmt.Sprintf("%s %g @%d", t.Kind, t.Number, t.Line)
	case EOF:
		return fmt.Sprintf("EOF @%d", t.Line)
	default:
		return fmt.Sprintf("%s %q @%d", t.Kind, t.Text, t.Line)
	}
}

