/*
File    : prose/internal/ast/ast.go
Package : ast
*/

// Package ast defines prose's abstract syntax tree. Every node implements
// Node, exposing a single Execute capability; there is no separate
// visitor type — operator dispatch moves to a direct match over
// value.Kind pairs (internal/value) rather than double dispatch.
package ast

import (
	"errors"
	"fmt"

	"github.com/proselang/prosec/internal/builtins"
	"github.com/proselang/prosec/internal/diag"
	"github.com/proselang/prosec/internal/environment"
	"github.com/proselang/prosec/internal/value"
)

// Node is satisfied by every AST element. Execute evaluates it against
// env and returns its resulting Value (Unknown for statements that have
// no meaningful result).
type Node interface {
	Execute(env *environment.Environment) (*value.Value, error)
}

// Block is a period-terminated sequence of statements bounded by
// BlockBegin/BlockEnd in the source, or the whole program at the top
// level. On entry it pushes a fresh Scope unless PreMade is set — function
// call invocation sets PreMade and pushes the scope itself so it can
// bind parameters into it before the body runs.
type Block struct {
	Stmts   []Node
	PreMade bool
}

func (b *Block) Execute(env *environment.Environment) (*value.Value, error) {
	if !b.PreMade {
		env.Push()
		defer env.Pop()
	}
	for _, stmt := range b.Stmts {
		if _, err := stmt.Execute(env); err != nil {
			return nil, err
		}
	}
	return value.Unknown(), nil
}

// Literal wraps a constant Value produced directly by the parser (string
// or number literals).
type Literal struct {
	Val *value.Value
}

func (l *Literal) Execute(*environment.Environment) (*value.Value, error) {
	return l.Val, nil
}

// VarRef resolves an identifier through the scope stack.
type VarRef struct {
	Name string
	Line int
}

func (v *VarRef) Execute(env *environment.Environment) (*value.Value, error) {
	val, ok := env.LookupVar(v.Name)
	if !ok {
		return nil, nameErr(v.Line, "undefined variable %q used", v.Name)
	}
	return val, nil
}

// UnaryOp applies '-' (arithmetic negation, with the soft zero-coercion
// value.UnaryMinus defines for non-Number operands) or passes its operand
// through unchanged for any other operator.
type UnaryOp struct {
	Op    byte
	Child Node
	Line  int
}

func (u *UnaryOp) Execute(env *environment.Environment) (*value.Value, error) {
	v, err := u.Child.Execute(env)
	if err != nil {
		return nil, err
	}
	if u.Op == '-' {
		return value.UnaryMinus(v), nil
	}
	return v, nil
}

// Expression is a binary arithmetic node ('+','-','*','/'). When Right is
// nil (a unit production in the grammar) it simply returns Left's value.
type Expression struct {
	Left, Right Node
	Op          byte
	Line        int
}

func (e *Expression) Execute(env *environment.Environment) (*value.Value, error) {
	l, err := e.Left.Execute(env)
	if err != nil {
		return nil, err
	}
	if e.Right == nil {
		return l, nil
	}
	r, err := e.Right.Execute(env)
	if err != nil {
		return nil, err
	}
	var result *value.Value
	switch e.Op {
	case '+':
		result, err = value.Add(l, r)
	case '-':
		result, err = value.Subtract(l, r)
	case '*':
		result, err = value.Multiply(l, r)
	case '/':
		result, err = value.Divide(l, r)
	default:
		return nil, typeErr(e.Line, "invalid operator %q", string(e.Op))
	}
	if err != nil {
		return nil, typeErr(e.Line, "%s", err)
	}
	return result, nil
}

// Condition is a binary relational/logical node ('=','!','<','>','&','|'),
// always producing a Boolean.
type Condition struct {
	Left, Right Node
	Op          byte
	Line        int
}

func (c *Condition) Execute(env *environment.Environment) (*value.Value, error) {
	l, err := c.Left.Execute(env)
	if err != nil {
		return nil, err
	}
	r, err := c.Right.Execute(env)
	if err != nil {
		return nil, err
	}
	var result *value.Value
	switch c.Op {
	case '=':
		result, err = value.Equals(l, r)
	case '!':
		result, err = value.NotEquals(l, r)
	case '<':
		result, err = value.LessThan(l, r)
	case '>':
		result, err = value.GreaterThan(l, r)
	case '&':
		result, err = value.And(l, r)
	case '|':
		result, err = value.Or(l, r)
	default:
		return nil, typeErr(c.Line, "invalid operator %q", string(c.Op))
	}
	if err != nil {
		return nil, typeErr(c.Line, "%s", err)
	}
	return result, nil
}

// VarDeclaration introduces Name in the current (innermost) scope as
// Unknown. Redeclaring a name already present in that scope is fatal.
type VarDeclaration struct {
	Name string
	Line int
}

func (d *VarDeclaration) Execute(env *environment.Environment) (*value.Value, error) {
	if err := env.DeclareVar(d.Name); err != nil {
		return nil, nameErr(d.Line, "%s", err)
	}
	return value.Unknown(), nil
}

// Assignment evaluates RHS and rebinds Name in the scope where it was
// declared. Assigning an undeclared name is fatal.
type Assignment struct {
	Name string
	RHS  Node
	Line int
}

func (a *Assignment) Execute(env *environment.Environment) (*value.Value, error) {
	v, err := a.RHS.Execute(env)
	if err != nil {
		return nil, err
	}
	if err := env.AssignVar(a.Name, v); err != nil {
		return nil, nameErr(a.Line, "%s", err)
	}
	return value.Unknown(), nil
}

// FuncDeclaration reserves Name with its fixed Params, with no body bound
// yet.
type FuncDeclaration struct {
	Name   string
	Params []string
	Line   int
}

func (d *FuncDeclaration) Execute(env *environment.Environment) (*value.Value, error) {
	fn := &environment.Function{Name: d.Name, Params: d.Params}
	if err := env.DeclareFunc(fn); err != nil {
		return nil, nameErr(d.Line, "%s", err)
	}
	return value.Unknown(), nil
}

// FuncImpl binds Body to the previously declared function named Name.
type FuncImpl struct {
	Name string
	Body *Block
	Line int
}

func (impl *FuncImpl) Execute(env *environment.Environment) (*value.Value, error) {
	fn, ok := env.LookupFunc(impl.Name)
	if !ok {
		return nil, nameErr(impl.Line, "undefined function %q used", impl.Name)
	}
	fn.Body = impl.Body
	return value.Unknown(), nil
}

// FunctionCall looks up Name (built-ins first, then the scope stack),
// evaluates Args left-to-right, and invokes it.
type FunctionCall struct {
	Name string
	Args []Node
	Line int
}

func (c *FunctionCall) Execute(env *environment.Environment) (*value.Value, error) {
	args := make([]*value.Value, len(c.Args))
	for i, a := range c.Args {
		v, err := a.Execute(env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if b, ok := builtins.Lookup(c.Name); ok {
		result, err := b.Call(args)
		if err != nil {
			var arityErrVal *builtins.ArityError
			if errors.As(err, &arityErrVal) {
				return nil, arityErr(c.Line, "%s", err)
			}
			return nil, typeErr(c.Line, "%s", err)
		}
		return result, nil
	}

	fn, ok := env.LookupFunc(c.Name)
	if !ok {
		return nil, nameErr(c.Line, "undefined function %q used", c.Name)
	}
	if fn.Body == nil {
		return nil, nameErr(c.Line, "function %q declared but not implemented", c.Name)
	}
	if len(args) != len(fn.Params) {
		return nil, arityErr(c.Line, "function %q expects %d argument(s), got %d", c.Name, len(fn.Params), len(args))
	}

	// Push a fresh scope before binding parameters, then bind each argument
	// handle by reference so mutation inside the callee is observable by
	// the caller.
	env.Push()
	for i, p := range fn.Params {
		env.BindParam(p, args[i])
	}
	body := &Block{Stmts: fn.Body.(*Block).Stmts, PreMade: true}
	_, err := body.Execute(env)
	env.Pop()
	if err != nil {
		return nil, err
	}
	// User functions have no explicit return value.
	return value.Unknown(), nil
}

// IfStatement runs Then when Condition is true, Else (which may be nil)
// otherwise. A false condition with no Else is a no-op.
type IfStatement struct {
	Condition Node
	Then      *Block
	Else      *Block
	Line      int
}

func (s *IfStatement) Execute(env *environment.Environment) (*value.Value, error) {
	cond, err := s.Condition.Execute(env)
	if err != nil {
		return nil, err
	}
	if cond.Kind != value.KindBoolean {
		return nil, typeErr(s.Line, "if condition must be Boolean, got %s", cond.Kind)
	}
	if cond.Bool {
		return s.Then.Execute(env)
	}
	if s.Else != nil {
		return s.Else.Execute(env)
	}
	return value.Unknown(), nil
}

// WhileStatement re-evaluates Condition before each iteration of Body.
type WhileStatement struct {
	Condition Node
	Body      *Block
	Line      int
}

func (s *WhileStatement) Execute(env *environment.Environment) (*value.Value, error) {
	for {
		cond, err := s.Condition.Execute(env)
		if err != nil {
			return nil, err
		}
		if cond.Kind != value.KindBoolean {
			return nil, typeErr(s.Line, "while condition must be Boolean, got %s", cond.Kind)
		}
		if !cond.Bool {
			return value.Unknown(), nil
		}
		if _, err := s.Body.Execute(env); err != nil {
			return nil, err
		}
	}
}

// RuntimeError is the error type every node's Execute returns on failure;
// internal/interp converts it to a *diag.Error for display, using Stage to
// pick the error category (Name/Type/Arity).
type RuntimeError struct {
	Stage   diag.Stage
	Line    int
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func nameErr(line int, format string, args ...any) error {
	return &RuntimeError{Stage: diag.Name, Line: line, Message: fmt.Sprintf(format, args...)}
}

func typeErr(line int, format string, args ...any) error {
	return &RuntimeError{Stage: diag.Type, Line: line, Message: fmt.Sprintf(format, args...)}
}

func arityErr(line int, format string, args ...any) error {
	return &RuntimeError{Stage: diag.Arity, Line: line, Message: fmt.Sprintf(format, args...)}
}
