package ast

import (
	"strings"

	"surge/internal/token"
)

// Emit re-emits n as a canonical, bracket-annotated source string: every
// nested block body (function, if/unless, loop, for) gets explicit braces,
// while a Block emitted directly (such as the root) is just its statements
// joined by ";", and every if/unless condition gets explicit
// parens, regardless of how the original source spelled them. It is a
// function dispatching on the concrete type, per the "tagged variant, not
// a class hierarchy" design: there is deliberately no Emit method on Node.
//
// DebugEmitCommon is an alias: the reference implementation kept separate
// debug/production formatters, but nothing in this grammar's surface forms
// needs two different renderings, so both entry points produce identical
// text here.
func Emit(n Node) string {
	switch v := n.(type) {
	case *Number:
		return v.Text
	case *StringLiteral:
		return v.Text
	case *Identifier:
		return v.Text
	case *BuiltinPrimary:
		return v.Text
	case *ThisExpression:
		return v.Token
	case *Parens:
		return "(" + Emit(v.Inner) + ")"
	case *BinaryExpression:
		return Emit(v.Left) + " " + v.Operator.Text + " " + Emit(v.Right)
	case *PrefixUnaryExpression:
		return v.Operator.Text + Emit(v.Inner)
	case *PostfixUnaryExpression:
		return Emit(v.Inner) + v.Operator.Text
	case *Assign:
		return Emit(v.Target) + " " + v.Operator.Text + " " + Emit(v.Value)
	case *PropertyAccess:
		return emitPropertyAccess(v)
	case *FunctionCall:
		return emitCall(v)
	case *SplatExpression:
		return Emit(v.Inner) + "..."
	case *Function:
		return emitFunction(v)
	case *ObjectLiteral:
		return emitObjectLiteral(v)
	case *IfExpression:
		return emitIf(v)
	case *LoopExpression:
		return emitLoop(v)
	case *ForExpression:
		return emitFor(v)
	case *ForExpression2:
		return Emit(v.Inner) + " " + emitForHeader(v.Loop)
	case *Block:
		return blockJoin(v)
	case *ExprStmt:
		return Emit(v.X)
	case *ReturnStatement:
		if v.Value == nil {
			return "return"
		}
		return "return " + Emit(v.Value)
	default:
		return ""
	}
}

// DebugEmitCommon is the normalized form the test suite treats as the
// oracle for round-trip and precedence properties.
func DebugEmitCommon(n Node) string { return Emit(n) }

func emitPropertyAccess(v *PropertyAccess) string {
	if this, ok := v.Target.(*ThisExpression); ok && this.Token == "@" && !v.Proto {
		return "@" + v.Member.Text
	}
	sep := "."
	if v.Proto {
		sep = "::"
	}
	return Emit(v.Target) + sep + v.Member.Text
}

func emitCall(v *FunctionCall) string {
	args := make([]string, len(v.Args))
	for i, a := range v.Args {
		args[i] = Emit(a)
	}
	return Emit(v.Target) + "(" + strings.Join(args, ",") + ")"
}

func emitFunction(v *Function) string {
	params := make([]string, len(v.Params))
	for i, p := range v.Params {
		params[i] = emitParam(p)
	}
	arrow := "->"
	if v.BindThis {
		arrow = "=>"
	}
	body := ""
	if v.Body != nil {
		body = blockJoin(v.Body)
	}
	return "(" + strings.Join(params, ", ") + ") " + arrow + " {" + body + "}"
}

func emitParam(p *FunctionParam) string {
	switch {
	case p.Splat:
		return p.Name + "..."
	case p.Default != nil:
		return p.Name + " = " + Emit(p.Default)
	default:
		return p.Name
	}
}

func emitObjectLiteral(v *ObjectLiteral) string {
	parts := make([]string, len(v.Properties))
	for i, p := range v.Properties {
		parts[i] = Emit(p.Key) + ": " + Emit(p.Value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func emitIf(v *IfExpression) string {
	kw := "if"
	if v.Operator == token.UNLESS {
		kw = "unless"
	}
	out := kw + " (" + Emit(v.Cond) + ") { " + blockJoin(v.Then) + " }"
	switch e := v.Else.(type) {
	case nil:
		return out
	case *Block:
		return out + " else { " + blockJoin(e) + " }"
	case *IfExpression:
		return out + " else " + emitIf(e)
	default:
		return out
	}
}

func emitLoop(v *LoopExpression) string {
	if v.Operator == token.UNTIL {
		return "until (" + Emit(v.Cond) + ") { " + blockJoin(v.Body) + " }"
	}
	return "loop { " + blockJoin(v.Body) + " }"
}

func emitFor(v *ForExpression) string {
	body := ""
	if v.Body != nil {
		body = " { " + blockJoin(v.Body) + " }"
	}
	return emitForHeader(v) + body
}

func emitForHeader(v *ForExpression) string {
	head := "for " + Emit(v.Iter1)
	if v.Iter2 != nil {
		head += ", " + Emit(v.Iter2)
	}
	if v.IterType == token.OF {
		head += " of "
	} else {
		head += " in "
	}
	return head + Emit(v.Iterable)
}

func blockJoin(b *Block) string {
	if b == nil {
		return ""
	}
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = Emit(s)
	}
	return strings.Join(parts, ";")
}
