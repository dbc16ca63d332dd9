package ast

import (
	"testing"

	"surge/internal/token"
)

func num(text string) *Number { return &Number{Text: text} }

func ident(text string) *Identifier { return &Identifier{Text: text} }

func op(kind token.Kind, text string) token.Token {
	return token.Token{Kind: kind, Text: text}
}

func TestEmitBinaryPrecedenceGrouping(t *testing.T) {
	// 1 + 2 * 3, built as the tree a Pratt parser would produce.
	tree := &BinaryExpression{
		Left:     num("1"),
		Operator: op(token.OPERATOR, "+"),
		Right: &BinaryExpression{
			Left:     num("2"),
			Operator: op(token.OPERATOR, "*"),
			Right:    num("3"),
		},
	}
	if got, want := Emit(tree), "1 + 2 * 3"; got != want {
		t.Fatalf("Emit() = %q, want %q", got, want)
	}
}

func TestEmitParensRoundTrip(t *testing.T) {
	tree := &BinaryExpression{
		Left: &Parens{Inner: &BinaryExpression{
			Left:     num("1"),
			Operator: op(token.OPERATOR, "+"),
			Right:    num("2"),
		}},
		Operator: op(token.OPERATOR, "*"),
		Right:    num("3"),
	}
	if got, want := Emit(tree), "(1 + 2) * 3"; got != want {
		t.Fatalf("Emit() = %q, want %q", got, want)
	}
}

func TestEmitImplicitCallArgsAreTight(t *testing.T) {
	call := &FunctionCall{
		Target: ident("foo"),
		Args: []Expr{
			&PrefixUnaryExpression{Operator: op(token.OPERATOR, "+"), Inner: num("2")},
			&FunctionCall{
				Target: ident("b"),
				Args: []Expr{&BinaryExpression{
					Left:     &PrefixUnaryExpression{Operator: op(token.OPERATOR, "+"), Inner: num("3")},
					Operator: op(token.OPERATOR, "|"),
					Right:    num("0"),
				}},
			},
		},
	}
	if got, want := Emit(call), "foo(+2,b(+3 | 0))"; got != want {
		t.Fatalf("Emit() = %q, want %q", got, want)
	}
}

func TestEmitObjectLiteral(t *testing.T) {
	lit := &ObjectLiteral{Properties: []ObjectProperty{
		{Key: ident("hello"), Value: &ObjectLiteral{Properties: []ObjectProperty{
			{Key: ident("world"), Value: num("2")},
		}}},
		{Key: ident("hi"), Value: &ObjectLiteral{Properties: []ObjectProperty{
			{Key: ident("welt"), Value: num("3")},
		}}},
	}}
	want := "{hello: {world: 2}, hi: {welt: 3}}"
	if got := Emit(lit); got != want {
		t.Fatalf("Emit() = %q, want %q", got, want)
	}
}

func TestEmitIfThenElse(t *testing.T) {
	ifExpr := &IfExpression{
		Operator: token.IF,
		Cond:     ident("friday"),
		Then:     &Block{Statements: []Stmt{&ExprStmt{X: ident("jack")}}},
		Else:     &Block{Statements: []Stmt{&ExprStmt{X: ident("jill")}}},
	}
	want := "if (friday) { jack } else { jill }"
	if got := Emit(ifExpr); got != want {
		t.Fatalf("Emit() = %q, want %q", got, want)
	}
}

func TestEmitPostfixComprehensionChain(t *testing.T) {
	// x for x in xs for xs in list
	inner := &ForExpression2{
		Inner: ident("x"),
		Loop: &ForExpression{
			Iter1:    ident("x"),
			IterType: token.IN,
			Iterable: ident("xs"),
		},
	}
	outer := &ForExpression2{
		Inner: inner,
		Loop: &ForExpression{
			Iter1:    ident("xs"),
			IterType: token.IN,
			Iterable: ident("list"),
		},
	}
	want := "x for x in xs for xs in list"
	if got := Emit(outer); got != want {
		t.Fatalf("Emit() = %q, want %q", got, want)
	}
}

func TestDebugEvalArithmetic(t *testing.T) {
	tree := &BinaryExpression{
		Left:     num("1"),
		Operator: op(token.OPERATOR, "+"),
		Right: &BinaryExpression{
			Left:     num("2"),
			Operator: op(token.OPERATOR, "*"),
			Right:    num("3"),
		},
	}
	got, ok := DebugEval(tree)
	if !ok || got != 7 {
		t.Fatalf("DebugEval() = (%v, %v), want (7, true)", got, ok)
	}
}

func TestDebugEvalRejectsNonArithmetic(t *testing.T) {
	if _, ok := DebugEval(ident("x")); ok {
		t.Fatalf("DebugEval(identifier) should not be evaluable")
	}
}
