package cache

import (
	"surge/internal/ast"
	"surge/internal/source"
	"surge/internal/token"
)

// nodeKind discriminates the flattened expression variants below. msgpack
// has no notion of Go interfaces, so every ast.Expr is flattened into one
// struct tagged by kind before being serialized, and rebuilt by decodeExpr
// on the way back out.
type nodeKind uint8

const (
	nkNumber nodeKind = iota + 1
	nkString
	nkIdentifier
	nkBuiltin
	nkThis
	nkParens
	nkSplat
	nkBinary
	nkPrefixUnary
	nkPostfixUnary
	nkAssign
	nkPropertyAccess
	nkFunctionCall
	nkFunction
	nkObjectLiteral
	nkIf
	nkLoop
	nkFor
	nkFor2
)

type encodedExpr struct {
	Kind       nodeKind
	Span       source.Span
	Text       string
	Operator   token.Token
	Inner      *encodedExpr
	Left       *encodedExpr
	Right      *encodedExpr
	Target     *encodedExpr
	Value      *encodedExpr
	Member     string
	Proto      bool
	Args       []*encodedExpr
	Params     []encodedParam
	Body       *encodedBlock
	BindThis   bool
	Properties []encodedProperty
	CondOp     token.Kind
	Cond       *encodedExpr
	Then       *encodedBlock
	ElseBlock  *encodedBlock
	ElseIf     *encodedExpr
	Iter1      *encodedExpr
	Iter2      *encodedExpr
	IterType   token.Kind
	Iterable   *encodedExpr
	Loop       *encodedExpr
}

type encodedParam struct {
	Span    source.Span
	Name    string
	Splat   bool
	Default *encodedExpr
}

type encodedProperty struct {
	Key   *encodedExpr
	Value *encodedExpr
}

type encodedBlock struct {
	Span       source.Span
	Indent     int
	Statements []encodedStmt
}

type encodedStmt struct {
	Span     source.Span
	IsReturn bool
	X        *encodedExpr
}

func encodeBlock(b *ast.Block) *encodedBlock {
	if b == nil {
		return nil
	}
	stmts := make([]encodedStmt, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, encodeStmt(s))
	}
	return &encodedBlock{Span: b.Sp, Indent: b.Indent, Statements: stmts}
}

func encodeStmt(s ast.Stmt) encodedStmt {
	switch v := s.(type) {
	case *ast.ExprStmt:
		return encodedStmt{Span: v.Sp, X: encodeExpr(v.X)}
	case *ast.ReturnStatement:
		return encodedStmt{Span: v.Sp, IsReturn: true, X: encodeExpr(v.Value)}
	default:
		return encodedStmt{}
	}
}

func encodeExpr(e ast.Expr) *encodedExpr {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *ast.Number:
		return &encodedExpr{Kind: nkNumber, Span: v.Sp, Text: v.Text}
	case *ast.StringLiteral:
		return &encodedExpr{Kind: nkString, Span: v.Sp, Text: v.Text}
	case *ast.Identifier:
		return &encodedExpr{Kind: nkIdentifier, Span: v.Sp, Text: v.Text}
	case *ast.BuiltinPrimary:
		return &encodedExpr{Kind: nkBuiltin, Span: v.Sp, Text: v.Text}
	case *ast.ThisExpression:
		return &encodedExpr{Kind: nkThis, Span: v.Sp, Text: v.Token}
	case *ast.Parens:
		return &encodedExpr{Kind: nkParens, Span: v.Sp, Inner: encodeExpr(v.Inner)}
	case *ast.SplatExpression:
		return &encodedExpr{Kind: nkSplat, Span: v.Sp, Inner: encodeExpr(v.Inner)}
	case *ast.BinaryExpression:
		return &encodedExpr{Kind: nkBinary, Span: v.Sp, Operator: v.Operator,
			Left: encodeExpr(v.Left), Right: encodeExpr(v.Right)}
	case *ast.PrefixUnaryExpression:
		return &encodedExpr{Kind: nkPrefixUnary, Span: v.Sp, Operator: v.Operator, Inner: encodeExpr(v.Inner)}
	case *ast.PostfixUnaryExpression:
		return &encodedExpr{Kind: nkPostfixUnary, Span: v.Sp, Operator: v.Operator, Inner: encodeExpr(v.Inner)}
	case *ast.Assign:
		return &encodedExpr{Kind: nkAssign, Span: v.Sp, Operator: v.Operator,
			Target: encodeExpr(v.Target), Value: encodeExpr(v.Value)}
	case *ast.PropertyAccess:
		return &encodedExpr{Kind: nkPropertyAccess, Span: v.Sp, Member: v.Member.Text, Proto: v.Proto,
			Target: encodeExpr(v.Target)}
	case *ast.FunctionCall:
		args := make([]*encodedExpr, 0, len(v.Args))
		for _, a := range v.Args {
			args = append(args, encodeExpr(a))
		}
		return &encodedExpr{Kind: nkFunctionCall, Span: v.Sp, Target: encodeExpr(v.Target), Args: args}
	case *ast.Function:
		params := make([]encodedParam, 0, len(v.Params))
		for _, p := range v.Params {
			params = append(params, encodedParam{Span: p.Sp, Name: p.Name, Splat: p.Splat, Default: encodeExpr(p.Default)})
		}
		return &encodedExpr{Kind: nkFunction, Span: v.Sp, Params: params, Body: encodeBlock(v.Body), BindThis: v.BindThis}
	case *ast.ObjectLiteral:
		props := make([]encodedProperty, 0, len(v.Properties))
		for _, p := range v.Properties {
			props = append(props, encodedProperty{Key: encodeExpr(p.Key), Value: encodeExpr(p.Value)})
		}
		return &encodedExpr{Kind: nkObjectLiteral, Span: v.Sp, Properties: props}
	case *ast.IfExpression:
		out := &encodedExpr{Kind: nkIf, Span: v.Sp, CondOp: v.Operator, Cond: encodeExpr(v.Cond), Then: encodeBlock(v.Then)}
		switch e := v.Else.(type) {
		case *ast.Block:
			out.ElseBlock = encodeBlock(e)
		case *ast.IfExpression:
			out.ElseIf = encodeExpr(e)
		}
		return out
	case *ast.LoopExpression:
		return &encodedExpr{Kind: nkLoop, Span: v.Sp, CondOp: v.Operator, Cond: encodeExpr(v.Cond), Body: encodeBlock(v.Body)}
	case *ast.ForExpression:
		return encodeForExpr(v)
	case *ast.ForExpression2:
		return &encodedExpr{Kind: nkFor2, Span: v.Sp, Inner: encodeExpr(v.Inner), Loop: encodeForExpr(v.Loop)}
	default:
		return nil
	}
}

func encodeForExpr(v *ast.ForExpression) *encodedExpr {
	if v == nil {
		return nil
	}
	return &encodedExpr{Kind: nkFor, Span: v.Sp, Iter1: encodeExpr(v.Iter1), Iter2: encodeExpr(v.Iter2),
		IterType: v.IterType, Iterable: encodeExpr(v.Iterable), Body: encodeBlock(v.Body)}
}

func decodeBlock(b *encodedBlock) *ast.Block {
	if b == nil {
		return nil
	}
	stmts := make([]ast.Stmt, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, decodeStmt(s))
	}
	return &ast.Block{Base: ast.Base{Sp: b.Span}, Statements: stmts, Indent: b.Indent}
}

func decodeStmt(s encodedStmt) ast.Stmt {
	if s.IsReturn {
		return &ast.ReturnStatement{Base: ast.Base{Sp: s.Span}, Value: decodeExpr(s.X)}
	}
	return &ast.ExprStmt{Base: ast.Base{Sp: s.Span}, X: decodeExpr(s.X)}
}

func decodeExpr(e *encodedExpr) ast.Expr {
	if e == nil {
		return nil
	}
	base := ast.Base{Sp: e.Span}
	switch e.Kind {
	case nkNumber:
		return &ast.Number{Base: base, Text: e.Text}
	case nkString:
		return &ast.StringLiteral{Base: base, Text: e.Text}
	case nkIdentifier:
		return &ast.Identifier{Base: base, Text: e.Text}
	case nkBuiltin:
		return &ast.BuiltinPrimary{Base: base, Text: e.Text}
	case nkThis:
		return &ast.ThisExpression{Base: base, Token: e.Text}
	case nkParens:
		return &ast.Parens{Base: base, Inner: decodeExpr(e.Inner)}
	case nkSplat:
		return &ast.SplatExpression{Base: base, Inner: decodeExpr(e.Inner)}
	case nkBinary:
		return &ast.BinaryExpression{Base: base, Operator: e.Operator, Left: decodeExpr(e.Left), Right: decodeExpr(e.Right)}
	case nkPrefixUnary:
		return &ast.PrefixUnaryExpression{Base: base, Operator: e.Operator, Inner: decodeExpr(e.Inner)}
	case nkPostfixUnary:
		return &ast.PostfixUnaryExpression{Base: base, Operator: e.Operator, Inner: decodeExpr(e.Inner)}
	case nkAssign:
		return &ast.Assign{Base: base, Operator: e.Operator, Target: decodeExpr(e.Target), Value: decodeExpr(e.Value)}
	case nkPropertyAccess:
		member, _ := decodeExpr(&encodedExpr{Kind: nkIdentifier, Text: e.Member}).(*ast.Identifier)
		return &ast.PropertyAccess{Base: base, Target: decodeExpr(e.Target), Member: member, Proto: e.Proto}
	case nkFunctionCall:
		args := make([]ast.Expr, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, decodeExpr(a))
		}
		return &ast.FunctionCall{Base: base, Target: decodeExpr(e.Target), Args: args}
	case nkFunction:
		params := make([]*ast.FunctionParam, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, &ast.FunctionParam{
				Base: ast.Base{Sp: p.Span}, Name: p.Name, Splat: p.Splat, Default: decodeExpr(p.Default),
			})
		}
		return &ast.Function{Base: base, Params: params, Body: decodeBlock(e.Body), BindThis: e.BindThis}
	case nkObjectLiteral:
		props := make([]ast.ObjectProperty, 0, len(e.Properties))
		for _, p := range e.Properties {
			props = append(props, ast.ObjectProperty{Key: decodeExpr(p.Key), Value: decodeExpr(p.Value)})
		}
		return &ast.ObjectLiteral{Base: base, Properties: props}
	case nkIf:
		out := &ast.IfExpression{Base: base, Operator: e.CondOp, Cond: decodeExpr(e.Cond), Then: decodeBlock(e.Then)}
		if e.ElseBlock != nil {
			out.Else = decodeBlock(e.ElseBlock)
		} else if e.ElseIf != nil {
			out.Else = decodeExpr(e.ElseIf)
		}
		return out
	case nkLoop:
		return &ast.LoopExpression{Base: base, Operator: e.CondOp, Cond: decodeExpr(e.Cond), Body: decodeBlock(e.Body)}
	case nkFor:
		return &ast.ForExpression{Base: base, Iter1: decodeExpr(e.Iter1), Iter2: decodeExpr(e.Iter2),
			IterType: e.IterType, Iterable: decodeExpr(e.Iterable), Body: decodeBlock(e.Body)}
	case nkFor2:
		loopExpr, _ := decodeExpr(e.Loop).(*ast.ForExpression)
		return &ast.ForExpression2{Base: base, Inner: decodeExpr(e.Inner), Loop: loopExpr}
	default:
		return nil
	}
}
