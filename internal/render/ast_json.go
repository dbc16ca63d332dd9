package render

import (
	"encoding/json"
	"io"

	"surge/internal/ast"
)

// astJSON is a generic, order-preserving projection of any AST node:
// enough structure for tooling to consume without needing Go types, at the
// cost of losing the static distinction between node kinds (recovered via
// the "kind" field).
type astJSON struct {
	Kind     string            `json:"kind"`
	Text     string            `json:"text,omitempty"`
	Fields   map[string]any    `json:"fields,omitempty"`
	Children map[string]any    `json:"children,omitempty"`
	List     []*astJSON        `json:"list,omitempty"`
}

// ASTJSON writes root as JSON.
func ASTJSON(w io.Writer, root *ast.Block) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(blockJSON(root))
}

func blockJSON(b *ast.Block) *astJSON {
	if b == nil {
		return nil
	}
	stmts := make([]*astJSON, 0, len(b.Statements))
	for _, s := range b.Statements {
		stmts = append(stmts, stmtJSON(s))
	}
	return &astJSON{
		Kind:   "Block",
		Fields: map[string]any{"indent": b.Indent},
		List:   stmts,
	}
}

func stmtJSON(s ast.Stmt) *astJSON {
	switch v := s.(type) {
	case *ast.ExprStmt:
		return &astJSON{Kind: "ExprStmt", Children: map[string]any{"x": exprJSON(v.X)}}
	case *ast.ReturnStatement:
		if v.Value == nil {
			return &astJSON{Kind: "ReturnStatement"}
		}
		return &astJSON{Kind: "ReturnStatement", Children: map[string]any{"value": exprJSON(v.Value)}}
	default:
		return &astJSON{Kind: "Unknown"}
	}
}

func exprJSON(e ast.Expr) *astJSON {
	if e == nil {
		return nil
	}
	switch v := e.(type) {
	case *ast.Number:
		return &astJSON{Kind: "Number", Text: v.Text}
	case *ast.StringLiteral:
		return &astJSON{Kind: "StringLiteral", Text: v.Text}
	case *ast.Identifier:
		return &astJSON{Kind: "Identifier", Text: v.Text}
	case *ast.BuiltinPrimary:
		return &astJSON{Kind: "BuiltinPrimary", Text: v.Text}
	case *ast.ThisExpression:
		return &astJSON{Kind: "ThisExpression", Text: v.Token}
	case *ast.Parens:
		return &astJSON{Kind: "Parens", Children: map[string]any{"inner": exprJSON(v.Inner)}}
	case *ast.SplatExpression:
		return &astJSON{Kind: "SplatExpression", Children: map[string]any{"inner": exprJSON(v.Inner)}}
	case *ast.BinaryExpression:
		return &astJSON{
			Kind:     "BinaryExpression",
			Text:     v.Operator.Text,
			Children: map[string]any{"left": exprJSON(v.Left), "right": exprJSON(v.Right)},
		}
	case *ast.PrefixUnaryExpression:
		return &astJSON{Kind: "PrefixUnaryExpression", Text: v.Operator.Text,
			Children: map[string]any{"inner": exprJSON(v.Inner)}}
	case *ast.PostfixUnaryExpression:
		return &astJSON{Kind: "PostfixUnaryExpression", Text: v.Operator.Text,
			Children: map[string]any{"inner": exprJSON(v.Inner)}}
	case *ast.Assign:
		return &astJSON{Kind: "Assign", Text: v.Operator.Text,
			Children: map[string]any{"target": exprJSON(v.Target), "value": exprJSON(v.Value)}}
	case *ast.PropertyAccess:
		return &astJSON{
			Kind:   "PropertyAccess",
			Fields: map[string]any{"member": v.Member.Text, "proto": v.Proto},
			Children: map[string]any{"target": exprJSON(v.Target)},
		}
	case *ast.FunctionCall:
		args := make([]*astJSON, 0, len(v.Args))
		for _, a := range v.Args {
			args = append(args, exprJSON(a))
		}
		return &astJSON{
			Kind:     "FunctionCall",
			Children: map[string]any{"target": exprJSON(v.Target)},
			List:     args,
		}
	case *ast.Function:
		params := make([]map[string]any, 0, len(v.Params))
		for _, p := range v.Params {
			entry := map[string]any{"name": p.Name, "splat": p.Splat}
			if p.Default != nil {
				entry["default"] = exprJSON(p.Default)
			}
			params = append(params, entry)
		}
		return &astJSON{
			Kind:     "Function",
			Fields:   map[string]any{"bindThis": v.BindThis, "params": params},
			Children: map[string]any{"body": blockJSON(v.Body)},
		}
	case *ast.ObjectLiteral:
		props := make([]map[string]any, 0, len(v.Properties))
		for _, p := range v.Properties {
			props = append(props, map[string]any{"key": exprJSON(p.Key), "value": exprJSON(p.Value)})
		}
		return &astJSON{Kind: "ObjectLiteral", Fields: map[string]any{"properties": props}}
	case *ast.IfExpression:
		fields := map[string]any{"operator": v.Operator.String()}
		children := map[string]any{"cond": exprJSON(v.Cond), "then": blockJSON(v.Then)}
		switch e := v.Else.(type) {
		case *ast.Block:
			children["else"] = blockJSON(e)
		case *ast.IfExpression:
			children["else"] = exprJSON(e)
		}
		return &astJSON{Kind: "IfExpression", Fields: fields, Children: children}
	case *ast.LoopExpression:
		children := map[string]any{"body": blockJSON(v.Body)}
		if v.Cond != nil {
			children["cond"] = exprJSON(v.Cond)
		}
		return &astJSON{Kind: "LoopExpression", Fields: map[string]any{"operator": v.Operator.String()}, Children: children}
	case *ast.ForExpression:
		children := map[string]any{"iter1": exprJSON(v.Iter1), "iterable": exprJSON(v.Iterable)}
		if v.Iter2 != nil {
			children["iter2"] = exprJSON(v.Iter2)
		}
		if v.Body != nil {
			children["body"] = blockJSON(v.Body)
		}
		return &astJSON{Kind: "ForExpression", Fields: map[string]any{"iterType": v.IterType.String()}, Children: children}
	case *ast.ForExpression2:
		return &astJSON{Kind: "ForExpression2", Children: map[string]any{"inner": exprJSON(v.Inner), "loop": exprJSON(v.Loop)}}
	default:
		return &astJSON{Kind: "Unknown"}
	}
}
