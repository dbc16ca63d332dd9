package render

import (
	"fmt"
	"io"
	"strings"

	"surge/internal/ast"
)

type treeNode struct {
	label    string
	children []*treeNode
}

func leaf(format string, args ...any) *treeNode {
	return &treeNode{label: fmt.Sprintf(format, args...)}
}

func node(label string, children ...*treeNode) *treeNode {
	out := &treeNode{label: label}
	for _, c := range children {
		if c != nil {
			out.children = append(out.children, c)
		}
	}
	return out
}

// ASTTree writes root as an indented tree, one node per line.
func ASTTree(w io.Writer, root *ast.Block) error {
	tn := blockTreeNode("Block", root)
	return writeTree(w, tn, "")
}

func writeTree(w io.Writer, n *treeNode, prefix string) error {
	if _, err := fmt.Fprintln(w, prefix+n.label); err != nil {
		return err
	}
	childPrefix := prefix + "  "
	for _, c := range n.children {
		if err := writeTree(w, c, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

func blockTreeNode(label string, b *ast.Block) *treeNode {
	if b == nil {
		return leaf("%s: <nil>", label)
	}
	n := node(fmt.Sprintf("%s (indent=%d, %d statements)", label, b.Indent, len(b.Statements)))
	for i, s := range b.Statements {
		n.children = append(n.children, stmtTreeNode(fmt.Sprintf("[%d]", i), s))
	}
	return n
}

func stmtTreeNode(label string, s ast.Stmt) *treeNode {
	switch v := s.(type) {
	case *ast.ExprStmt:
		return node(label+" ExprStmt", exprTreeNode("X", v.X))
	case *ast.ReturnStatement:
		if v.Value == nil {
			return leaf("%s ReturnStatement (bare)", label)
		}
		return node(label+" ReturnStatement", exprTreeNode("Value", v.Value))
	default:
		return leaf("%s <unknown stmt %T>", label, s)
	}
}

func exprTreeNode(label string, e ast.Expr) *treeNode {
	if e == nil {
		return leaf("%s: <nil>", label)
	}
	switch v := e.(type) {
	case *ast.Number:
		return leaf("%s Number %q", label, v.Text)
	case *ast.StringLiteral:
		return leaf("%s StringLiteral %q", label, v.Text)
	case *ast.Identifier:
		return leaf("%s Identifier %q", label, v.Text)
	case *ast.BuiltinPrimary:
		return leaf("%s BuiltinPrimary %q", label, v.Text)
	case *ast.ThisExpression:
		return leaf("%s ThisExpression %q", label, v.Token)
	case *ast.Parens:
		return node(label+" Parens", exprTreeNode("Inner", v.Inner))
	case *ast.SplatExpression:
		return node(label+" SplatExpression", exprTreeNode("Inner", v.Inner))
	case *ast.BinaryExpression:
		return node(fmt.Sprintf("%s BinaryExpression %q", label, v.Operator.Text),
			exprTreeNode("Left", v.Left), exprTreeNode("Right", v.Right))
	case *ast.PrefixUnaryExpression:
		return node(fmt.Sprintf("%s PrefixUnaryExpression %q", label, v.Operator.Text),
			exprTreeNode("Inner", v.Inner))
	case *ast.PostfixUnaryExpression:
		return node(fmt.Sprintf("%s PostfixUnaryExpression %q", label, v.Operator.Text),
			exprTreeNode("Inner", v.Inner))
	case *ast.Assign:
		return node(fmt.Sprintf("%s Assign %q", label, v.Operator.Text),
			exprTreeNode("Target", v.Target), exprTreeNode("Value", v.Value))
	case *ast.PropertyAccess:
		accessor := "."
		if v.Proto {
			accessor = "::"
		}
		return node(fmt.Sprintf("%s PropertyAccess %s%s", label, accessor, v.Member.Text),
			exprTreeNode("Target", v.Target))
	case *ast.FunctionCall:
		n := node(fmt.Sprintf("%s FunctionCall (%d args)", label, len(v.Args)),
			exprTreeNode("Target", v.Target))
		for i, a := range v.Args {
			n.children = append(n.children, exprTreeNode(fmt.Sprintf("Arg[%d]", i), a))
		}
		return n
	case *ast.Function:
		n := node(fmt.Sprintf("%s Function (bindThis=%v, %d params)", label, v.BindThis, len(v.Params)))
		for i, p := range v.Params {
			pl := fmt.Sprintf("Param[%d] %s", i, p.Name)
			if p.Splat {
				pl += " (splat)"
			}
			if p.Default != nil {
				n.children = append(n.children, node(pl, exprTreeNode("Default", p.Default)))
			} else {
				n.children = append(n.children, leaf(pl))
			}
		}
		n.children = append(n.children, blockTreeNode("Body", v.Body))
		return n
	case *ast.ObjectLiteral:
		n := node(fmt.Sprintf("%s ObjectLiteral (%d properties)", label, len(v.Properties)))
		for i, p := range v.Properties {
			n.children = append(n.children, node(fmt.Sprintf("Property[%d]", i),
				exprTreeNode("Key", p.Key), exprTreeNode("Value", p.Value)))
		}
		return n
	case *ast.IfExpression:
		n := node(fmt.Sprintf("%s IfExpression (%s)", label, v.Operator.String()),
			exprTreeNode("Cond", v.Cond), blockTreeNode("Then", v.Then))
		switch e := v.Else.(type) {
		case *ast.Block:
			n.children = append(n.children, blockTreeNode("Else", e))
		case *ast.IfExpression:
			n.children = append(n.children, exprTreeNode("Else", e))
		}
		return n
	case *ast.LoopExpression:
		n := node(fmt.Sprintf("%s LoopExpression (%s)", label, v.Operator.String()))
		if v.Cond != nil {
			n.children = append(n.children, exprTreeNode("Cond", v.Cond))
		}
		n.children = append(n.children, blockTreeNode("Body", v.Body))
		return n
	case *ast.ForExpression:
		n := node(fmt.Sprintf("%s ForExpression (%s)", label, v.IterType.String()),
			exprTreeNode("Iter1", v.Iter1))
		if v.Iter2 != nil {
			n.children = append(n.children, exprTreeNode("Iter2", v.Iter2))
		}
		n.children = append(n.children, exprTreeNode("Iterable", v.Iterable))
		if v.Body != nil {
			n.children = append(n.children, blockTreeNode("Body", v.Body))
		}
		return n
	case *ast.ForExpression2:
		return node(label+" ForExpression2",
			exprTreeNode("Inner", v.Inner), exprTreeNode("Loop", v.Loop))
	default:
		return leaf("%s <unknown expr %T>", label, e)
	}
}

// ASTOneLine renders root using the canonical emit format on a single line,
// prefixed by a header naming the file — used by "surge parse --format
// pretty" for compact terminal output.
func ASTOneLine(w io.Writer, header string, root *ast.Block) error {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(": ")
	sb.WriteString(ast.Emit(root))
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
