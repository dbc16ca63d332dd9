package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/ast"
	"surge/internal/token"
)

// CheckASTInvariants walks a parsed root Block and checks the structural
// invariants §3.2 promises: every BinaryExpression has both operands,
// every FunctionCall target is a real expression, every ObjectLiteral has
// at least one property, and every for-loop variable is a left-hand
// value. It does not re-derive parser behavior — it is a cheap sanity net
// for fuzz and property tests, not a second parser.
func CheckASTInvariants(root *ast.Block) error {
	if root == nil {
		return fmt.Errorf("nil root block")
	}
	return checkBlock(root)
}

func checkBlock(b *ast.Block) error {
	if b == nil {
		return nil
	}
	if _, err := safecast.Conv[uint32](len(b.Statements)); err != nil {
		return fmt.Errorf("block statement count overflow: %w", err)
	}
	for i, s := range b.Statements {
		if s == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := checkStmt(s); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

func checkStmt(s ast.Stmt) error {
	switch v := s.(type) {
	case *ast.ExprStmt:
		return checkExpr(v.X)
	case *ast.ReturnStatement:
		if v.Value == nil {
			return nil
		}
		return checkExpr(v.Value)
	default:
		return fmt.Errorf("unknown statement variant %T", s)
	}
}

func checkExpr(e ast.Expr) error {
	if e == nil {
		return fmt.Errorf("nil expression")
	}
	switch v := e.(type) {
	case *ast.BinaryExpression:
		if v.Left == nil || v.Right == nil {
			return fmt.Errorf("binary expression %q missing an operand", v.Operator.Text)
		}
		if err := checkExpr(v.Left); err != nil {
			return err
		}
		return checkExpr(v.Right)
	case *ast.PrefixUnaryExpression:
		return checkExpr(v.Inner)
	case *ast.PostfixUnaryExpression:
		return checkExpr(v.Inner)
	case *ast.Parens:
		return checkExpr(v.Inner)
	case *ast.SplatExpression:
		return checkExpr(v.Inner)
	case *ast.Assign:
		if err := checkExpr(v.Target); err != nil {
			return err
		}
		return checkExpr(v.Value)
	case *ast.PropertyAccess:
		return checkExpr(v.Target)
	case *ast.FunctionCall:
		if v.Target == nil {
			return fmt.Errorf("function call has a nil target")
		}
		if err := checkExpr(v.Target); err != nil {
			return err
		}
		for i, a := range v.Args {
			if err := checkExpr(a); err != nil {
				return fmt.Errorf("argument %d: %w", i, err)
			}
		}
		return nil
	case *ast.Function:
		for _, param := range v.Params {
			if param.Default != nil {
				if err := checkExpr(param.Default); err != nil {
					return err
				}
			}
		}
		return checkBlock(v.Body)
	case *ast.ObjectLiteral:
		if len(v.Properties) == 0 {
			return fmt.Errorf("object literal has no properties")
		}
		for i, prop := range v.Properties {
			if err := checkExpr(prop.Key); err != nil {
				return fmt.Errorf("property %d key: %w", i, err)
			}
			if err := checkExpr(prop.Value); err != nil {
				return fmt.Errorf("property %d value: %w", i, err)
			}
		}
		return nil
	case *ast.IfExpression:
		if err := checkExpr(v.Cond); err != nil {
			return err
		}
		if err := checkBlock(v.Then); err != nil {
			return err
		}
		switch e := v.Else.(type) {
		case nil:
		case *ast.Block:
			return checkBlock(e)
		case *ast.IfExpression:
			return checkExpr(e)
		default:
			return fmt.Errorf("if-expression else arm has unexpected variant %T", v.Else)
		}
		return nil
	case *ast.LoopExpression:
		if v.Operator == token.UNTIL && v.Cond == nil {
			return fmt.Errorf("until-loop with no condition")
		}
		if v.Cond != nil {
			if err := checkExpr(v.Cond); err != nil {
				return err
			}
		}
		return checkBlock(v.Body)
	case *ast.ForExpression:
		if !isLeftHandValue(v.Iter1) {
			return fmt.Errorf("for-loop iter1 is not a left-hand value: %T", v.Iter1)
		}
		if v.Iter2 != nil && !isLeftHandValue(v.Iter2) {
			return fmt.Errorf("for-loop iter2 is not a left-hand value: %T", v.Iter2)
		}
		if err := checkExpr(v.Iterable); err != nil {
			return err
		}
		return checkBlock(v.Body)
	case *ast.ForExpression2:
		if err := checkExpr(v.Inner); err != nil {
			return err
		}
		return checkExpr(v.Loop)
	case *ast.Number, *ast.StringLiteral, *ast.Identifier, *ast.BuiltinPrimary, *ast.ThisExpression:
		return nil
	default:
		return fmt.Errorf("unknown expression variant %T", e)
	}
}

func isLeftHandValue(e ast.Expr) bool {
	switch v := e.(type) {
	case *ast.Identifier:
		return true
	case *ast.PropertyAccess:
		_, isThis := v.Target.(*ast.ThisExpression)
		return isThis
	default:
		return false
	}
}
