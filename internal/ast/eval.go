package ast

import "strconv"

// DebugEval partially evaluates the arithmetic subset of the tree: number
// literals, parens, unary +/-, and binary +, -, *, /. Anything else
// (identifiers, calls, control flow, ...) reports ok=false. It exists only
// so tests can assert on the shape of the tree without a full interpreter.
func DebugEval(n Node) (float64, bool) {
	switch v := n.(type) {
	case *Number:
		f, err := strconv.ParseFloat(v.Text, 64)
		return f, err == nil
	case *Parens:
		return DebugEval(v.Inner)
	case *PrefixUnaryExpression:
		inner, ok := DebugEval(v.Inner)
		if !ok {
			return 0, false
		}
		switch v.Operator.Text {
		case "+":
			return inner, true
		case "-":
			return -inner, true
		default:
			return 0, false
		}
	case *BinaryExpression:
		left, ok := DebugEval(v.Left)
		if !ok {
			return 0, false
		}
		right, ok := DebugEval(v.Right)
		if !ok {
			return 0, false
		}
		switch v.Operator.Text {
		case "+":
			return left + right, true
		case "-":
			return left - right, true
		case "*":
			return left * right, true
		case "/":
			if right == 0 {
				return 0, false
			}
			return left / right, true
		default:
			return 0, false
		}
	default:
		return 0, false
	}
}
