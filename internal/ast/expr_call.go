package ast

// FunctionCall is "Target(Args...)" whether the parens were written
// explicitly or the call was implicit (parenthesis-less). The distinction
// does not survive into the tree: by the time a FunctionCall node exists,
// both surface forms mean the same thing.
type FunctionCall struct {
	Base
	Target Expr
	Args   []Expr
}

// SplatExpression marks a call argument written with a trailing "...":
// "foo(xs...)".
type SplatExpression struct {
	Base
	Inner Expr
}

// FunctionParam is one entry in a Function's parameter list. Splat and
// Default are mutually exclusive: a splat parameter can't have a default.
type FunctionParam struct {
	Base
	Name    string
	Default Expr
	Splat   bool
}

// Function is "(params) -> body" or "(params) => body". BindThis is true
// for the "=>" spelling, which captures the enclosing "this".
type Function struct {
	Base
	Params   []*FunctionParam
	Body     *Block
	BindThis bool
}

func (*FunctionCall) exprNode()    {}
func (*SplatExpression) exprNode() {}
func (*Function) exprNode()        {}
