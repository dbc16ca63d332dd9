// Package ast defines the syntax tree the parser builds: a tagged-variant
// tree of expressions, statements, and blocks, matched with type switches
// rather than a class hierarchy. Every node also knows how to re-emit
// itself as source text (Emit, DebugEmitCommon) and, for the arithmetic
// subset, evaluate itself numerically (DebugEval) — capabilities used by
// tests as parse oracles, not by the parser itself.
package ast
