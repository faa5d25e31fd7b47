package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
)

// ParseResult threads a parsed node (or error) back up the call chain
// while counting how many tokens were consumed, so a failed speculative
// production can be rolled back by exactly that many.
//
// Fields:
//   - Error: the sticky error recorded for this production, if any
//   - Node: the successfully parsed node
//   - lastRegisteredCount: tokens consumed by the most recent Register
//     or RegisterNext call, consulted by Failure's sticky-error rule
//   - NextCount: total tokens this production has consumed so far
//   - ToReverseCount: tokens the caller must roll back after a failed
//     TryRegister
type ParseResult struct {
	Error               *source.Error // Sticky error for this production
	Node                ast.Node      // Successfully parsed node
	lastRegisteredCount int           // Tokens consumed by the latest register
	NextCount           int           // Total tokens consumed so far
	ToReverseCount      int           // Tokens to roll back after TryRegister fails
}

// RegisterNext records that the caller is about to consume exactly one
// token itself (used around every direct p.advance() call).
func (r *ParseResult) RegisterNext() {
	r.lastRegisteredCount = 1
	r.NextCount++
}

// Register absorbs a sub-result: its consumed-token count folds into
// this result's count, and its error (if any) becomes this result's
// error.
//
// Parameters:
//   - sub: the completed sub-production's result
//
// Returns:
//   - ast.Node: the sub-result's node, for convenience at the call site
func (r *ParseResult) Register(sub *ParseResult) ast.Node {
	r.lastRegisteredCount = sub.NextCount
	r.NextCount += sub.NextCount
	if sub.Error != nil {
		r.Error = sub.Error
	}
	return sub.Node
}

// TryRegister absorbs a sub-result only if it succeeded; on failure it
// records how many tokens to reverse and returns nil without touching
// this result's error, letting the caller backtrack and try another
// production instead.
//
// Parameters:
//   - sub: the speculative sub-production's result
//
// Returns:
//   - ast.Node: the sub-result's node, or nil when the speculation
//     failed and ToReverseCount was recorded instead
func (r *ParseResult) TryRegister(sub *ParseResult) ast.Node {
	if sub.Error != nil {
		r.ToReverseCount = sub.NextCount
		return nil
	}
	return r.Register(sub)
}

// Success finalizes this result with a parsed node.
//
// Parameters:
//   - node: the node this production built
//
// Returns:
//   - *ParseResult: the receiver, for returning in one expression
func (r *ParseResult) Success(node ast.Node) *ParseResult {
	r.Node = node
	return r
}

// Failure finalizes this result with an error, unless an earlier error
// is already recorded and the most recent Register or RegisterNext
// consumed at least one token — sticky errors keep the deeper failure
// of a sub-production that made progress instead of replacing it with
// this production's more generic message.
//
// Parameters:
//   - err: the InvalidSyntax error this production hit
//
// Returns:
//   - *ParseResult: the receiver, for returning in one expression
func (r *ParseResult) Failure(err *source.Error) *ParseResult {
	if r.Error == nil || r.lastRegisteredCount == 0 {
		r.Error = err
	}
	return r
}
