package expr

import "github.com/pkg/errors"

var (
	// ErrSyntax wraps every parse failure.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownGraph is returned for an identifier the Env does not bind.
	ErrUnknownGraph = errors.New("expr: unknown graph")

	// ErrType is returned when an operator does not accept its operand kinds.
	ErrType = errors.New("expr: type mismatch")
)
