package vector

import "github.com/pkg/errors"

var (
	ErrUnsupportedOp        = errors.New("unsupported operation")
	ErrUnsupportedPredicate = errors.New("unsupported predicate")
	ErrLengthMismatch       = errors.New("length mismatch")
	ErrInvalidOperand       = errors.New("invalid operand")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrReleased             = errors.New("array already released")
)
