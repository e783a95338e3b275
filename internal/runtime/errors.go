package runtime

import "errors"

var (
	ErrUnknownProgram           = errors.New("unknown program")
	ErrReadonlyDataModified     = errors.New("instruction modified data of a read-only account")
	ErrAccountAlreadyInUse      = errors.New("account already in use")
	ErrMissingRequiredSignature = errors.New("missing required signature")
	ErrInvalidAccountSize       = errors.New("invalid account size")
)
