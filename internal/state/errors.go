package state

import "errors"

var (
	ErrWrongDiscriminator = errors.New("wrong account discriminator")
	ErrInvalidLength      = errors.New("invalid account data length")
)
