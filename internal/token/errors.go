package token

import "errors"

var (
	ErrInvalidAccountOwner = errors.New("token: account not owned by the token program")
	ErrUninitialized       = errors.New("token: account is not initialized")
	ErrMintMismatch        = errors.New("token: account does not belong to mint")
	ErrOwnerMismatch       = errors.New("token: owner does not match")
	ErrInsufficientFunds   = errors.New("token: insufficient funds")
	ErrMissingAuthority    = errors.New("token: authority did not sign")
	ErrNotWritable         = errors.New("token: account is not writable")
	ErrOverflow            = errors.New("token: operation overflowed")
	ErrMaxSupplyExceeded   = errors.New("token: mint would exceed maximum supply")
)
