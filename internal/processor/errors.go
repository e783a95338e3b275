package processor

import (
	"errors"

	"github.com/eigerco/ore/internal/sysvar"
)

var (
	ErrWrongAccountCount         = errors.New("wrong number of accounts")
	ErrInvalidInstructionData    = errors.New("invalid instruction data")
	ErrUnknownInstruction        = errors.New("unknown instruction")
	ErrMissingRequiredSignature  = errors.New("missing required signature")
	ErrAccountNotWritable        = errors.New("account not writable")
	ErrAccountAlreadyInitialized = errors.New("account already initialized")
	ErrInvalidSeeds              = errors.New("invalid seeds for program address")
	ErrIncorrectProgramID        = errors.New("incorrect program id")
	ErrInvalidSysvar             = errors.New("invalid sysvar")
	ErrInvalidAccountOwner       = errors.New("invalid account owner")
	ErrInvalidAccountData        = errors.New("invalid account data")
	ErrInvalidMint               = errors.New("invalid mint")
	ErrInvalidTreasury           = errors.New("invalid treasury")
	ErrInvalidTokenAccount       = errors.New("invalid token account")
	ErrProofAuthorityMismatch    = errors.New("proof authority does not match signer")
	ErrClaimTooLarge             = errors.New("claim amount exceeds proof balance")

	ErrEmptyBeacon = sysvar.ErrEmptyBeacon
)
