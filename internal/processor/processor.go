// Package processor is the program entrypoint for miner registration and
// reward claims. It validates the accounts handed to it, derives and checks
// program addresses, and moves tokens through the token service.
package processor

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/sysvar"
	"github.com/eigerco/ore/internal/token"
)

type Processor struct {
	clock sysvar.Clock
	token token.Program
}

var _ runtime.Handler = (*Processor)(nil)

func New(clock sysvar.Clock, tok token.Program) *Processor {
	return &Processor{clock: clock, token: tok}
}

// Process dispatches on the instruction tag.
func (p *Processor) Process(programID address.Address, accounts []*runtime.AccountInfo, data []byte) error {
	if programID != constants.ProgramID {
		return fmt.Errorf("%w: %s", ErrIncorrectProgramID, programID)
	}
	tag, body, err := splitTag(data)
	if err != nil {
		return err
	}
	switch tag {
	case TagRegister:
		args, err := decodeRegisterArgs(body)
		if err != nil {
			return err
		}
		return p.Register(accounts, args)
	case TagClaim:
		args, err := decodeClaimArgs(body)
		if err != nil {
			return err
		}
		_, err = p.Claim(accounts, args)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownInstruction, tag)
	}
}

func checkAccountCount(accounts []*runtime.AccountInfo, want int) error {
	if len(accounts) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrWrongAccountCount, want, len(accounts))
	}
	return nil
}
