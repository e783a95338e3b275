package processor

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/pkg/serialization/codec/layout"
)

// Tag is the first byte of instruction data. Reset and Mine are served by
// other components and are not dispatched here.
type Tag uint8

const (
	TagReset Tag = iota
	TagRegister
	TagMine
	TagClaim
)

func (t Tag) String() string {
	switch t {
	case TagReset:
		return "reset"
	case TagRegister:
		return "register"
	case TagMine:
		return "mine"
	case TagClaim:
		return "claim"
	default:
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
}

type RegisterArgs struct {
	// Bump completes the proof address seeds.
	Bump uint8
}

func (a RegisterArgs) Encode() []byte {
	return layout.NewWriter(2).Uint8(uint8(TagRegister)).Uint8(a.Bump).Result()
}

type ClaimArgs struct {
	Amount uint64
}

func (a ClaimArgs) Encode() []byte {
	return layout.NewWriter(9).Uint8(uint8(TagClaim)).Uint64(a.Amount).Result()
}

func splitTag(data []byte) (Tag, []byte, error) {
	if len(data) == 0 {
		return 0, nil, fmt.Errorf("%w: empty", ErrInvalidInstructionData)
	}
	return Tag(data[0]), data[1:], nil
}

func decodeRegisterArgs(body []byte) (RegisterArgs, error) {
	r := layout.NewReader(body)
	args := RegisterArgs{Bump: r.Uint8("bump")}
	if err := r.Finish(); err != nil {
		return RegisterArgs{}, fmt.Errorf("%w: register: %w", ErrInvalidInstructionData, err)
	}
	return args, nil
}

func decodeClaimArgs(body []byte) (ClaimArgs, error) {
	r := layout.NewReader(body)
	args := ClaimArgs{Amount: r.Uint64("amount")}
	if err := r.Finish(); err != nil {
		return ClaimArgs{}, fmt.Errorf("%w: claim: %w", ErrInvalidInstructionData, err)
	}
	return args, nil
}

// NewRegisterInstruction builds a registration for signer. The proof address
// and its bump are searched for here, on the client side.
func NewRegisterInstruction(signer address.Address) (runtime.Instruction, error) {
	proof, bump, err := address.FindProgramAddress(constants.ProofSeeds(signer), constants.ProgramID)
	if err != nil {
		return runtime.Instruction{}, fmt.Errorf("derive proof address: %w", err)
	}
	return runtime.Instruction{
		ProgramID: constants.ProgramID,
		Accounts: []runtime.AccountMeta{
			{Address: signer, IsSigner: true, IsWritable: true},
			{Address: proof, IsWritable: true},
			{Address: constants.SystemProgramID},
			{Address: constants.SlotHashesSysvarID},
		},
		Data: RegisterArgs{Bump: bump}.Encode(),
	}, nil
}

// NewClaimInstruction builds a claim of amount from signer's proof into the
// beneficiary token account.
func NewClaimInstruction(signer, beneficiary address.Address, amount uint64) (runtime.Instruction, error) {
	proof, _, err := address.FindProgramAddress(constants.ProofSeeds(signer), constants.ProgramID)
	if err != nil {
		return runtime.Instruction{}, fmt.Errorf("derive proof address: %w", err)
	}
	s := constants.Singletons()
	return runtime.Instruction{
		ProgramID: constants.ProgramID,
		Accounts: []runtime.AccountMeta{
			{Address: signer, IsSigner: true},
			{Address: beneficiary, IsWritable: true},
			{Address: s.Mint.Address, IsWritable: true},
			{Address: proof, IsWritable: true},
			{Address: s.Treasury.Address},
			{Address: s.TreasuryTokens.Address, IsWritable: true},
			{Address: constants.TokenProgramID},
		},
		Data: ClaimArgs{Amount: amount}.Encode(),
	}, nil
}
