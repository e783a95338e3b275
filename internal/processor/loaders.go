package processor

import (
	"errors"
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/state"
	"github.com/eigerco/ore/internal/sysvar"
	"github.com/eigerco/ore/internal/token"
)

func loadSigner(info *runtime.AccountInfo) error {
	if !info.IsSigner {
		return fmt.Errorf("%w: %s", ErrMissingRequiredSignature, info.Key)
	}
	return nil
}

func requireWritable(info *runtime.AccountInfo) error {
	if !info.IsWritable {
		return fmt.Errorf("%w: %s", ErrAccountNotWritable, info.Key)
	}
	return nil
}

// loadUninitializedPDA checks that info is an empty, writable account at the
// address given by seeds and bump. The bump is verified, never searched for.
func loadUninitializedPDA(info *runtime.AccountInfo, seeds [][]byte, bump uint8, programID address.Address) error {
	if err := requireWritable(info); err != nil {
		return err
	}
	if !info.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrAccountAlreadyInitialized, info.Key)
	}
	if err := address.VerifyProgramAddress(info.Key, seeds, bump, programID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSeeds, err)
	}
	return nil
}

func loadProgram(info *runtime.AccountInfo, id address.Address) error {
	if info.Key != id {
		return fmt.Errorf("%w: expected %s, got %s", ErrIncorrectProgramID, id, info.Key)
	}
	return nil
}

func loadSysvar(info *runtime.AccountInfo, id address.Address) error {
	if info.Key != id {
		return fmt.Errorf("%w: expected %s, got %s", ErrInvalidSysvar, id, info.Key)
	}
	if info.Owner != constants.SysvarOwnerID {
		return fmt.Errorf("%w: %s owned by %s", ErrInvalidSysvar, info.Key, info.Owner)
	}
	return nil
}

func loadFreshestSlotHash(info *runtime.AccountInfo) (sysvar.SlotHash, error) {
	if err := loadSysvar(info, constants.SlotHashesSysvarID); err != nil {
		return sysvar.SlotHash{}, err
	}
	entry, err := sysvar.FreshestFromAccount(info.Data)
	if err != nil {
		if errors.Is(err, sysvar.ErrEmptyBeacon) {
			return sysvar.SlotHash{}, err
		}
		return sysvar.SlotHash{}, fmt.Errorf("%w: slot hashes: %w", ErrInvalidSysvar, err)
	}
	return entry, nil
}

func loadMint(tok token.Program, info *runtime.AccountInfo, writable bool) (token.Mint, error) {
	if info.Key != constants.Singletons().Mint.Address {
		return token.Mint{}, fmt.Errorf("%w: %s", ErrInvalidMint, info.Key)
	}
	if writable {
		if err := requireWritable(info); err != nil {
			return token.Mint{}, err
		}
	}
	m, err := tok.LoadMint(info)
	if err != nil {
		return token.Mint{}, fmt.Errorf("%w: %w", ErrInvalidMint, err)
	}
	return m, nil
}

// loadTokenAccount checks that info holds tokens of mint. When owner is set
// the account must also belong to it.
func loadTokenAccount(tok token.Program, info *runtime.AccountInfo, owner *address.Address, mint address.Address, writable bool) (token.Account, error) {
	if writable {
		if err := requireWritable(info); err != nil {
			return token.Account{}, err
		}
	}
	a, err := tok.LoadAccount(info)
	if err != nil {
		return token.Account{}, fmt.Errorf("%w: %w", ErrInvalidTokenAccount, err)
	}
	if a.Mint != mint {
		return token.Account{}, fmt.Errorf("%w: %s holds %s, not %s", ErrInvalidTokenAccount, info.Key, a.Mint, mint)
	}
	if owner != nil && a.Owner != *owner {
		return token.Account{}, fmt.Errorf("%w: %s owned by %s, not %s", ErrInvalidTokenAccount, info.Key, a.Owner, *owner)
	}
	return a, nil
}

func loadTreasury(info *runtime.AccountInfo, writable bool) (state.Treasury, error) {
	if info.Key != constants.Singletons().Treasury.Address {
		return state.Treasury{}, fmt.Errorf("%w: %s", ErrInvalidTreasury, info.Key)
	}
	if info.Owner != constants.ProgramID {
		return state.Treasury{}, fmt.Errorf("%w: treasury owned by %s", ErrInvalidAccountOwner, info.Owner)
	}
	if writable {
		if err := requireWritable(info); err != nil {
			return state.Treasury{}, err
		}
	}
	t, err := state.DecodeTreasury(info.Data)
	if err != nil {
		return state.Treasury{}, fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}
	return t, nil
}

// loadProof decodes the proof held by info and checks it belongs to authority.
func loadProof(info *runtime.AccountInfo, authority address.Address, writable bool) (state.Proof, error) {
	if info.Owner != constants.ProgramID {
		return state.Proof{}, fmt.Errorf("%w: proof %s owned by %s", ErrInvalidAccountOwner, info.Key, info.Owner)
	}
	if writable {
		if err := requireWritable(info); err != nil {
			return state.Proof{}, err
		}
	}
	p, err := state.DecodeProof(info.Data)
	if err != nil {
		return state.Proof{}, fmt.Errorf("%w: %w", ErrInvalidAccountData, err)
	}
	if p.Authority != authority {
		return state.Proof{}, fmt.Errorf("%w: proof %s belongs to %s", ErrProofAuthorityMismatch, info.Key, p.Authority)
	}
	return p, nil
}
