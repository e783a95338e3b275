package processor

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/crypto"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/state"
	"github.com/eigerco/ore/pkg/log"
)

// Register creates the proof account for the signing miner.
//
// Accounts:
//  0. signer
//  1. proof, writable, empty
//  2. system program
//  3. slot hashes sysvar
func (p *Processor) Register(accounts []*runtime.AccountInfo, args RegisterArgs) error {
	if err := checkAccountCount(accounts, 4); err != nil {
		return err
	}
	signer, proofInfo, systemProgram, slotHashes := accounts[0], accounts[1], accounts[2], accounts[3]

	if err := loadSigner(signer); err != nil {
		return err
	}
	seeds := constants.ProofSeeds(signer.Key)
	if err := loadUninitializedPDA(proofInfo, seeds, args.Bump, constants.ProgramID); err != nil {
		return err
	}
	if err := loadProgram(systemProgram, constants.SystemProgramID); err != nil {
		return err
	}
	entry, err := loadFreshestSlotHash(slotHashes)
	if err != nil {
		return err
	}
	now := p.clock.UnixTimestamp()

	inv := runtime.Invoke{
		ProgramID: constants.ProgramID,
		Signers:   []address.SignerSeeds{address.NewSignerSeeds(args.Bump, seeds...)},
	}
	if err := runtime.CreateAccount(inv, signer, proofInfo, state.ProofSize, constants.ProgramID); err != nil {
		return fmt.Errorf("create proof account: %w", err)
	}

	proof := state.Proof{
		Authority:   signer.Key,
		Challenge:   crypto.Blake3(signer.Key[:], entry.Encode()),
		LastHashAt:  now,
		LastStakeAt: now,
		LastClaimAt: now,
	}
	copy(proofInfo.Data, proof.Encode())

	log.Program.Debug().
		Stringer("authority", signer.Key).
		Stringer("proof", proofInfo.Key).
		Uint64("slot", entry.Slot).
		Msg("registered")
	return nil
}
