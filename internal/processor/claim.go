package processor

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/safemath"
	"github.com/eigerco/ore/pkg/log"
)

// ClaimOutcome splits a claimed amount into what was burned for claiming
// early and what reached the beneficiary.
type ClaimOutcome struct {
	Burned uint64
	Paid   uint64
}

// DecayBurn is the share of amount destroyed when claiming at now, given the
// previous claim at lastClaimAt. It falls linearly from all of amount right
// after a claim to nothing one day later.
func DecayBurn(amount uint64, lastClaimAt, now int64) uint64 {
	t := safemath.SaturatingAddInt64(lastClaimAt, constants.OneDay)
	if now >= t {
		return 0
	}
	remaining := safemath.SaturatingSubInt64(t, now)
	if remaining >= constants.OneDay {
		// now is at or before the last claim.
		return amount
	}
	burn, err := safemath.MulDiv64(amount, uint64(remaining), uint64(constants.OneDay))
	if err != nil {
		return amount
	}
	return min(burn, amount)
}

// Claim pays amount out of the signer's proof balance from the treasury
// vault, burning the early claim share first.
//
// Accounts:
//  0. signer
//  1. beneficiary token account, writable
//  2. mint, writable
//  3. proof, writable
//  4. treasury
//  5. treasury token vault, writable
//  6. token program
func (p *Processor) Claim(accounts []*runtime.AccountInfo, args ClaimArgs) (ClaimOutcome, error) {
	if err := checkAccountCount(accounts, 7); err != nil {
		return ClaimOutcome{}, err
	}
	signer, beneficiary, mint, proofInfo, treasury, vault, tokenProgram :=
		accounts[0], accounts[1], accounts[2], accounts[3], accounts[4], accounts[5], accounts[6]

	if err := loadSigner(signer); err != nil {
		return ClaimOutcome{}, err
	}
	s := constants.Singletons()
	if _, err := loadTokenAccount(p.token, beneficiary, nil, s.Mint.Address, true); err != nil {
		return ClaimOutcome{}, err
	}
	if _, err := loadMint(p.token, mint, true); err != nil {
		return ClaimOutcome{}, err
	}
	proof, err := loadProof(proofInfo, signer.Key, true)
	if err != nil {
		return ClaimOutcome{}, err
	}
	if _, err := loadTreasury(treasury, false); err != nil {
		return ClaimOutcome{}, err
	}
	if vault.Key != s.TreasuryTokens.Address {
		return ClaimOutcome{}, fmt.Errorf("%w: vault %s", ErrInvalidTokenAccount, vault.Key)
	}
	if _, err := loadTokenAccount(p.token, vault, &s.Treasury.Address, s.Mint.Address, true); err != nil {
		return ClaimOutcome{}, err
	}
	if err := loadProgram(tokenProgram, p.token.ID); err != nil {
		return ClaimOutcome{}, err
	}

	balance, ok := safemath.Sub64(proof.Balance, args.Amount)
	if !ok {
		return ClaimOutcome{}, fmt.Errorf("%w: %d > %d", ErrClaimTooLarge, args.Amount, proof.Balance)
	}

	now := p.clock.UnixTimestamp()
	out := ClaimOutcome{Burned: DecayBurn(args.Amount, proof.LastClaimAt, now)}
	out.Paid = args.Amount - out.Burned

	inv := runtime.Invoke{
		ProgramID: constants.ProgramID,
		Signers:   []address.SignerSeeds{constants.TreasurySigner()},
	}
	if out.Burned > 0 {
		if err := p.token.Burn(inv, vault, mint, treasury, out.Burned); err != nil {
			return ClaimOutcome{}, fmt.Errorf("burn early claim: %w", err)
		}
	}

	proof.Balance = balance
	proof.LastClaimAt = now
	copy(proofInfo.Data, proof.Encode())

	if out.Paid > 0 {
		if err := p.token.Transfer(inv, vault, beneficiary, treasury, out.Paid); err != nil {
			return ClaimOutcome{}, fmt.Errorf("pay claim: %w", err)
		}
	}

	log.Program.Debug().
		Stringer("authority", signer.Key).
		Uint64("amount", args.Amount).
		Uint64("burned", out.Burned).
		Uint64("paid", out.Paid).
		Uint64("balance", proof.Balance).
		Msg("claimed")
	return out, nil
}
