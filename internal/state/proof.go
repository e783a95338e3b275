package state

import (
	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/pkg/serialization/codec/layout"
)

// ProofSize is the encoded size of a Proof including its discriminator.
const ProofSize = 1 + 32 + 8 + 32 + 32 + 8*5

// Proof is the per miner record of hash chain state, claimable balance and
// timestamps. It is addressed by the ("proof", authority) seeds.
type Proof struct {
	// Authority may mine and claim against this proof. Never changes.
	Authority address.Address
	// Balance is the claimable reward in indivisible units.
	Balance uint64
	// Challenge is the current head of the hash chain.
	Challenge [32]byte
	// LastHash is the most recently accepted chain extension.
	LastHash    [32]byte
	LastHashAt  int64
	LastStakeAt int64
	LastClaimAt int64
	// Lifetime counters.
	TotalHashes  uint64
	TotalRewards uint64
}

func (p Proof) Encode() []byte {
	return layout.NewWriter(ProofSize).
		Uint8(uint8(DiscriminatorProof)).
		Bytes32(p.Authority).
		Uint64(p.Balance).
		Bytes32(p.Challenge).
		Bytes32(p.LastHash).
		Int64(p.LastHashAt).
		Int64(p.LastStakeAt).
		Int64(p.LastClaimAt).
		Uint64(p.TotalHashes).
		Uint64(p.TotalRewards).
		Result()
}

func DecodeProof(data []byte) (Proof, error) {
	if err := checkHeader(data, DiscriminatorProof, ProofSize); err != nil {
		return Proof{}, err
	}
	r := layout.NewReader(data[1:])
	p := Proof{
		Authority:    r.Bytes32("authority"),
		Balance:      r.Uint64("balance"),
		Challenge:    r.Bytes32("challenge"),
		LastHash:     r.Bytes32("last_hash"),
		LastHashAt:   r.Int64("last_hash_at"),
		LastStakeAt:  r.Int64("last_stake_at"),
		LastClaimAt:  r.Int64("last_claim_at"),
		TotalHashes:  r.Uint64("total_hashes"),
		TotalRewards: r.Uint64("total_rewards"),
	}
	if err := r.Finish(); err != nil {
		return Proof{}, err
	}
	return p, nil
}
