// Package sysvar models the runtime provided accounts the program reads: the
// slot hashes randomness beacon and the clock.
package sysvar

import (
	"errors"
	"fmt"

	"github.com/eigerco/ore/pkg/serialization/codec/layout"
)

// MaxSlotHashes is how many recent entries the beacon retains.
const MaxSlotHashes = 512

// SlotHashSize is the encoded size of one entry.
const SlotHashSize = 8 + 32

var ErrEmptyBeacon = errors.New("slot hashes beacon has no entries")

// SlotHash is one beacon entry.
type SlotHash struct {
	Slot uint64
	Hash [32]byte
}

// Encode writes slot then hash, the form hashed into a new challenge.
func (s SlotHash) Encode() []byte {
	return layout.NewWriter(SlotHashSize).Uint64(s.Slot).Bytes32(s.Hash).Result()
}

// SlotHashes holds recent entries, newest first.
type SlotHashes []SlotHash

// Push records a new slot at the head, dropping the oldest entry when full.
func (s SlotHashes) Push(slot uint64, hash [32]byte) SlotHashes {
	out := make(SlotHashes, 0, min(len(s)+1, MaxSlotHashes))
	out = append(out, SlotHash{Slot: slot, Hash: hash})
	for _, e := range s {
		if len(out) == MaxSlotHashes {
			break
		}
		out = append(out, e)
	}
	return out
}

// Freshest returns the most recent entry.
func (s SlotHashes) Freshest() (SlotHash, error) {
	if len(s) == 0 {
		return SlotHash{}, ErrEmptyBeacon
	}
	return s[0], nil
}

// Encode lays out an entry count followed by the entries.
func (s SlotHashes) Encode() []byte {
	w := layout.NewWriter(8 + len(s)*SlotHashSize)
	w.Uint64(uint64(len(s)))
	for _, e := range s {
		w.Uint64(e.Slot).Bytes32(e.Hash)
	}
	return w.Result()
}

func DecodeSlotHashes(data []byte) (SlotHashes, error) {
	r := layout.NewReader(data)
	n := r.Uint64("len")
	if r.Err() != nil {
		return nil, r.Err()
	}
	if n > MaxSlotHashes {
		return nil, fmt.Errorf("slot hashes: %d entries exceeds %d", n, MaxSlotHashes)
	}
	out := make(SlotHashes, 0, n)
	for i := uint64(0); i < n; i++ {
		out = append(out, SlotHash{
			Slot: r.Uint64("slot"),
			Hash: r.Bytes32("hash"),
		})
	}
	if err := r.Finish(); err != nil {
		return nil, err
	}
	return out, nil
}

// FreshestFromAccount decodes just the head entry of beacon account data.
func FreshestFromAccount(data []byte) (SlotHash, error) {
	r := layout.NewReader(data)
	n := r.Uint64("len")
	if r.Err() != nil {
		return SlotHash{}, r.Err()
	}
	if n == 0 {
		return SlotHash{}, ErrEmptyBeacon
	}
	e := SlotHash{Slot: r.Uint64("slot"), Hash: r.Bytes32("hash")}
	if r.Err() != nil {
		return SlotHash{}, r.Err()
	}
	return e, nil
}
