// Package address implements program derived addressing: 32 byte account
// addresses computed from a list of seeds and a program id, guaranteed to lie
// off the ed25519 curve so that no private key can sign for them.
package address

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	Size = 32

	// MaxSeeds is the maximum number of seeds, including the bump.
	MaxSeeds = 16
	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32
)

const pdaMarker = "ProgramDerivedAddress"

var (
	ErrMaxSeedLengthExceeded = errors.New("seed length exceeded")
	ErrTooManySeeds          = errors.New("too many seeds")
	ErrInvalidSeeds          = errors.New("invalid seeds")
	ErrBumpNotFound          = errors.New("unable to find a viable program address bump seed")
	ErrInvalidEncoding       = errors.New("invalid base58 address")
)

// Address identifies an account.
type Address [Size]byte

// Zero is the all zero address.
var Zero Address

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Zero
}

// Compare orders addresses bytewise.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// IsOnCurve reports whether the address decodes to an ed25519 point, i.e.
// whether a private key could exist for it.
func (a Address) IsOnCurve() bool {
	_, err := new(edwards25519.Point).SetBytes(a[:])
	return err == nil
}

func FromBase58(s string) (Address, error) {
	b := base58.Decode(s)
	if len(b) != Size {
		return Zero, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidEncoding, s, len(b))
	}
	return Address(b), nil
}

func MustFromBase58(s string) Address {
	a, err := FromBase58(s)
	if err != nil {
		panic(err)
	}
	return a
}

// CreateProgramAddress derives the address for seeds under programID. The
// bump, if any, must already be the last seed.
func CreateProgramAddress(seeds [][]byte, programID Address) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Zero, ErrTooManySeeds
	}
	h := sha256.New()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return Zero, ErrMaxSeedLengthExceeded
		}
		h.Write(s)
	}
	h.Write(programID[:])
	h.Write([]byte(pdaMarker))

	var a Address
	copy(a[:], h.Sum(nil))
	if a.IsOnCurve() {
		return Zero, fmt.Errorf("%w: address must fall off the curve", ErrInvalidSeeds)
	}
	return a, nil
}

// FindProgramAddress searches bumps from 255 down to 0 and returns the first
// that yields an off curve address.
func FindProgramAddress(seeds [][]byte, programID Address) (Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Zero, 0, ErrTooManySeeds
	}
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		a, err := CreateProgramAddress(withBump, programID)
		if err == nil {
			return a, uint8(bump), nil
		}
		if !errors.Is(err, ErrInvalidSeeds) {
			return Zero, 0, err
		}
	}
	return Zero, 0, ErrBumpNotFound
}

// VerifyProgramAddress checks that seeds plus the caller supplied bump derive
// expected. It never searches for a different bump.
func VerifyProgramAddress(expected Address, seeds [][]byte, bump uint8, programID Address) error {
	withBump := make([][]byte, 0, len(seeds)+1)
	withBump = append(withBump, seeds...)
	withBump = append(withBump, []byte{bump})
	a, err := CreateProgramAddress(withBump, programID)
	if err != nil {
		return err
	}
	if a != expected {
		return fmt.Errorf("%w: derived %s, expected %s", ErrInvalidSeeds, a, expected)
	}
	return nil
}
