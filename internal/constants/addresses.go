package constants

import (
	"fmt"
	"sync"

	"github.com/eigerco/ore/internal/address"
)

// Derived is a program derived address together with its bump.
type Derived struct {
	Address address.Address
	Bump    uint8
}

// Addresses are the singleton accounts of the program. They depend only on
// the seeds above and the program ids, so any caller can recompute them.
type Addresses struct {
	Buses    [BusCount]Derived
	Config   Derived
	Metadata Derived
	Mint     Derived
	Treasury Derived
	// TreasuryTokens is the treasury's associated token account: the vault
	// claims are paid from.
	TreasuryTokens Derived
}

var (
	singletons     Addresses
	singletonsOnce sync.Once
)

// Singletons returns the singleton table, deriving it on first use. The
// returned value is a copy; the table itself is never mutated.
func Singletons() Addresses {
	singletonsOnce.Do(func() {
		s, err := deriveAddresses()
		if err != nil {
			panic(fmt.Sprintf("derive singleton addresses: %v", err))
		}
		singletons = s
	})
	return singletons
}

func BusSeeds(id uint8) [][]byte {
	return [][]byte{SeedBus, {id}}
}

func ConfigSeeds() [][]byte {
	return [][]byte{SeedConfig}
}

func MintSeeds() [][]byte {
	return [][]byte{SeedMint, MintNoise[:]}
}

func TreasurySeeds() [][]byte {
	return [][]byte{SeedTreasury}
}

// AssociatedTokenSeeds are derived under the associated token program.
func AssociatedTokenSeeds(owner, mint address.Address) [][]byte {
	return [][]byte{owner[:], TokenProgramID[:], mint[:]}
}

// MetadataSeeds are derived under the token metadata program, not ours.
func MetadataSeeds(mint address.Address) [][]byte {
	return [][]byte{SeedMetadata, TokenMetadataProgramID[:], mint[:]}
}

func ProofSeeds(authority address.Address) [][]byte {
	return [][]byte{SeedProof, authority[:]}
}

func deriveAddresses() (Addresses, error) {
	var s Addresses
	find := func(name string, dst *Derived, seeds [][]byte, program address.Address) error {
		a, bump, err := address.FindProgramAddress(seeds, program)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = Derived{Address: a, Bump: bump}
		return nil
	}

	for i := range s.Buses {
		if err := find(fmt.Sprintf("bus %d", i), &s.Buses[i], BusSeeds(uint8(i)), ProgramID); err != nil {
			return Addresses{}, err
		}
	}
	if err := find("config", &s.Config, ConfigSeeds(), ProgramID); err != nil {
		return Addresses{}, err
	}
	if err := find("mint", &s.Mint, MintSeeds(), ProgramID); err != nil {
		return Addresses{}, err
	}
	if err := find("treasury", &s.Treasury, TreasurySeeds(), ProgramID); err != nil {
		return Addresses{}, err
	}
	if err := find("metadata", &s.Metadata, MetadataSeeds(s.Mint.Address), TokenMetadataProgramID); err != nil {
		return Addresses{}, err
	}
	treasuryTokens := AssociatedTokenSeeds(s.Treasury.Address, s.Mint.Address)
	if err := find("treasury tokens", &s.TreasuryTokens, treasuryTokens, AssociatedTokenProgramID); err != nil {
		return Addresses{}, err
	}
	return s, nil
}

// CheckAddresses re-derives every singleton from its recorded bump and fails
// if any disagrees. Run once at startup.
func CheckAddresses() error {
	s := Singletons()
	check := func(name string, d Derived, seeds [][]byte, program address.Address) error {
		if err := address.VerifyProgramAddress(d.Address, seeds, d.Bump, program); err != nil {
			return fmt.Errorf("%s address: %w", name, err)
		}
		return nil
	}
	for i, b := range s.Buses {
		if err := check(fmt.Sprintf("bus %d", i), b, BusSeeds(uint8(i)), ProgramID); err != nil {
			return err
		}
	}
	if err := check("config", s.Config, ConfigSeeds(), ProgramID); err != nil {
		return err
	}
	if err := check("mint", s.Mint, MintSeeds(), ProgramID); err != nil {
		return err
	}
	if err := check("treasury", s.Treasury, TreasurySeeds(), ProgramID); err != nil {
		return err
	}
	if err := check("metadata", s.Metadata, MetadataSeeds(s.Mint.Address), TokenMetadataProgramID); err != nil {
		return err
	}
	treasuryTokens := AssociatedTokenSeeds(s.Treasury.Address, s.Mint.Address)
	return check("treasury tokens", s.TreasuryTokens, treasuryTokens, AssociatedTokenProgramID)
}

// TreasurySigner is the capability the program uses to move vault tokens.
func TreasurySigner() address.SignerSeeds {
	return address.NewSignerSeeds(Singletons().Treasury.Bump, TreasurySeeds()...)
}
