// Package genesis creates the singleton accounts of a fresh ledger: config,
// treasury, buses, the token mint with its metadata and the treasury vault.
package genesis

import (
	"errors"
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/state"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/internal/token"
	"github.com/eigerco/ore/pkg/log"
)

var ErrAlreadyInitialized = errors.New("ledger already initialized")

type Options struct {
	// Admin may update the config.
	Admin address.Address
	// Now stamps the config's last reset.
	Now int64
}

// Initialize writes every singleton account in a single batch. It fails if
// the config account already exists.
func Initialize(accounts *store.Accounts, opts Options) error {
	s := constants.Singletons()

	existing, err := accounts.GetAccount(s.Config.Address)
	if err != nil {
		return err
	}
	if !existing.IsEmpty() {
		return ErrAlreadyInitialized
	}

	writes := []store.Write{
		programAccount(s.Config.Address, state.Config{
			Admin:          opts.Admin,
			BaseRewardRate: constants.InitialBaseRewardRate,
			LastResetAt:    opts.Now,
			MinDifficulty:  uint64(constants.MinDifficulty),
			Tolerance:      constants.InitialTolerance,
		}.Encode()),
		programAccount(s.Treasury.Address, state.Treasury{Bump: s.Treasury.Bump}.Encode()),
	}
	for i, b := range s.Buses {
		writes = append(writes, programAccount(b.Address, state.Bus{ID: uint64(i)}.Encode()))
	}

	mint := token.Mint{
		MintAuthority: s.Treasury.Address,
		Decimals:      constants.TokenDecimals,
		IsInitialized: true,
	}
	vault := token.Account{
		Mint:          s.Mint.Address,
		Owner:         s.Treasury.Address,
		IsInitialized: true,
	}
	metadata, err := Metadata{
		Mint:            s.Mint.Address,
		UpdateAuthority: s.Treasury.Address,
		Name:            constants.MetadataName,
		Symbol:          constants.MetadataSymbol,
		URI:             constants.MetadataURI,
	}.Encode()
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	writes = append(writes,
		store.Write{Address: s.Mint.Address, Account: store.Account{Owner: constants.TokenProgramID, Data: mint.Encode()}},
		store.Write{Address: s.TreasuryTokens.Address, Account: store.Account{Owner: constants.TokenProgramID, Data: vault.Encode()}},
		store.Write{Address: s.Metadata.Address, Account: store.Account{Owner: constants.TokenMetadataProgramID, Data: metadata}},
	)

	if err := accounts.Commit(writes); err != nil {
		return fmt.Errorf("write genesis accounts: %w", err)
	}
	log.Root.Info().
		Stringer("mint", s.Mint.Address).
		Stringer("treasury", s.Treasury.Address).
		Int("accounts", len(writes)).
		Msg("ledger initialized")
	return nil
}

func programAccount(addr address.Address, data []byte) store.Write {
	return store.Write{Address: addr, Account: store.Account{Owner: constants.ProgramID, Data: data}}
}

// OpenTokenAccount creates owner's associated token account for the mint if
// it does not exist yet and returns its address.
func OpenTokenAccount(accounts *store.Accounts, owner address.Address) (address.Address, error) {
	s := constants.Singletons()
	addr, _, err := address.FindProgramAddress(
		constants.AssociatedTokenSeeds(owner, s.Mint.Address),
		constants.AssociatedTokenProgramID,
	)
	if err != nil {
		return address.Address{}, fmt.Errorf("derive token account: %w", err)
	}
	existing, err := accounts.GetAccount(addr)
	if err != nil {
		return address.Address{}, err
	}
	if !existing.IsEmpty() {
		return addr, nil
	}
	acct := token.Account{Mint: s.Mint.Address, Owner: owner, IsInitialized: true}
	if err := accounts.PutAccount(addr, store.Account{Owner: constants.TokenProgramID, Data: acct.Encode()}); err != nil {
		return address.Address{}, fmt.Errorf("create token account: %w", err)
	}
	return addr, nil
}
