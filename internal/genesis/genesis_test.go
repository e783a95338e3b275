package genesis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/state"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/internal/token"
	"github.com/eigerco/ore/pkg/db/pebble"
)

func newAccounts(t *testing.T) *store.Accounts {
	kv, err := pebble.NewKVStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close(), "failed to close db")
	})
	return store.NewAccounts(kv)
}

func TestInitialize(t *testing.T) {
	accounts := newAccounts(t)
	admin := address.Address{0xad}
	require.NoError(t, Initialize(accounts, Options{Admin: admin, Now: 1_700_000_000}))
	s := constants.Singletons()

	acct, err := accounts.GetAccount(s.Config.Address)
	require.NoError(t, err)
	assert.Equal(t, constants.ProgramID, acct.Owner)
	cfg, err := state.DecodeConfig(acct.Data)
	require.NoError(t, err)
	assert.Equal(t, admin, cfg.Admin)
	assert.Equal(t, constants.InitialBaseRewardRate, cfg.BaseRewardRate)
	assert.Equal(t, int64(1_700_000_000), cfg.LastResetAt)

	acct, err = accounts.GetAccount(s.Treasury.Address)
	require.NoError(t, err)
	treasury, err := state.DecodeTreasury(acct.Data)
	require.NoError(t, err)
	assert.Equal(t, s.Treasury.Bump, treasury.Bump)

	for i, b := range s.Buses {
		acct, err := accounts.GetAccount(b.Address)
		require.NoError(t, err)
		bus, err := state.DecodeBus(acct.Data)
		require.NoError(t, err)
		assert.Equal(t, uint64(i), bus.ID)
	}

	acct, err = accounts.GetAccount(s.Mint.Address)
	require.NoError(t, err)
	assert.Equal(t, constants.TokenProgramID, acct.Owner)
	mint, err := token.DecodeMint(acct.Data)
	require.NoError(t, err)
	assert.Equal(t, s.Treasury.Address, mint.MintAuthority)
	assert.Equal(t, constants.TokenDecimals, mint.Decimals)
	assert.Zero(t, mint.Supply)

	acct, err = accounts.GetAccount(s.TreasuryTokens.Address)
	require.NoError(t, err)
	vault, err := token.DecodeAccount(acct.Data)
	require.NoError(t, err)
	assert.Equal(t, s.Mint.Address, vault.Mint)
	assert.Equal(t, s.Treasury.Address, vault.Owner)

	acct, err = accounts.GetAccount(s.Metadata.Address)
	require.NoError(t, err)
	assert.Equal(t, constants.TokenMetadataProgramID, acct.Owner)
	md, err := DecodeMetadata(acct.Data)
	require.NoError(t, err)
	assert.Equal(t, constants.MetadataSymbol, md.Symbol)
	assert.Equal(t, constants.MetadataURI, md.URI)
}

func TestInitializeTwiceFails(t *testing.T) {
	accounts := newAccounts(t)
	require.NoError(t, Initialize(accounts, Options{}))
	require.ErrorIs(t, Initialize(accounts, Options{}), ErrAlreadyInitialized)
}

func TestMetadataRejectsLongFields(t *testing.T) {
	_, err := Metadata{Symbol: "TOOLONGSYMBOL"}.Encode()
	require.Error(t, err)
}

func TestOpenTokenAccount(t *testing.T) {
	accounts := newAccounts(t)
	require.NoError(t, Initialize(accounts, Options{}))
	owner := address.Address{0x0e}

	addr, err := OpenTokenAccount(accounts, owner)
	require.NoError(t, err)
	again, err := OpenTokenAccount(accounts, owner)
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	acct, err := accounts.GetAccount(addr)
	require.NoError(t, err)
	ta, err := token.DecodeAccount(acct.Data)
	require.NoError(t, err)
	assert.Equal(t, owner, ta.Owner)
	assert.Equal(t, constants.Singletons().Mint.Address, ta.Mint)
}
