package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/runtime"
)

var (
	tokenID   = address.Address{0x70}
	programID = address.Address{0x71}
)

type fixture struct {
	program  Program
	mint     *runtime.AccountInfo
	vault    *runtime.AccountInfo
	dest     *runtime.AccountInfo
	treasury *runtime.AccountInfo
	inv      runtime.Invoke
}

func newFixture(t *testing.T, vaultAmount uint64) fixture {
	seeds := [][]byte{[]byte("treasury")}
	treasuryKey, bump, err := address.FindProgramAddress(seeds, programID)
	require.NoError(t, err)

	mintKey := address.Address{0x01}
	return fixture{
		program: Program{ID: tokenID, MaxSupply: 1_000},
		mint: &runtime.AccountInfo{
			Key: mintKey, IsWritable: true, Owner: tokenID,
			Data: Mint{MintAuthority: treasuryKey, Supply: vaultAmount, Decimals: 11, IsInitialized: true}.Encode(),
		},
		vault: &runtime.AccountInfo{
			Key: address.Address{0x02}, IsWritable: true, Owner: tokenID,
			Data: Account{Mint: mintKey, Owner: treasuryKey, Amount: vaultAmount, IsInitialized: true}.Encode(),
		},
		dest: &runtime.AccountInfo{
			Key: address.Address{0x03}, IsWritable: true, Owner: tokenID,
			Data: Account{Mint: mintKey, Owner: address.Address{0x04}, IsInitialized: true}.Encode(),
		},
		treasury: &runtime.AccountInfo{Key: treasuryKey, Owner: programID},
		inv: runtime.Invoke{
			ProgramID: programID,
			Signers:   []address.SignerSeeds{address.NewSignerSeeds(bump, seeds...)},
		},
	}
}

func amountOf(t *testing.T, info *runtime.AccountInfo) uint64 {
	a, err := DecodeAccount(info.Data)
	require.NoError(t, err)
	return a.Amount
}

func supplyOf(t *testing.T, info *runtime.AccountInfo) uint64 {
	m, err := DecodeMint(info.Data)
	require.NoError(t, err)
	return m.Supply
}

func TestTransferWithProgramSigner(t *testing.T) {
	f := newFixture(t, 100)
	require.NoError(t, f.program.Transfer(f.inv, f.vault, f.dest, f.treasury, 40))
	assert.Equal(t, uint64(60), amountOf(t, f.vault))
	assert.Equal(t, uint64(40), amountOf(t, f.dest))
	assert.Equal(t, uint64(100), supplyOf(t, f.mint))
}

func TestTransferRequiresCapability(t *testing.T) {
	f := newFixture(t, 100)
	err := f.program.Transfer(runtime.Invoke{ProgramID: programID}, f.vault, f.dest, f.treasury, 40)
	require.ErrorIs(t, err, ErrMissingAuthority)

	// Seeds vouched by a different program do not count.
	other := f.inv
	other.ProgramID = address.Address{0x99}
	err = f.program.Transfer(other, f.vault, f.dest, f.treasury, 40)
	require.ErrorIs(t, err, ErrMissingAuthority)

	err = f.program.Transfer(f.inv, f.vault, f.dest, f.dest, 40)
	require.ErrorIs(t, err, ErrOwnerMismatch)
	assert.Equal(t, uint64(100), amountOf(t, f.vault))
}

func TestTransferInsufficientFunds(t *testing.T) {
	f := newFixture(t, 10)
	err := f.program.Transfer(f.inv, f.vault, f.dest, f.treasury, 11)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, uint64(10), amountOf(t, f.vault))
}

func TestTransferRequiresWritable(t *testing.T) {
	f := newFixture(t, 10)
	f.dest.IsWritable = false
	err := f.program.Transfer(f.inv, f.vault, f.dest, f.treasury, 1)
	require.ErrorIs(t, err, ErrNotWritable)
}

func TestTransferRejectsForeignAccounts(t *testing.T) {
	f := newFixture(t, 10)
	f.dest.Owner = programID
	err := f.program.Transfer(f.inv, f.vault, f.dest, f.treasury, 1)
	require.ErrorIs(t, err, ErrInvalidAccountOwner)

	f = newFixture(t, 10)
	f.dest.Data = Account{Mint: address.Address{0x55}, IsInitialized: true}.Encode()
	err = f.program.Transfer(f.inv, f.vault, f.dest, f.treasury, 1)
	require.ErrorIs(t, err, ErrMintMismatch)
}

func TestBurnReducesSupply(t *testing.T) {
	f := newFixture(t, 100)
	require.NoError(t, f.program.Burn(f.inv, f.vault, f.mint, f.treasury, 30))
	assert.Equal(t, uint64(70), amountOf(t, f.vault))
	assert.Equal(t, uint64(70), supplyOf(t, f.mint))

	err := f.program.Burn(f.inv, f.vault, f.mint, f.treasury, 71)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestMintToRespectsMaxSupply(t *testing.T) {
	f := newFixture(t, 0)
	require.NoError(t, f.program.MintTo(f.inv, f.mint, f.vault, f.treasury, 1_000))
	assert.Equal(t, uint64(1_000), supplyOf(t, f.mint))
	assert.Equal(t, uint64(1_000), amountOf(t, f.vault))

	err := f.program.MintTo(f.inv, f.mint, f.vault, f.treasury, 1)
	require.ErrorIs(t, err, ErrMaxSupplyExceeded)
	assert.Equal(t, uint64(1_000), supplyOf(t, f.mint))
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	_, err := DecodeMint(make([]byte, MintSize-1))
	assert.Error(t, err)
	_, err = DecodeAccount(make([]byte, AccountSize+1))
	assert.Error(t, err)
}
