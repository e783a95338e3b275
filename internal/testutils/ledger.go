package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/genesis"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/state"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/internal/token"
	"github.com/eigerco/ore/pkg/db/pebble"
)

// GenesisTime is the clock reading a fresh Ledger starts at.
const GenesisTime int64 = 1_700_000_000

// Ledger is an initialized in-memory ledger with a beacon entry recorded.
// Programs are registered on Executor by the caller.
type Ledger struct {
	Executor *runtime.Executor
	Accounts *store.Accounts
	Clock    *Clock
	Token    token.Program
}

func NewLedger(t *testing.T) *Ledger {
	kv, err := pebble.NewKVStore()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, kv.Close(), "failed to close db")
	})

	accounts := store.NewAccounts(kv)
	require.NoError(t, genesis.Initialize(accounts, genesis.Options{Now: GenesisTime}))

	l := &Ledger{
		Executor: runtime.NewExecutor(accounts),
		Accounts: accounts,
		Clock:    NewClock(GenesisTime),
		Token:    token.Program{ID: constants.TokenProgramID, MaxSupply: constants.MaxSupply},
	}
	require.NoError(t, l.Executor.RecordSlotHash(1, RandomHash(t)))
	return l
}

func (l *Ledger) info(t *testing.T, addr address.Address, writable bool) *runtime.AccountInfo {
	acct, err := l.Accounts.GetAccount(addr)
	require.NoError(t, err)
	return &runtime.AccountInfo{Key: addr, IsWritable: writable, Owner: acct.Owner, Data: acct.Data}
}

// Proof reads the proof of authority.
func (l *Ledger) Proof(t *testing.T, authority address.Address) state.Proof {
	addr, _, err := address.FindProgramAddress(constants.ProofSeeds(authority), constants.ProgramID)
	require.NoError(t, err)
	acct, err := l.Accounts.GetAccount(addr)
	require.NoError(t, err)
	p, err := state.DecodeProof(acct.Data)
	require.NoError(t, err)
	return p
}

// Credit stands in for mining: it adds amount to authority's proof balance
// and mints the backing tokens into the treasury vault.
func (l *Ledger) Credit(t *testing.T, authority address.Address, amount uint64) {
	s := constants.Singletons()
	proofAddr, _, err := address.FindProgramAddress(constants.ProofSeeds(authority), constants.ProgramID)
	require.NoError(t, err)
	proof := l.info(t, proofAddr, true)
	p, err := state.DecodeProof(proof.Data)
	require.NoError(t, err)
	p.Balance += amount
	p.TotalRewards += amount
	proof.Data = p.Encode()

	mint := l.info(t, s.Mint.Address, true)
	vault := l.info(t, s.TreasuryTokens.Address, true)
	treasury := l.info(t, s.Treasury.Address, false)
	inv := runtime.Invoke{
		ProgramID: constants.ProgramID,
		Signers:   []address.SignerSeeds{constants.TreasurySigner()},
	}
	require.NoError(t, l.Token.MintTo(inv, mint, vault, treasury, amount))

	var writes []store.Write
	for _, a := range []*runtime.AccountInfo{proof, mint, vault} {
		writes = append(writes, store.Write{Address: a.Key, Account: store.Account{Owner: a.Owner, Data: a.Data}})
	}
	require.NoError(t, l.Accounts.Commit(writes))
}

// NewTokenAccount creates an empty token account of the mint owned by owner.
func (l *Ledger) NewTokenAccount(t *testing.T, owner address.Address) address.Address {
	addr := RandomAddress(t)
	acct := token.Account{Mint: constants.Singletons().Mint.Address, Owner: owner, IsInitialized: true}
	require.NoError(t, l.Accounts.PutAccount(addr, store.Account{Owner: constants.TokenProgramID, Data: acct.Encode()}))
	return addr
}

// TokenBalance reads the amount held by a token account.
func (l *Ledger) TokenBalance(t *testing.T, addr address.Address) uint64 {
	a, err := l.Token.LoadAccount(l.info(t, addr, false))
	require.NoError(t, err)
	return a.Amount
}

// Supply reads the mint's total supply.
func (l *Ledger) Supply(t *testing.T) uint64 {
	m, err := l.Token.LoadMint(l.info(t, constants.Singletons().Mint.Address, false))
	require.NoError(t, err)
	return m.Supply
}
