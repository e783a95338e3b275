package token

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/pkg/serialization/codec/layout"
)

const (
	MintSize    = 32 + 8 + 1 + 1
	AccountSize = 32 + 32 + 8 + 1
)

// Mint describes a token: its supply, precision and who may issue more.
type Mint struct {
	MintAuthority address.Address
	Supply        uint64
	Decimals      uint8
	IsInitialized bool
}

func (m Mint) Encode() []byte {
	return layout.NewWriter(MintSize).
		Bytes32(m.MintAuthority).
		Uint64(m.Supply).
		Uint8(m.Decimals).
		Bool(m.IsInitialized).
		Result()
}

func DecodeMint(data []byte) (Mint, error) {
	if len(data) != MintSize {
		return Mint{}, fmt.Errorf("mint data is %d bytes, want %d", len(data), MintSize)
	}
	r := layout.NewReader(data)
	m := Mint{
		MintAuthority: r.Bytes32("mint_authority"),
		Supply:        r.Uint64("supply"),
		Decimals:      r.Uint8("decimals"),
		IsInitialized: r.Bool("is_initialized"),
	}
	return m, r.Finish()
}

// Account holds a balance of one mint on behalf of an owner.
type Account struct {
	Mint          address.Address
	Owner         address.Address
	Amount        uint64
	IsInitialized bool
}

func (a Account) Encode() []byte {
	return layout.NewWriter(AccountSize).
		Bytes32(a.Mint).
		Bytes32(a.Owner).
		Uint64(a.Amount).
		Bool(a.IsInitialized).
		Result()
}

func DecodeAccount(data []byte) (Account, error) {
	if len(data) != AccountSize {
		return Account{}, fmt.Errorf("token account data is %d bytes, want %d", len(data), AccountSize)
	}
	r := layout.NewReader(data)
	a := Account{
		Mint:          r.Bytes32("mint"),
		Owner:         r.Bytes32("owner"),
		Amount:        r.Uint64("amount"),
		IsInitialized: r.Bool("is_initialized"),
	}
	return a, r.Finish()
}
