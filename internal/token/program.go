// Package token is the token movement service: it holds balances in token
// accounts and moves, issues and destroys them on behalf of an authority.
// Program derived authorities are accepted through a runtime.Invoke carrying
// their signer seeds; there is no ambient signing context.
package token

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/runtime"
	"github.com/eigerco/ore/internal/safemath"
)

type Program struct {
	// ID is the token program's own address; it owns every mint and account.
	ID address.Address
	// MaxSupply caps MintTo. Zero means no cap.
	MaxSupply uint64
}

// LoadMint decodes a mint owned by the program.
func (p Program) LoadMint(info *runtime.AccountInfo) (Mint, error) {
	if info.Owner != p.ID {
		return Mint{}, fmt.Errorf("%w: mint %s", ErrInvalidAccountOwner, info.Key)
	}
	m, err := DecodeMint(info.Data)
	if err != nil {
		return Mint{}, err
	}
	if !m.IsInitialized {
		return Mint{}, fmt.Errorf("%w: mint %s", ErrUninitialized, info.Key)
	}
	return m, nil
}

// LoadAccount decodes a token account owned by the program.
func (p Program) LoadAccount(info *runtime.AccountInfo) (Account, error) {
	if info.Owner != p.ID {
		return Account{}, fmt.Errorf("%w: account %s", ErrInvalidAccountOwner, info.Key)
	}
	a, err := DecodeAccount(info.Data)
	if err != nil {
		return Account{}, err
	}
	if !a.IsInitialized {
		return Account{}, fmt.Errorf("%w: account %s", ErrUninitialized, info.Key)
	}
	return a, nil
}

func requireWritable(infos ...*runtime.AccountInfo) error {
	for _, i := range infos {
		if !i.IsWritable {
			return fmt.Errorf("%w: %s", ErrNotWritable, i.Key)
		}
	}
	return nil
}

// Transfer moves amount from source to destination. authority must own source
// and must have signed, or be vouched for by inv.
func (p Program) Transfer(inv runtime.Invoke, source, destination, authority *runtime.AccountInfo, amount uint64) error {
	if err := requireWritable(source, destination); err != nil {
		return err
	}
	src, err := p.LoadAccount(source)
	if err != nil {
		return err
	}
	dst, err := p.LoadAccount(destination)
	if err != nil {
		return err
	}
	if src.Mint != dst.Mint {
		return fmt.Errorf("%w: %s and %s", ErrMintMismatch, source.Key, destination.Key)
	}
	if err := p.checkAuthority(inv, src.Owner, authority); err != nil {
		return err
	}
	if source.Key == destination.Key {
		if src.Amount < amount {
			return ErrInsufficientFunds
		}
		return nil
	}

	newSrc, ok := safemath.Sub64(src.Amount, amount)
	if !ok {
		return fmt.Errorf("%w: %s holds %d, needs %d", ErrInsufficientFunds, source.Key, src.Amount, amount)
	}
	newDst, ok := safemath.Add64(dst.Amount, amount)
	if !ok {
		return ErrOverflow
	}
	src.Amount, dst.Amount = newSrc, newDst
	source.Data = src.Encode()
	destination.Data = dst.Encode()
	return nil
}

// Burn destroys amount from account, reducing the mint's supply.
func (p Program) Burn(inv runtime.Invoke, account, mint, authority *runtime.AccountInfo, amount uint64) error {
	if err := requireWritable(account, mint); err != nil {
		return err
	}
	acct, err := p.LoadAccount(account)
	if err != nil {
		return err
	}
	m, err := p.LoadMint(mint)
	if err != nil {
		return err
	}
	if acct.Mint != mint.Key {
		return fmt.Errorf("%w: %s", ErrMintMismatch, account.Key)
	}
	if err := p.checkAuthority(inv, acct.Owner, authority); err != nil {
		return err
	}

	newAmount, ok := safemath.Sub64(acct.Amount, amount)
	if !ok {
		return fmt.Errorf("%w: %s holds %d, burning %d", ErrInsufficientFunds, account.Key, acct.Amount, amount)
	}
	newSupply, ok := safemath.Sub64(m.Supply, amount)
	if !ok {
		return ErrOverflow
	}
	acct.Amount, m.Supply = newAmount, newSupply
	account.Data = acct.Encode()
	mint.Data = m.Encode()
	return nil
}

// MintTo issues amount new tokens into destination.
func (p Program) MintTo(inv runtime.Invoke, mint, destination, authority *runtime.AccountInfo, amount uint64) error {
	if err := requireWritable(mint, destination); err != nil {
		return err
	}
	m, err := p.LoadMint(mint)
	if err != nil {
		return err
	}
	dst, err := p.LoadAccount(destination)
	if err != nil {
		return err
	}
	if dst.Mint != mint.Key {
		return fmt.Errorf("%w: %s", ErrMintMismatch, destination.Key)
	}
	if err := p.checkAuthority(inv, m.MintAuthority, authority); err != nil {
		return err
	}

	newSupply, ok := safemath.Add64(m.Supply, amount)
	if !ok {
		return ErrOverflow
	}
	if p.MaxSupply != 0 && newSupply > p.MaxSupply {
		return fmt.Errorf("%w: %d > %d", ErrMaxSupplyExceeded, newSupply, p.MaxSupply)
	}
	newAmount, ok := safemath.Add64(dst.Amount, amount)
	if !ok {
		return ErrOverflow
	}
	m.Supply, dst.Amount = newSupply, newAmount
	mint.Data = m.Encode()
	destination.Data = dst.Encode()
	return nil
}

func (p Program) checkAuthority(inv runtime.Invoke, want address.Address, authority *runtime.AccountInfo) error {
	if authority.Key != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrOwnerMismatch, want, authority.Key)
	}
	if !inv.Signed(authority) {
		return fmt.Errorf("%w: %s", ErrMissingAuthority, authority.Key)
	}
	return nil
}
