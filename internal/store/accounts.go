package store

import (
	"errors"
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/pkg/db"
	"github.com/eigerco/ore/pkg/log"
)

// Account is the stored form of a ledger account. An account with a zero
// owner and no data does not exist.
type Account struct {
	Owner address.Address
	Data  []byte
}

func (a Account) IsEmpty() bool {
	return a.Owner.IsZero() && len(a.Data) == 0
}

func (a Account) encode() []byte {
	b := make([]byte, address.Size+len(a.Data))
	copy(b, a.Owner[:])
	copy(b[address.Size:], a.Data)
	return b
}

func decodeAccount(b []byte) (Account, error) {
	if len(b) < address.Size {
		return Account{}, fmt.Errorf("account record too short: %d bytes", len(b))
	}
	a := Account{Owner: address.Address(b[:address.Size])}
	if len(b) > address.Size {
		a.Data = append([]byte(nil), b[address.Size:]...)
	}
	return a, nil
}

// Write is one account update committed as part of an atomic set.
type Write struct {
	Address address.Address
	Account Account
}

// Accounts stores ledger accounts keyed by address.
type Accounts struct {
	db.KVStore
}

// NewAccounts creates a new account store using KVStore
func NewAccounts(kv db.KVStore) *Accounts {
	return &Accounts{KVStore: kv}
}

// GetAccount returns the account at addr, or an empty account if none exists.
func (s *Accounts) GetAccount(addr address.Address) (Account, error) {
	b, err := s.Get(makeKey(prefixAccount, addr[:]))
	if errors.Is(err, db.ErrNotFound) {
		return Account{}, nil
	}
	if err != nil {
		return Account{}, fmt.Errorf("get account %s: %w", addr, err)
	}
	a, err := decodeAccount(b)
	if err != nil {
		return Account{}, fmt.Errorf("decode account %s: %w", addr, err)
	}
	return a, nil
}

// PutAccount stores a single account.
func (s *Accounts) PutAccount(addr address.Address, a Account) error {
	return s.Commit([]Write{{Address: addr, Account: a}})
}

// Commit writes every update in one batch: either all are stored or none.
// Writing an empty account removes it.
func (s *Accounts) Commit(writes []Write) error {
	batch := s.NewBatch()
	defer func() {
		if err := batch.Close(); err != nil {
			log.Store.Error().Err(err).Msg("close account batch")
		}
	}()

	for _, w := range writes {
		key := makeKey(prefixAccount, w.Address[:])
		if w.Account.IsEmpty() {
			if err := batch.Delete(key); err != nil {
				return fmt.Errorf("batch delete %s: %w", w.Address, err)
			}
			continue
		}
		if err := batch.Put(key, w.Account.encode()); err != nil {
			return fmt.Errorf("batch put %s: %w", w.Address, err)
		}
	}

	if err := batch.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// ForEachOwned calls fn for every account owned by owner, in address order.
// Returning an error from fn stops the scan and returns that error.
func (s *Accounts) ForEachOwned(owner address.Address, fn func(address.Address, Account) error) error {
	iter, err := s.NewIterator([]byte{prefixAccount}, []byte{prefixAccount + 1})
	if err != nil {
		return fmt.Errorf("create iterator: %w", err)
	}
	defer func() {
		if err := iter.Close(); err != nil {
			log.Store.Error().Err(err).Msg("close account iterator")
		}
	}()

	for iter.Next() {
		value, err := iter.Value()
		if err != nil {
			return fmt.Errorf("get iterator value: %w", err)
		}
		a, err := decodeAccount(value)
		if err != nil {
			return err
		}
		if a.Owner != owner {
			continue
		}
		key := iter.Key()
		if len(key) != 1+address.Size {
			return fmt.Errorf("malformed account key of %d bytes", len(key))
		}
		if err := fn(address.Address(key[1:]), a); err != nil {
			return err
		}
	}
	return nil
}
