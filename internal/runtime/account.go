// Package runtime models the host ledger: accounts handed to a program by
// reference, system account creation, and atomic, account-locked execution of
// instructions against the account store.
package runtime

import (
	"bytes"

	"github.com/eigerco/ore/internal/address"
)

// AccountMeta names an account an instruction touches.
type AccountMeta struct {
	Address    address.Address
	IsSigner   bool
	IsWritable bool
}

// Instruction is a single call into a program.
type Instruction struct {
	ProgramID address.Address
	Accounts  []AccountMeta
	Data      []byte
}

// AccountInfo is the view of an account a program works on. Changes are kept
// only if the instruction succeeds, and only for writable accounts.
type AccountInfo struct {
	Key        address.Address
	IsSigner   bool
	IsWritable bool
	Owner      address.Address
	Data       []byte
}

// IsEmpty reports whether the account has never been created.
func (a *AccountInfo) IsEmpty() bool {
	return a.Owner.IsZero() && len(a.Data) == 0
}

func (a *AccountInfo) clone() AccountInfo {
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return c
}

func (a *AccountInfo) changedFrom(orig AccountInfo) bool {
	return a.Owner != orig.Owner || !bytes.Equal(a.Data, orig.Data)
}

// Invoke identifies the calling program and the program derived addresses it
// vouches for. Services that move funds or create accounts accept it in place
// of a signature for those addresses.
type Invoke struct {
	ProgramID address.Address
	Signers   []address.SignerSeeds
}

// Signed reports whether acct signed the transaction or is vouched for by
// the invoking program.
func (i Invoke) Signed(acct *AccountInfo) bool {
	if acct.IsSigner {
		return true
	}
	for _, s := range i.Signers {
		if s.Authorizes(acct.Key, i.ProgramID) {
			return true
		}
	}
	return false
}
