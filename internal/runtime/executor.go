package runtime

import (
	"context"
	"fmt"
	"slices"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/crypto"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/pkg/log"
)

// Handler is a program's entrypoint.
type Handler interface {
	Process(programID address.Address, accounts []*AccountInfo, data []byte) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(programID address.Address, accounts []*AccountInfo, data []byte) error

func (f HandlerFunc) Process(programID address.Address, accounts []*AccountInfo, data []byte) error {
	return f(programID, accounts, data)
}

// Receipt describes a committed instruction.
type Receipt struct {
	ProgramID address.Address
	// Written lists the accounts the instruction changed, in instruction order.
	Written []address.Address
	// Digest commits to the post state of every written account.
	Digest crypto.Hash
}

// Executor runs instructions one at a time per account: instructions that
// write a common account are serialized, others run in parallel.
type Executor struct {
	accounts *store.Accounts
	programs map[address.Address]Handler
	locks    *accountLocks
}

func NewExecutor(accounts *store.Accounts) *Executor {
	return &Executor{
		accounts: accounts,
		programs: make(map[address.Address]Handler),
		locks:    newAccountLocks(),
	}
}

// Register makes a program callable. It must not be called concurrently with
// Execute.
func (e *Executor) Register(programID address.Address, h Handler) {
	e.programs[programID] = h
}

// Accounts exposes the underlying store for reads.
func (e *Executor) Accounts() *store.Accounts {
	return e.accounts
}

// Execute runs ix. On any error no account is changed.
func (e *Executor) Execute(ctx context.Context, ix Instruction) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	h, ok := e.programs[ix.ProgramID]
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %s", ErrUnknownProgram, ix.ProgramID)
	}

	locked := writableKeys(ix.Accounts)
	e.locks.acquire(locked)
	defer e.locks.release(locked)

	infos, unique, err := e.load(ix.Accounts)
	if err != nil {
		return Receipt{}, err
	}
	originals := make([]AccountInfo, len(unique))
	for i, a := range unique {
		originals[i] = a.clone()
	}

	if err := h.Process(ix.ProgramID, infos, ix.Data); err != nil {
		log.Ledger.Debug().Err(err).Stringer("program", ix.ProgramID).Msg("instruction failed")
		return Receipt{}, err
	}

	var writes []store.Write
	receipt := Receipt{ProgramID: ix.ProgramID}
	var digestInput []byte
	for i, a := range unique {
		if !a.changedFrom(originals[i]) {
			continue
		}
		if !a.IsWritable {
			return Receipt{}, fmt.Errorf("%w: %s", ErrReadonlyDataModified, a.Key)
		}
		writes = append(writes, store.Write{
			Address: a.Key,
			Account: store.Account{Owner: a.Owner, Data: a.Data},
		})
		receipt.Written = append(receipt.Written, a.Key)
		digestInput = append(digestInput, a.Key[:]...)
		digestInput = append(digestInput, a.Owner[:]...)
		digestInput = append(digestInput, a.Data...)
	}
	if len(writes) > 0 {
		if err := e.accounts.Commit(writes); err != nil {
			return Receipt{}, fmt.Errorf("commit instruction: %w", err)
		}
	}
	receipt.Digest = crypto.HashData(digestInput)

	log.Ledger.Debug().
		Stringer("program", ix.ProgramID).
		Int("written", len(receipt.Written)).
		Hex("digest", receipt.Digest[:]).
		Msg("instruction committed")
	return receipt, nil
}

// load builds one AccountInfo per distinct address; repeated metas share it.
func (e *Executor) load(metas []AccountMeta) ([]*AccountInfo, []*AccountInfo, error) {
	byKey := make(map[address.Address]*AccountInfo, len(metas))
	infos := make([]*AccountInfo, len(metas))
	var unique []*AccountInfo
	for i, m := range metas {
		if a, ok := byKey[m.Address]; ok {
			a.IsSigner = a.IsSigner || m.IsSigner
			a.IsWritable = a.IsWritable || m.IsWritable
			infos[i] = a
			continue
		}
		acct, err := e.accounts.GetAccount(m.Address)
		if err != nil {
			return nil, nil, fmt.Errorf("load account %s: %w", m.Address, err)
		}
		a := &AccountInfo{
			Key:        m.Address,
			IsSigner:   m.IsSigner,
			IsWritable: m.IsWritable,
			Owner:      acct.Owner,
			Data:       acct.Data,
		}
		byKey[m.Address] = a
		infos[i] = a
		unique = append(unique, a)
	}
	return infos, unique, nil
}

func writableKeys(metas []AccountMeta) []address.Address {
	var keys []address.Address
	for _, m := range metas {
		if m.IsWritable && !slices.Contains(keys, m.Address) {
			keys = append(keys, m.Address)
		}
	}
	return keys
}
