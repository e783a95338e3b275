package runtime

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/constants"
	"github.com/eigerco/ore/internal/store"
	"github.com/eigerco/ore/internal/sysvar"
)

// RecordSlotHash advances the randomness beacon with a new slot entry.
func (e *Executor) RecordSlotHash(slot uint64, hash [32]byte) error {
	keys := []address.Address{constants.SlotHashesSysvarID}
	e.locks.acquire(keys)
	defer e.locks.release(keys)

	acct, err := e.accounts.GetAccount(constants.SlotHashesSysvarID)
	if err != nil {
		return err
	}
	var entries sysvar.SlotHashes
	if !acct.IsEmpty() {
		if entries, err = sysvar.DecodeSlotHashes(acct.Data); err != nil {
			return fmt.Errorf("decode slot hashes: %w", err)
		}
	}
	if head, err := entries.Freshest(); err == nil && slot <= head.Slot {
		return fmt.Errorf("slot %d is not after %d", slot, head.Slot)
	}
	entries = entries.Push(slot, hash)
	return e.accounts.PutAccount(constants.SlotHashesSysvarID, store.Account{
		Owner: constants.SysvarOwnerID,
		Data:  entries.Encode(),
	})
}
