package runtime

import (
	"fmt"

	"github.com/eigerco/ore/internal/address"
)

// MaxAccountSize caps the data a single account may hold.
const MaxAccountSize = 10 * 1024 * 1024

// CreateAccount allocates space zeroed bytes for newAccount and assigns it to
// owner. The payer must have signed and the new account must either have
// signed or be vouched for by inv.
func CreateAccount(inv Invoke, payer, newAccount *AccountInfo, space int, owner address.Address) error {
	if !payer.IsSigner {
		return fmt.Errorf("%w: payer %s", ErrMissingRequiredSignature, payer.Key)
	}
	if !inv.Signed(newAccount) {
		return fmt.Errorf("%w: new account %s", ErrMissingRequiredSignature, newAccount.Key)
	}
	if !newAccount.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrAccountAlreadyInUse, newAccount.Key)
	}
	if space < 0 || space > MaxAccountSize {
		return fmt.Errorf("%w: %d", ErrInvalidAccountSize, space)
	}
	newAccount.Owner = owner
	newAccount.Data = make([]byte, space)
	return nil
}
