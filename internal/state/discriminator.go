package state

import "fmt"

// Discriminator is the first byte of every program owned account and tells
// readers which record layout follows.
type Discriminator uint8

const (
	DiscriminatorBus      Discriminator = 100
	DiscriminatorProof    Discriminator = 101
	DiscriminatorTreasury Discriminator = 102
	DiscriminatorConfig   Discriminator = 103
)

func (d Discriminator) String() string {
	switch d {
	case DiscriminatorBus:
		return "bus"
	case DiscriminatorProof:
		return "proof"
	case DiscriminatorTreasury:
		return "treasury"
	case DiscriminatorConfig:
		return "config"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(d))
	}
}

// DiscriminatorOf returns the tag of data, or false if data is empty.
func DiscriminatorOf(data []byte) (Discriminator, bool) {
	if len(data) == 0 {
		return 0, false
	}
	return Discriminator(data[0]), true
}

func checkHeader(data []byte, want Discriminator, size int) error {
	if len(data) != size {
		return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidLength, want, size, len(data))
	}
	if got := Discriminator(data[0]); got != want {
		return fmt.Errorf("%w: expected %s, got %s", ErrWrongDiscriminator, want, got)
	}
	return nil
}
