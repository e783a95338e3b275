package testutils

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/internal/crypto"
)

func RandomHash(t *testing.T) crypto.Hash {
	var hash crypto.Hash
	_, err := rand.Read(hash[:])
	require.NoError(t, err)
	return hash
}

func RandomAddress(t *testing.T) address.Address {
	var a address.Address
	_, err := rand.Read(a[:])
	require.NoError(t, err)
	return a
}
