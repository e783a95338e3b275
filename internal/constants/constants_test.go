package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/ore/internal/address"
)

func TestEconomics(t *testing.T) {
	assert.Equal(t, uint64(100_000_000_000), OneToken)
	assert.Equal(t, uint64(4_200_000_000_000_000_000), MaxSupply)
	assert.Equal(t, OneToken, TargetEpochRewards)
	assert.Equal(t, 5*OneToken, MaxEpochRewards)
	assert.Equal(t, MaxEpochRewards, BusEpochRewards*BusCount)
	assert.Equal(t, int64(60), EpochDuration)
	assert.Less(t, MaxEpochRewards, MaxSupply)
}

func TestSmoothRewardRate(t *testing.T) {
	tests := []struct {
		name       string
		prev, next uint64
		want       uint64
	}{
		{"unchanged", 1000, 1000, 1000},
		{"within bounds up", 1000, 1900, 1900},
		{"within bounds down", 1000, 600, 600},
		{"clamped up", 1000, 5000, 2000},
		{"clamped down", 1000, 100, 500},
		{"zero previous", 0, 100, 0},
		{"saturating upper bound", 1 << 63, ^uint64(0), ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SmoothRewardRate(tt.prev, tt.next))
		})
	}
}

func TestSingletonsMatchRederivation(t *testing.T) {
	require.NoError(t, CheckAddresses())

	s := Singletons()
	seen := map[address.Address]bool{}
	all := []Derived{s.Config, s.Metadata, s.Mint, s.Treasury, s.TreasuryTokens}
	all = append(all, s.Buses[:]...)
	for _, d := range all {
		assert.False(t, d.Address.IsOnCurve())
		assert.False(t, seen[d.Address], "duplicate singleton %s", d.Address)
		seen[d.Address] = true
	}
}

func TestSingletonsComputableByExternalCallers(t *testing.T) {
	s := Singletons()

	treasury, bump, err := address.FindProgramAddress([][]byte{[]byte("treasury")}, ProgramID)
	require.NoError(t, err)
	assert.Equal(t, treasury, s.Treasury.Address)
	assert.Equal(t, bump, s.Treasury.Bump)

	bus3, _, err := address.FindProgramAddress([][]byte{[]byte("bus"), {3}}, ProgramID)
	require.NoError(t, err)
	assert.Equal(t, bus3, s.Buses[3].Address)

	metadata, _, err := address.FindProgramAddress(
		[][]byte{[]byte("metadata"), TokenMetadataProgramID[:], s.Mint.Address[:]},
		TokenMetadataProgramID,
	)
	require.NoError(t, err)
	assert.Equal(t, metadata, s.Metadata.Address)

	vault, _, err := address.FindProgramAddress(
		[][]byte{s.Treasury.Address[:], TokenProgramID[:], s.Mint.Address[:]},
		AssociatedTokenProgramID,
	)
	require.NoError(t, err)
	assert.Equal(t, vault, s.TreasuryTokens.Address)
}

func TestTreasurySigner(t *testing.T) {
	s := Singletons()
	assert.True(t, TreasurySigner().Authorizes(s.Treasury.Address, ProgramID))
	assert.False(t, TreasurySigner().Authorizes(s.Mint.Address, ProgramID))
}
