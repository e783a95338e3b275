package address

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProgramID = MustFromBase58("mineRHF5r6S7HyD9SppBfVMXMavDkJsxwGesEvxZr2A")

func randomAddress(t *testing.T) Address {
	var a Address
	_, err := rand.Read(a[:])
	require.NoError(t, err)
	return a
}

func TestBase58RoundTrip(t *testing.T) {
	a := randomAddress(t)
	parsed, err := FromBase58(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	_, err = FromBase58("abc")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	assert.Equal(t, "11111111111111111111111111111111", Zero.String())
	assert.True(t, Zero.IsZero())
}

func TestIsOnCurve(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	assert.True(t, Address(pub).IsOnCurve())

	pda, _, err := FindProgramAddress([][]byte{[]byte("treasury")}, testProgramID)
	require.NoError(t, err)
	assert.False(t, pda.IsOnCurve())
}

func TestFindProgramAddressDeterministic(t *testing.T) {
	seeds := [][]byte{[]byte("proof"), testProgramID[:]}
	a1, b1, err := FindProgramAddress(seeds, testProgramID)
	require.NoError(t, err)
	a2, b2, err := FindProgramAddress(seeds, testProgramID)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	require.NoError(t, VerifyProgramAddress(a1, seeds, b1, testProgramID))
}

func TestFindProgramAddressInjective(t *testing.T) {
	seen := make(map[Address]string)
	add := func(label string, seeds ...[]byte) {
		a, _, err := FindProgramAddress(seeds, testProgramID)
		require.NoError(t, err)
		prev, dup := seen[a]
		require.False(t, dup, "%s collides with %s", label, prev)
		seen[a] = label
	}

	for i := 0; i < 8; i++ {
		add(fmt.Sprintf("bus-%d", i), []byte("bus"), []byte{uint8(i)})
	}
	add("config", []byte("config"))
	add("treasury", []byte("treasury"))
	add("mint", []byte("mint"))
	for i := 0; i < 64; i++ {
		a := randomAddress(t)
		add("proof-"+a.String(), []byte("proof"), a[:])
	}
}

func TestVerifyProgramAddressRejectsWrongBump(t *testing.T) {
	authority := randomAddress(t)
	seeds := [][]byte{[]byte("proof"), authority[:]}
	pda, bump, err := FindProgramAddress(seeds, testProgramID)
	require.NoError(t, err)

	err = VerifyProgramAddress(pda, seeds, bump-1, testProgramID)
	assert.ErrorIs(t, err, ErrInvalidSeeds)

	other := randomAddress(t)
	err = VerifyProgramAddress(pda, [][]byte{[]byte("proof"), other[:]}, bump, testProgramID)
	assert.ErrorIs(t, err, ErrInvalidSeeds)

	err = VerifyProgramAddress(pda, seeds, bump, randomAddress(t))
	assert.ErrorIs(t, err, ErrInvalidSeeds)
}

func TestCreateProgramAddressLimits(t *testing.T) {
	_, err := CreateProgramAddress([][]byte{make([]byte, MaxSeedLength+1)}, testProgramID)
	assert.ErrorIs(t, err, ErrMaxSeedLengthExceeded)

	_, err = CreateProgramAddress(make([][]byte, MaxSeeds+1), testProgramID)
	assert.ErrorIs(t, err, ErrTooManySeeds)

	_, _, err = FindProgramAddress(make([][]byte, MaxSeeds), testProgramID)
	assert.ErrorIs(t, err, ErrTooManySeeds)
}

// The derivation must match the host chain's own rule, here checked against
// an independent SDK.
func TestDerivationMatchesSolanaSDK(t *testing.T) {
	programID := solana.PublicKey(testProgramID)
	for i := 0; i < 32; i++ {
		authority := randomAddress(t)
		seeds := [][]byte{[]byte("proof"), authority[:]}

		want, wantBump, err := solana.FindProgramAddress(seeds, programID)
		require.NoError(t, err)
		got, gotBump, err := FindProgramAddress(seeds, testProgramID)
		require.NoError(t, err)

		assert.Equal(t, [32]byte(want), [32]byte(got))
		assert.Equal(t, wantBump, gotBump)
	}
}

func TestSignerSeeds(t *testing.T) {
	pda, bump, err := FindProgramAddress([][]byte{[]byte("treasury")}, testProgramID)
	require.NoError(t, err)

	seed := []byte("treasury")
	s := NewSignerSeeds(bump, seed)
	seed[0] = 'x'
	assert.True(t, s.Authorizes(pda, testProgramID))
	assert.False(t, s.Authorizes(randomAddress(t), testProgramID))
	assert.False(t, NewSignerSeeds(bump+1, []byte("treasury")).Authorizes(pda, testProgramID))
}
