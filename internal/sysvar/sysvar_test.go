package sysvar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotHashesPushKeepsNewestFirst(t *testing.T) {
	var s SlotHashes
	s = s.Push(1, [32]byte{1})
	s = s.Push(2, [32]byte{2})

	head, err := s.Freshest()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), head.Slot)
	assert.Equal(t, [32]byte{2}, head.Hash)
	assert.Len(t, s, 2)
}

func TestSlotHashesBounded(t *testing.T) {
	var s SlotHashes
	for i := uint64(0); i < MaxSlotHashes+10; i++ {
		s = s.Push(i, [32]byte{byte(i)})
	}
	assert.Len(t, s, MaxSlotHashes)
	assert.Equal(t, uint64(MaxSlotHashes+9), s[0].Slot)
	assert.Equal(t, uint64(10), s[MaxSlotHashes-1].Slot)
}

func TestSlotHashesAccountData(t *testing.T) {
	s := SlotHashes{}.Push(5, [32]byte{5}).Push(6, [32]byte{6})
	data := s.Encode()
	require.Len(t, data, 8+2*SlotHashSize)

	decoded, err := DecodeSlotHashes(data)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)

	head, err := FreshestFromAccount(data)
	require.NoError(t, err)
	assert.Equal(t, SlotHash{Slot: 6, Hash: [32]byte{6}}, head)
	assert.Equal(t, data[8:8+SlotHashSize], head.Encode())
}

func TestEmptyBeacon(t *testing.T) {
	_, err := SlotHashes{}.Freshest()
	assert.ErrorIs(t, err, ErrEmptyBeacon)

	_, err = FreshestFromAccount(SlotHashes{}.Encode())
	assert.ErrorIs(t, err, ErrEmptyBeacon)

	_, err = FreshestFromAccount(nil)
	assert.Error(t, err)
}

func TestFixedClock(t *testing.T) {
	var c Clock = FixedClock(1234)
	assert.Equal(t, int64(1234), c.UnixTimestamp())
	assert.Positive(t, SystemClock{}.UnixTimestamp())
}
