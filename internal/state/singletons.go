package state

import (
	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/pkg/serialization/codec/layout"
)

const (
	TreasurySize = 1 + 1 + 8
	BusSize      = 1 + 8*4
	ConfigSize   = 1 + 32 + 8 + 8 + 8 + 8
)

// Treasury is the program signer for the token vault.
type Treasury struct {
	Bump                uint8
	TotalClaimedRewards uint64
}

func (t Treasury) Encode() []byte {
	return layout.NewWriter(TreasurySize).
		Uint8(uint8(DiscriminatorTreasury)).
		Uint8(t.Bump).
		Uint64(t.TotalClaimedRewards).
		Result()
}

func DecodeTreasury(data []byte) (Treasury, error) {
	if err := checkHeader(data, DiscriminatorTreasury, TreasurySize); err != nil {
		return Treasury{}, err
	}
	r := layout.NewReader(data[1:])
	t := Treasury{
		Bump:                r.Uint8("bump"),
		TotalClaimedRewards: r.Uint64("total_claimed_rewards"),
	}
	return t, r.Finish()
}

// Bus tracks one slice of the per epoch reward budget. Resetting and
// rebalancing buses happens outside this module.
type Bus struct {
	ID                 uint64
	Rewards            uint64
	TheoreticalRewards uint64
	TopBalance         uint64
}

func (b Bus) Encode() []byte {
	return layout.NewWriter(BusSize).
		Uint8(uint8(DiscriminatorBus)).
		Uint64(b.ID).
		Uint64(b.Rewards).
		Uint64(b.TheoreticalRewards).
		Uint64(b.TopBalance).
		Result()
}

func DecodeBus(data []byte) (Bus, error) {
	if err := checkHeader(data, DiscriminatorBus, BusSize); err != nil {
		return Bus{}, err
	}
	r := layout.NewReader(data[1:])
	b := Bus{
		ID:                 r.Uint64("id"),
		Rewards:            r.Uint64("rewards"),
		TheoreticalRewards: r.Uint64("theoretical_rewards"),
		TopBalance:         r.Uint64("top_balance"),
	}
	return b, r.Finish()
}

// Config holds the mutable protocol parameters.
type Config struct {
	Admin          address.Address
	BaseRewardRate uint64
	LastResetAt    int64
	MinDifficulty  uint64
	Tolerance      int64
}

func (c Config) Encode() []byte {
	return layout.NewWriter(ConfigSize).
		Uint8(uint8(DiscriminatorConfig)).
		Bytes32(c.Admin).
		Uint64(c.BaseRewardRate).
		Int64(c.LastResetAt).
		Uint64(c.MinDifficulty).
		Int64(c.Tolerance).
		Result()
}

func DecodeConfig(data []byte) (Config, error) {
	if err := checkHeader(data, DiscriminatorConfig, ConfigSize); err != nil {
		return Config{}, err
	}
	r := layout.NewReader(data[1:])
	c := Config{
		Admin:          r.Bytes32("admin"),
		BaseRewardRate: r.Uint64("base_reward_rate"),
		LastResetAt:    r.Int64("last_reset_at"),
		MinDifficulty:  r.Uint64("min_difficulty"),
		Tolerance:      r.Int64("tolerance"),
	}
	return c, r.Finish()
}
