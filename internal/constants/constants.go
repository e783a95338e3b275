// Package constants holds the emission economics, account seeds and well known
// program ids. These values affect ledger consensus; changing any of them is a
// protocol change.
package constants

// InitialBaseRewardRate is the reward rate to initialize the program with.
const InitialBaseRewardRate uint64 = 1_000

// InitialTolerance is the spam/liveness tolerance to initialize the program with.
const InitialTolerance int64 = 5

// MinDifficulty is the minimum difficulty required of all submitted hashes.
const MinDifficulty uint32 = 8

// TokenDecimals is the decimal precision of the token. There are 10^11
// indivisible units per token.
const TokenDecimals uint8 = 11

// OneToken is one whole token in indivisible units.
const OneToken uint64 = 100_000_000_000

const (
	OneMinute int64 = 60
	OneDay    int64 = 86_400
	// OneYear is in minutes.
	OneYear uint64 = 525_600
)

const (
	EpochMinutes  int64 = 1
	EpochDuration       = OneMinute * EpochMinutes
)

// MaxSupply is the hard cap on token supply (42 million tokens).
const MaxSupply = OneToken * 42_000_000

// TargetEpochRewards is the quantity of tokens to be mined per epoch.
const TargetEpochRewards = OneToken * uint64(EpochMinutes)

// MaxEpochRewards is the most that can be mined per epoch, which bounds
// inflation at five times the target.
const MaxEpochRewards = TargetEpochRewards * 5

// BusCount is the number of bus accounts that parallelize mining.
const BusCount = 8

// BusEpochRewards is what each bus may issue per epoch.
const BusEpochRewards = MaxEpochRewards / BusCount

// SmoothingFactor bounds the reward rate: it cannot change by more than this
// multiplicative factor from one epoch to the next.
const SmoothingFactor uint64 = 2

// MaxEpochRewards must split evenly across buses. A non zero remainder is an
// out of range constant index and fails the build.
var _ = [1]struct{}{}[MaxEpochRewards%BusCount]

// Account seeds.
var (
	SeedBus      = []byte("bus")
	SeedConfig   = []byte("config")
	SeedMetadata = []byte("metadata")
	SeedMint     = []byte("mint")
	SeedProof    = []byte("proof")
	SeedTreasury = []byte("treasury")
)

// MintNoise is mixed into the mint seeds.
var MintNoise = [16]byte{
	166, 199, 85, 221, 225, 119, 21, 185, 160, 82, 242, 237, 194, 84, 250, 252,
}

const (
	MetadataName   = "Ore"
	MetadataSymbol = "ORE"
	MetadataURI    = "https://ore.supply/metadata.json"
)
