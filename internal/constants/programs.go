package constants

import "github.com/eigerco/ore/internal/address"

var (
	ProgramID                = address.MustFromBase58("mineRHF5r6S7HyD9SppBfVMXMavDkJsxwGesEvxZr2A")
	SystemProgramID          = address.MustFromBase58("11111111111111111111111111111111")
	TokenProgramID           = address.MustFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	AssociatedTokenProgramID = address.MustFromBase58("ATokenGPvbdGVxr1b2hvZbsiqW5xWH25efTNsLJA8knL")
	TokenMetadataProgramID   = address.MustFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
	SlotHashesSysvarID       = address.MustFromBase58("SysvarS1otHashes111111111111111111111111111")
	SysvarOwnerID            = address.MustFromBase58("Sysvar1111111111111111111111111111111111111")
)
