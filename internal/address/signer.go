package address

// SignerSeeds is the capability a program hands to another service so that
// service may act on behalf of a program derived address. It carries the seeds
// and bump; it is only honoured if they re-derive the address in question
// under the invoking program's id.
type SignerSeeds struct {
	Seeds [][]byte
	Bump  uint8
}

// NewSignerSeeds copies seeds so later mutation by the caller has no effect.
func NewSignerSeeds(bump uint8, seeds ...[]byte) SignerSeeds {
	cp := make([][]byte, len(seeds))
	for i, s := range seeds {
		cp[i] = append([]byte(nil), s...)
	}
	return SignerSeeds{Seeds: cp, Bump: bump}
}

// Authorizes reports whether the seeds derive addr under programID.
func (s SignerSeeds) Authorizes(addr, programID Address) bool {
	return VerifyProgramAddress(addr, s.Seeds, s.Bump, programID) == nil
}
