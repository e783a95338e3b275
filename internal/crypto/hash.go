package crypto

import (
	"golang.org/x/crypto/blake2b"
	"lukechampine.com/blake3"
)

const HashSize = 32

type Hash [HashSize]byte

// HashData hashes data with BLAKE2b-256.
func HashData(data []byte) Hash {
	return blake2b.Sum256(data)
}

// Blake3 hashes the concatenation of parts with BLAKE3-256.
func Blake3(parts ...[]byte) Hash {
	h := blake3.New(HashSize, nil)
	for _, p := range parts {
		h.Write(p) //nolint:errcheck // hash writes never fail
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}
