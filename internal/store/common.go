package store

// Key prefixes. Every record key is a prefix byte followed by an address.
const (
	prefixAccount byte = iota + 1
)

func makeKey(prefix byte, addr []byte) []byte {
	key := make([]byte, 1+len(addr))
	key[0] = prefix
	copy(key[1:], addr)
	return key
}
