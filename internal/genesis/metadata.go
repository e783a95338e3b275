package genesis

import (
	"bytes"
	"fmt"

	"github.com/eigerco/ore/internal/address"
	"github.com/eigerco/ore/pkg/serialization/codec/layout"
)

// Field widths of the token metadata record. Shorter values are zero padded.
const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxURILength    = 200

	MetadataSize = 32 + 32 + MaxNameLength + MaxSymbolLength + MaxURILength
)

// Metadata describes the token to wallets and explorers.
type Metadata struct {
	Mint            address.Address
	UpdateAuthority address.Address
	Name            string
	Symbol          string
	URI             string
}

func padded(s string, width int, field string) ([]byte, error) {
	if len(s) > width {
		return nil, fmt.Errorf("metadata %s is %d bytes, max %d", field, len(s), width)
	}
	b := make([]byte, width)
	copy(b, s)
	return b, nil
}

func (m Metadata) Encode() ([]byte, error) {
	name, err := padded(m.Name, MaxNameLength, "name")
	if err != nil {
		return nil, err
	}
	symbol, err := padded(m.Symbol, MaxSymbolLength, "symbol")
	if err != nil {
		return nil, err
	}
	uri, err := padded(m.URI, MaxURILength, "uri")
	if err != nil {
		return nil, err
	}
	return layout.NewWriter(MetadataSize).
		Bytes32(m.Mint).
		Bytes32(m.UpdateAuthority).
		Bytes(name).
		Bytes(symbol).
		Bytes(uri).
		Result(), nil
}

func DecodeMetadata(data []byte) (Metadata, error) {
	r := layout.NewReader(data)
	m := Metadata{
		Mint:            r.Bytes32("mint"),
		UpdateAuthority: r.Bytes32("update_authority"),
		Name:            unpad(r.Bytes(MaxNameLength, "name")),
		Symbol:          unpad(r.Bytes(MaxSymbolLength, "symbol")),
		URI:             unpad(r.Bytes(MaxURILength, "uri")),
	}
	return m, r.Finish()
}

func unpad(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
