package types

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

const NodeIDBytes = 32

// NodeID is the 32-byte identity of a peer, derived from its record key.
type NodeID [NodeIDBytes]byte

func ParseNodeIDHex(s string) (NodeID, error) {
	var id NodeID
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return id, err
	}
	if len(b) != NodeIDBytes {
		return id, fmt.Errorf("node id must be %d bytes, got %d", NodeIDBytes, len(b))
	}
	copy(id[:], b)
	return id, nil
}

func MustParseNodeIDHex(s string) NodeID {
	id, err := ParseNodeIDHex(s)
	if err != nil {
		panic(err)
	}
	return id
}

// NodeIDFromPubkey derives the node id as keccak256 of the public key,
// the discv5 id scheme.
func NodeIDFromPubkey(pub ed25519.PublicKey) NodeID {
	var id NodeID
	h := sha3.NewLegacyKeccak256()
	h.Write(pub)
	copy(id[:], h.Sum(nil))
	return id
}

func (id NodeID) Hex() string { return HexEncode(id[:]) }

func (id NodeID) String() string { return id.Hex() }

func (id NodeID) MarshalText() ([]byte, error) { return []byte(id.Hex()), nil }

func (id *NodeID) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeIDHex(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Xor returns the XOR metric between two ids.
func Xor(a, b NodeID) (out Distance) {
	for i := 0; i < NodeIDBytes; i++ {
		out[i] = a[i] ^ b[i]
	}
	return
}
