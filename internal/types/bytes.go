package types

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexEncode formats b as lowercase hex with a 0x prefix.
// All binary payloads cross the RPC boundary in this form.
func HexEncode(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func HexDecode(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") {
		return nil, fmt.Errorf("hex string missing 0x prefix: %q", s)
	}
	return hex.DecodeString(s[2:])
}

// Bytes32 is a fixed 32-byte value (hashes, roots, content ids).
type Bytes32 [32]byte

func (b Bytes32) Hex() string { return HexEncode(b[:]) }

func (b Bytes32) MarshalText() ([]byte, error) { return []byte(b.Hex()), nil }

func (b *Bytes32) UnmarshalText(text []byte) error {
	raw, err := HexDecode(string(text))
	if err != nil {
		return err
	}
	if len(raw) != 32 {
		return fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(b[:], raw)
	return nil
}
