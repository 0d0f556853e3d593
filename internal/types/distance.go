package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Distance is a 256-bit unsigned XOR metric, stored big-endian.
// A node's Radius is a Distance.
type Distance [32]byte

// Radius is a node's advertised storage threshold.
type Radius = Distance

// MaxDistance covers the full keyspace.
var MaxDistance = func() Distance {
	var d Distance
	for i := range d {
		d[i] = 0xff
	}
	return d
}()

// DistanceFromLittleEndian decodes a wire custom_payload (SSZ U256,
// little-endian, at most 32 bytes) into a Distance.
func DistanceFromLittleEndian(payload []byte) Distance {
	var d Distance
	n := len(payload)
	if n > 32 {
		n = 32
	}
	for i := 0; i < n; i++ {
		d[31-i] = payload[i]
	}
	return d
}

// ToLittleEndian encodes d as a 32-byte little-endian custom_payload.
func (d Distance) ToLittleEndian() []byte {
	out := make([]byte, 32)
	for i := 0; i < 32; i++ {
		out[i] = d[31-i]
	}
	return out
}

func (d Distance) Cmp(other Distance) int {
	return bytes.Compare(d[:], other[:])
}

func (d Distance) IsZero() bool {
	return d == Distance{}
}

// Hex returns the minimal 0x quantity form (no leading zero digits,
// zero is "0x0").
func (d Distance) Hex() string {
	s := strings.TrimLeft(hex.EncodeToString(d[:]), "0")
	if s == "" {
		s = "0"
	}
	return "0x" + s
}

func (d Distance) String() string { return d.Hex() }

func (d Distance) MarshalText() ([]byte, error) { return []byte(d.Hex()), nil }

func (d *Distance) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.HasPrefix(s, "0x") {
		return fmt.Errorf("distance missing 0x prefix: %q", s)
	}
	s = s[2:]
	if s == "" || len(s) > 64 {
		return fmt.Errorf("invalid distance quantity: %q", string(text))
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	var out Distance
	copy(out[32-len(raw):], raw)
	*d = out
	return nil
}
