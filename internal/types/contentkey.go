package types

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Beacon content key selectors.
const (
	SelectorLightClientBootstrap        byte = 0x10
	SelectorLightClientUpdatesByRange   byte = 0x11
	SelectorLightClientFinalityUpdate   byte = 0x12
	SelectorLightClientOptimisticUpdate byte = 0x13
	SelectorHistoricalSummaries         byte = 0x14
)

// ContentKey identifies one Beacon content item: a selector byte followed
// by the selector-specific payload. The content id, sha256 of the full
// encoding, is the DHT routing target for the item.
type ContentKey struct {
	selector byte
	payload  []byte
}

func NewLightClientBootstrapKey(blockHash Bytes32) ContentKey {
	return ContentKey{selector: SelectorLightClientBootstrap, payload: append([]byte(nil), blockHash[:]...)}
}

func NewLightClientUpdatesByRangeKey(startPeriod, count uint64) ContentKey {
	p := make([]byte, 16)
	binary.LittleEndian.PutUint64(p[:8], startPeriod)
	binary.LittleEndian.PutUint64(p[8:], count)
	return ContentKey{selector: SelectorLightClientUpdatesByRange, payload: p}
}

func NewLightClientFinalityUpdateKey(finalizedSlot uint64) ContentKey {
	return ContentKey{selector: SelectorLightClientFinalityUpdate, payload: u64le(finalizedSlot)}
}

func NewLightClientOptimisticUpdateKey(signatureSlot uint64) ContentKey {
	return ContentKey{selector: SelectorLightClientOptimisticUpdate, payload: u64le(signatureSlot)}
}

func NewHistoricalSummariesKey(epoch uint64) ContentKey {
	return ContentKey{selector: SelectorHistoricalSummaries, payload: u64le(epoch)}
}

func u64le(v uint64) []byte {
	p := make([]byte, 8)
	binary.LittleEndian.PutUint64(p, v)
	return p
}

func DecodeContentKey(raw []byte) (ContentKey, error) {
	if len(raw) == 0 {
		return ContentKey{}, fmt.Errorf("empty content key")
	}
	switch raw[0] {
	case SelectorLightClientBootstrap,
		SelectorLightClientUpdatesByRange,
		SelectorLightClientFinalityUpdate,
		SelectorLightClientOptimisticUpdate,
		SelectorHistoricalSummaries:
	default:
		return ContentKey{}, fmt.Errorf("unknown content key selector: 0x%02x", raw[0])
	}
	return ContentKey{selector: raw[0], payload: append([]byte(nil), raw[1:]...)}, nil
}

func (k ContentKey) Selector() byte { return k.selector }

func (k ContentKey) Encode() []byte {
	out := make([]byte, 0, 1+len(k.payload))
	out = append(out, k.selector)
	return append(out, k.payload...)
}

// ContentID is the deterministic 32-byte routing target for the key.
func (k ContentKey) ContentID() Bytes32 {
	return sha256.Sum256(k.Encode())
}

func (k ContentKey) Hex() string { return HexEncode(k.Encode()) }

func (k ContentKey) String() string { return k.Hex() }

func (k ContentKey) MarshalText() ([]byte, error) { return []byte(k.Hex()), nil }

func (k *ContentKey) UnmarshalText(text []byte) error {
	raw, err := HexDecode(string(text))
	if err != nil {
		return err
	}
	parsed, err := DecodeContentKey(raw)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
