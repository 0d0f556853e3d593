package types

// Response records returned by the Beacon JSON-RPC endpoints. Field names
// follow the Portal JSON schema (camelCase, hex payloads).

// ContentInfo is the untraced content response.
type ContentInfo struct {
	Content     string `json:"content"`
	UtpTransfer bool   `json:"utpTransfer"`
}

// TraceContentInfo is ContentInfo plus the lookup trace.
type TraceContentInfo struct {
	Content     string     `json:"content"`
	UtpTransfer bool       `json:"utpTransfer"`
	Trace       QueryTrace `json:"trace"`
}

// Bitlist is a byte-backed bitlist, hex on the wire.
type Bitlist []byte

func (b Bitlist) MarshalText() ([]byte, error) { return []byte(HexEncode(b)), nil }

func (b *Bitlist) UnmarshalText(text []byte) error {
	raw, err := HexDecode(string(text))
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// Bit reports whether bit i is set.
func (b Bitlist) Bit(i int) bool {
	byteIdx := i / 8
	if byteIdx >= len(b) {
		return false
	}
	return b[byteIdx]&(1<<(i%8)) != 0
}

// AcceptInfo reports which offered keys the peer accepted.
type AcceptInfo struct {
	ContentKeys Bitlist `json:"contentKeys"`
}

type FindNodesInfo struct {
	Enrs []Enr `json:"enrs"`
}

type PongInfo struct {
	EnrSeq     uint64   `json:"enrSeq"`
	DataRadius Distance `json:"dataRadius"`
}

// PaginateInfo is one page of locally stored content keys.
type PaginateInfo struct {
	ContentKeys  []ContentKey `json:"contentKeys"`
	TotalEntries uint64       `json:"totalEntries"`
}
