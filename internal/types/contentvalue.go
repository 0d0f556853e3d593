package types

// ContentValue is an encodable Beacon content payload. The dispatcher never
// looks inside; it only needs the wire bytes.
type ContentValue interface {
	Encode() []byte
}

// RawContentValue carries already-encoded content bytes.
type RawContentValue []byte

func (v RawContentValue) Encode() []byte {
	return append([]byte(nil), v...)
}

func (v RawContentValue) Hex() string { return HexEncode(v) }

func (v RawContentValue) MarshalText() ([]byte, error) { return []byte(v.Hex()), nil }

func (v *RawContentValue) UnmarshalText(text []byte) error {
	raw, err := HexDecode(string(text))
	if err != nil {
		return err
	}
	*v = raw
	return nil
}
