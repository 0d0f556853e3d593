package types

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

const enrPrefix = "enr:"

var ErrBadEnrSignature = errors.New("enr signature does not verify")

// Enr is a signed node record: identity key, transport endpoints and a
// sequence number bumped on every update. The canonical encoding is CBOR
// over the signed content, carried in text form as enr:<base64url>.
type Enr struct {
	Seq       uint64 `cbor:"1,keyasint"`
	PubKey    []byte `cbor:"2,keyasint"`
	IP        string `cbor:"3,keyasint,omitempty"`
	UDP       uint16 `cbor:"4,keyasint,omitempty"`
	TCP       uint16 `cbor:"5,keyasint,omitempty"`
	Signature []byte `cbor:"6,keyasint"`
}

// signedContent is the portion of the record covered by the signature.
type signedContent struct {
	Seq    uint64 `cbor:"1,keyasint"`
	PubKey []byte `cbor:"2,keyasint"`
	IP     string `cbor:"3,keyasint,omitempty"`
	UDP    uint16 `cbor:"4,keyasint,omitempty"`
	TCP    uint16 `cbor:"5,keyasint,omitempty"`
}

func (e Enr) content() signedContent {
	return signedContent{Seq: e.Seq, PubKey: e.PubKey, IP: e.IP, UDP: e.UDP, TCP: e.TCP}
}

// SignEnr builds a signed record for the given key and endpoints.
func SignEnr(priv ed25519.PrivateKey, seq uint64, ip string, udp, tcp uint16) (Enr, error) {
	e := Enr{
		Seq:    seq,
		PubKey: append([]byte(nil), priv.Public().(ed25519.PublicKey)...),
		IP:     ip,
		UDP:    udp,
		TCP:    tcp,
	}
	payload, err := cbor.Marshal(e.content())
	if err != nil {
		return Enr{}, err
	}
	e.Signature = ed25519.Sign(priv, payload)
	return e, nil
}

func (e Enr) Verify() error {
	if len(e.PubKey) != ed25519.PublicKeySize {
		return fmt.Errorf("enr pubkey must be %d bytes, got %d", ed25519.PublicKeySize, len(e.PubKey))
	}
	payload, err := cbor.Marshal(e.content())
	if err != nil {
		return err
	}
	if !ed25519.Verify(ed25519.PublicKey(e.PubKey), payload, e.Signature) {
		return ErrBadEnrSignature
	}
	return nil
}

func (e Enr) NodeID() NodeID {
	return NodeIDFromPubkey(ed25519.PublicKey(e.PubKey))
}

func (e Enr) Encode() ([]byte, error) {
	return cbor.Marshal(e)
}

func DecodeEnr(raw []byte) (Enr, error) {
	var e Enr
	if err := cbor.Unmarshal(raw, &e); err != nil {
		return Enr{}, fmt.Errorf("enr decode: %w", err)
	}
	return e, nil
}

func (e Enr) String() string {
	raw, err := e.Encode()
	if err != nil {
		return enrPrefix + "invalid"
	}
	return enrPrefix + base64.RawURLEncoding.EncodeToString(raw)
}

func ParseEnr(s string) (Enr, error) {
	if !strings.HasPrefix(s, enrPrefix) {
		return Enr{}, fmt.Errorf("enr text missing %q prefix: %q", enrPrefix, s)
	}
	raw, err := base64.RawURLEncoding.DecodeString(s[len(enrPrefix):])
	if err != nil {
		return Enr{}, fmt.Errorf("enr base64: %w", err)
	}
	return DecodeEnr(raw)
}

func (e Enr) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Enr) UnmarshalText(text []byte) error {
	parsed, err := ParseEnr(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
