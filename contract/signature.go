package contract

import (
	"crypto/elliptic"
	"encoding/base64"
	"encoding/hex"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
)

// DER-encoded ASN.1 ECDSA signatures typically contain 70 or 71 bytes but may
// hold up to 73. Sizes as low as 68 bytes seen on mainnet, and the compact
// 64-byte form is produced by current signers.
const (
	minSignatureSize = 64
	maxSignatureSize = 73
)

// Signature holds the raw bytes of a contract signature.
type Signature struct {
	bytes []byte
}

// NewSignature wraps raw signature bytes.
func NewSignature(b []byte) Signature {
	return Signature{bytes: b}
}

// ParseSignature decodes a base64-encoded signature. It returns an empty
// signature when decoding fails.
func ParseSignature(input string) Signature {
	if input == "" {
		return Signature{}
	}

	decoded, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return Signature{}
	}

	return Signature{bytes: decoded}
}

// Viable checks that the signature byte length falls in the plausible range
// for an ECDSA signature. This is a cheap early check, not validation.
func (s Signature) Viable() bool {
	return len(s.bytes) >= minSignatureSize && len(s.bytes) <= maxSignatureSize
}

// Bytes returns the raw signature bytes.
func (s Signature) Bytes() []byte {
	return s.bytes
}

// String renders the signature as base64, or an empty string for an empty
// signature.
func (s Signature) String() string {
	if len(s.bytes) == 0 {
		return ""
	}

	return base64.StdEncoding.EncodeToString(s.bytes)
}

// PublicKey optionally holds the key that verifies a contract signed with a
// user-supplied private key. Contracts verified with one of the fixed network
// keys omit it. The zero value is an absent key.
type PublicKey struct {
	key *keys.PublicKey
}

// NewPublicKey wraps a parsed key.
func NewPublicKey(key *keys.PublicKey) PublicKey {
	return PublicKey{key: key}
}

// ParsePublicKey decodes a hex-encoded public key. It returns an absent key
// when input is empty or does not decode to a valid curve point.
func ParsePublicKey(input string) PublicKey {
	if input == "" {
		return PublicKey{}
	}

	key, err := keys.NewPublicKeyFromString(input)
	if err != nil {
		return PublicKey{}
	}

	return PublicKey{key: key}
}

// Viable reports whether the key holds a valid curve point.
func (pk PublicKey) Viable() bool {
	return pk.key != nil
}

// Key returns the underlying key, nil when absent.
func (pk PublicKey) Key() *keys.PublicKey {
	return pk.key
}

// Bytes returns the compressed encoding of the key, nil when absent.
func (pk PublicKey) Bytes() []byte {
	if pk.key == nil {
		return nil
	}

	return pk.key.Bytes()
}

// String renders the compressed key encoding as hex, or an empty string for
// an absent key.
func (pk PublicKey) String() string {
	if pk.key == nil {
		return ""
	}

	return hex.EncodeToString(pk.key.Bytes())
}

func publicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) == 0 {
		return PublicKey{}, nil
	}

	key, err := keys.NewPublicKeyFromBytes(b, elliptic.P256())
	if err != nil {
		return PublicKey{}, err
	}

	return PublicKey{key: key}, nil
}
