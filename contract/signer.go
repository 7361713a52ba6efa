package contract

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
)

// Signer signs contracts. It carries the network-adjusted time source used to
// stamp version 2+ signing timestamps.
type Signer struct {
	clk clock.Clock
}

// NewSigner returns a Signer using the given time source. A nil clock falls
// back to wall time.
func NewSigner(clk clock.Clock) Signer {
	if clk == nil {
		clk = clock.New()
	}

	return Signer{clk: clk}
}

// Sign signs the contract with the given private key. For version 2+
// contracts it stamps the current adjusted time and draws a random nonce
// first. When the contract's type/action tier does not resolve to a fixed
// network key, the signer's public key is attached so that validating nodes
// can verify the signature. On error the contract is left unsigned and must
// not be broadcast.
func (s Signer) Sign(c *Contract, priv *keys.PrivateKey) error {
	if priv == nil {
		return errors.New("contract: signing key is not available")
	}

	c.invalidateHash()

	if c.Version > 1 {
		nonce, err := randomNonce()
		if err != nil {
			return fmt.Errorf("contract: draw nonce: %w", err)
		}

		c.Timestamp = s.clk.Now().Unix()
		c.Nonce = nonce
	}

	if !c.RequiresSpecialKey() {
		c.PublicKey = NewPublicKey(priv.PublicKey())
	}

	c.Signature = NewSignature(priv.SignHash(c.Hash()))

	return nil
}

// SignWithMessageKey signs the contract with the shared network message key.
func (s Signer) SignWithMessageKey(c *Contract) error {
	priv, err := MessagePrivateKey()
	if err != nil {
		return err
	}

	return s.Sign(c, priv)
}

// randomNonce draws a nonzero 32-bit nonce. Well-formed version 2+ contracts
// require a positive nonce, so a zero draw is retried.
func randomNonce() (uint32, error) {
	var buf [4]byte

	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}

		if n := binary.LittleEndian.Uint32(buf[:]); n != 0 {
			return n, nil
		}
	}
}
