package contract

import (
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/crypto/keys"
)

// Fixed network-wide authorization keys. The master private key counterpart
// is never part of the source tree: privileged issuers supply it through the
// node configuration (config.Options.MasterPrivateKey). The message private
// key is intentionally public so that any node can issue message-key
// contracts such as beacon registrations.
const (
	masterPublicKeyHex = "02e2534a3532d08fbba02dde659ee62bd0031fe2db785596ef509302446b030852"

	messagePublicKeyHex  = "025ecbe4d1a6330a44c8f7ef951d4bf165e6c6b721efada985fb41661bc6e7fd6c"
	messagePrivateKeyHex = "0000000000000000000000000000000000000000000000000000000000000003"
)

var (
	masterPublicKey  = mustPublicKey(masterPublicKeyHex)
	messagePublicKey = mustPublicKey(messagePublicKeyHex)
)

func mustPublicKey(s string) *keys.PublicKey {
	key, err := keys.NewPublicKeyFromString(s)
	if err != nil {
		panic(fmt.Sprintf("contract: bad network key constant: %v", err))
	}

	return key
}

// MasterPublicKey returns the fixed key that verifies master-key contracts.
//
// If the master key changes, add a conditional entry to this method that
// returns the new key for the appropriate height.
func MasterPublicKey() *keys.PublicKey {
	return masterPublicKey
}

// MessagePublicKey returns the fixed key that verifies message-key contracts.
//
// If the message key changes, add a conditional entry to this method that
// returns the new key for the appropriate height.
func MessagePublicKey() *keys.PublicKey {
	return messagePublicKey
}

// MessagePrivateKey returns the shared private counterpart of
// MessagePublicKey.
func MessagePrivateKey() (*keys.PrivateKey, error) {
	priv, err := keys.NewPrivateKeyFromHex(messagePrivateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("contract: message private key: %w", err)
	}

	return priv, nil
}

// RequiresMasterKey reports whether the contract's type and action pair must
// be signed with the network master key.
func (c *Contract) RequiresMasterKey() bool {
	switch c.Type.ID() {
	case TypeBeacon, TypePoll, TypeVote:
		return c.Action.ID() == ActionRemove
	case TypeProject, TypeProtocol, TypeScraper:
		return c.Action.ID() == ActionAdd
	}

	return false
}

// RequiresMessageKey reports whether the contract's type and action pair must
// be signed with the network message key.
func (c *Contract) RequiresMessageKey() bool {
	switch c.Type.ID() {
	case TypeBeacon, TypePoll, TypeVote:
		return c.Action.ID() == ActionAdd
	}

	return false
}

// RequiresSpecialKey reports whether the contract is authorized by one of the
// fixed network keys instead of a key embedded in the contract itself.
func (c *Contract) RequiresSpecialKey() bool {
	return c.RequiresMessageKey() || c.RequiresMasterKey()
}

// ResolvePublicKey returns the key that the contract's signature must verify
// against: the message key or the master key when the type/action tier
// demands one, the embedded public key otherwise. It returns nil when a
// required embedded key is absent.
func (c *Contract) ResolvePublicKey() *keys.PublicKey {
	if c.RequiresMessageKey() {
		return MessagePublicKey()
	}

	if c.RequiresMasterKey() {
		return MasterPublicKey()
	}

	return c.PublicKey.Key()
}
