package contract

import (
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// CurrentVersion is the version stamped on newly-composed contracts. Legacy
// tagged-string messages always parse to version 1.
const CurrentVersion = 2

// Contract is a governance/network message embedded in a transaction: node
// registration beacons, polls, votes, project registrations, protocol
// parameters. Contracts are parsed from transaction messages or composed
// programmatically, signed, validated and then routed to a handler.
//
// The contract hash is memoized: it is computed on first use and invalidated
// only by signing. Do not query the hash on a contract in an intermediate
// state between field assignment and signing.
type Contract struct {
	Version int

	Type   Type
	Action Action

	// Key and Value carry the payload, interpreted per contract type.
	Key   string
	Value string

	Signature Signature

	// PublicKey verifies the signature of contracts signed with a
	// user-supplied key. Absent when the type/action tier resolves to one of
	// the fixed network keys.
	PublicKey PublicKey

	// Nonce and Timestamp feed replay protection. Zero and meaningless for
	// version 1 contracts.
	Nonce     uint32
	Timestamp int64

	// TxTimestamp is the time of the enclosing transaction.
	TxTimestamp int64

	hash      util.Uint256
	hashValid bool
}

// New composes an unsigned contract of the current version.
func New(typ Type, action Action, key, value string) Contract {
	return Contract{
		Version: CurrentVersion,
		Type:    typ,
		Action:  action,
		Key:     key,
		Value:   value,
	}
}

// Detect reports whether a transaction-embedded message is a candidate
// contract. Superblock messages share the type marker but belong to the
// superblock subsystem, so they are excluded here.
func Detect(message string) bool {
	return message != "" &&
		strings.Contains(message, "<MT>") &&
		!strings.Contains(message, "<MT>superblock</MT>")
}

// Parse extracts a contract from a legacy tagged-string transaction message.
// The result is always a version 1 contract: nonce and signing timestamp are
// meaningless for that version and fixed to zero. txTime is the time of the
// enclosing transaction.
func Parse(message string, txTime int64) Contract {
	if message == "" {
		return Contract{Version: CurrentVersion}
	}

	return Contract{
		Version: 1,
		Type:    ParseType(extractTag(message, "<MT>", "</MT>")),
		Action:  ParseAction(extractTag(message, "<MA>", "</MA>")),
		Key:     extractTag(message, "<MK>", "</MK>"),
		Value:   extractTag(message, "<MV>", "</MV>"),
		// None of the valid version 1 contract types support signing with a
		// user-supplied private key, so the <MPK> tag is never parsed. These
		// contracts verify with the master and message keys.
		Signature:   ParseSignature(extractTag(message, "<MS>", "</MS>")),
		TxTimestamp: txTime,
	}
}

// ToString renders the contract in the legacy tagged-string format.
func (c *Contract) ToString() string {
	return "<MT>" + c.Type.String() + "</MT>" +
		"<MK>" + c.Key + "</MK>" +
		"<MV>" + c.Value + "</MV>" +
		"<MA>" + c.Action.String() + "</MA>" +
		"<MPK>" + c.PublicKey.String() + "</MPK>" +
		"<MS>" + c.Signature.String() + "</MS>"
}

// Hash returns the contract hash used for signing, verification and replay
// tracking.
//
// Version 1 contracts hash only the type literal, key and value to stay
// compatible with historically-issued contracts. Later versions hash the
// canonical serialization of every field except the signature, which makes
// the nonce and signing timestamp tamper-evident.
//
// The value is memoized because validation queries it several times (once to
// verify the signature, once to track the contract for replay protection and
// once or more comparing against the replay pool). Signing invalidates it.
func (c *Contract) Hash() util.Uint256 {
	if c.hashValid {
		return c.hash
	}

	if c.Version > 1 {
		c.hash = hash.DoubleSha256(c.hashableBytes())
	} else {
		c.hash = hash.DoubleSha256([]byte(c.Type.String() + c.Key + c.Value))
	}

	c.hashValid = true

	return c.hash
}

// WellFormed checks the contract's structural invariants. It performs no
// cryptography and must pass before signature verification is attempted:
// contracts arrive from the network, and rejecting malformed input early
// keeps expensive curve operations off the hot path.
func (c *Contract) WellFormed() bool {
	return c.Version > 0 && c.Version <= CurrentVersion &&
		c.Type.ID() != TypeUnknown &&
		c.Action.ID() != ActionUnknown &&
		c.Key != "" &&
		c.Value != "" &&
		c.Signature.Viable() &&
		(c.RequiresSpecialKey() || c.PublicKey.Viable()) &&
		c.TxTimestamp > 0 &&
		(c.Version == 1 || (c.Timestamp > 0 && c.Nonce > 0))
}

// VerifySignature verifies the contract signature against the key resolved
// for its type/action tier.
func (c *Contract) VerifySignature() bool {
	pub := c.ResolvePublicKey()
	if pub == nil {
		return false
	}

	digest := c.Hash()

	return pub.Verify(c.Signature.Bytes(), digest.BytesBE())
}

// Validate checks the structural invariants and then the signature.
func (c *Contract) Validate() bool {
	return c.WellFormed() && c.VerifySignature()
}

// LogFields returns the contract as structured log fields.
func (c *Contract) LogFields() []zap.Field {
	return []zap.Field{
		zap.Int("version", c.Version),
		zap.Int64("tx_timestamp", c.TxTimestamp),
		zap.Int64("timestamp", c.Timestamp),
		zap.String("type", c.Type.String()),
		zap.String("action", c.Action.String()),
		zap.String("key", c.Key),
		zap.String("value", c.Value),
		zap.String("public_key", c.PublicKey.String()),
		zap.String("signature", c.Signature.String()),
		zap.Uint32("nonce", c.Nonce),
	}
}

func (c *Contract) invalidateHash() {
	c.hash = util.Uint256{}
	c.hashValid = false
}

// extractTag pulls the substring between open and close from the flat
// tagged-string contract format. The format is not XML: tags never nest and
// carry no attributes, so plain index math is all the parsing it needs.
func extractTag(message, open, close string) string {
	start := strings.Index(message, open)
	if start < 0 {
		return ""
	}
	start += len(open)

	end := strings.Index(message[start:], close)
	if end < 0 {
		return ""
	}

	return message[start : start+end]
}
