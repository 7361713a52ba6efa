package beacon

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/gridnet-dev/gridnet-contract/contract"
	"github.com/gridnet-dev/gridnet-contract/dispatch"
	"go.uber.org/zap"
)

// cpidSize is the hex length of a researcher CPID (an MD5 digest).
const cpidSize = 32

// Beacon is a node's registration record: it binds a researcher CPID to the
// payment address and verification key advertised by the node.
type Beacon struct {
	CPID      string
	Address   string
	PublicKey string
	Timestamp int64
}

// Registry holds the active beacons and implements dispatch.Handler for
// beacon contracts. Beyond the generic payload it checks the beacon envelope:
// the contract key must be a CPID, the value a base64 envelope whose address
// passes base58check.
//
// Like the dispatcher that owns it, the registry relies on external
// serialization.
type Registry struct {
	log     *zap.Logger
	beacons map[string]Beacon
}

// NewRegistry returns an empty registry.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}

	return &Registry{
		log:     log,
		beacons: make(map[string]Beacon),
	}
}

// Add implements dispatch.Handler.
func (r *Registry) Add(c *contract.Contract) error {
	b, err := parsePayload(c.Key, c.Value)
	if err != nil {
		return fmt.Errorf("beacon: reject %q: %w", c.Key, err)
	}

	b.Timestamp = c.TxTimestamp
	r.beacons[b.CPID] = b

	r.log.Info("beacon registered",
		zap.String("cpid", b.CPID),
		zap.String("address", b.Address))

	return nil
}

// Delete implements dispatch.Handler.
func (r *Registry) Delete(c *contract.Contract) error {
	delete(r.beacons, c.Key)

	r.log.Info("beacon removed", zap.String("cpid", c.Key))

	return nil
}

// Revert implements dispatch.Handler.
func (r *Registry) Revert(c *contract.Contract) error {
	return dispatch.RevertDefault(r, c)
}

// Get returns the beacon registered for cpid.
func (r *Registry) Get(cpid string) (Beacon, bool) {
	b, ok := r.beacons[cpid]

	return b, ok
}

// Contains reports whether a beacon is registered for cpid.
func (r *Registry) Contains(cpid string) bool {
	_, ok := r.beacons[cpid]

	return ok
}

// Len returns the number of registered beacons.
func (r *Registry) Len() int {
	return len(r.beacons)
}

// parsePayload validates and unpacks the legacy beacon envelope: a base64
// encoding of "cpid;random;address;publickey".
func parsePayload(key, value string) (Beacon, error) {
	if !validCPID(key) {
		return Beacon{}, fmt.Errorf("contract key %q is not a CPID", key)
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return Beacon{}, fmt.Errorf("decode envelope: %w", err)
	}

	parts := strings.Split(string(decoded), ";")
	if len(parts) < 4 {
		return Beacon{}, fmt.Errorf("envelope has %d parts, need 4", len(parts))
	}

	if parts[0] != key {
		return Beacon{}, fmt.Errorf("envelope CPID %q does not match contract key", parts[0])
	}

	if !contract.ValidAddress(parts[2]) {
		return Beacon{}, fmt.Errorf("invalid payment address %q", parts[2])
	}

	if _, err := hex.DecodeString(parts[3]); err != nil || parts[3] == "" {
		return Beacon{}, fmt.Errorf("invalid verification key %q", parts[3])
	}

	return Beacon{
		CPID:      parts[0],
		Address:   parts[2],
		PublicKey: parts[3],
	}, nil
}

func validCPID(s string) bool {
	if len(s) != cpidSize {
		return false
	}

	_, err := hex.DecodeString(s)

	return err == nil
}
