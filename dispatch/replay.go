package dispatch

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gridnet-dev/gridnet-contract/contract"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// DefaultReplayRetention bounds how long received contract hashes are kept
// for replay detection. Contracts with a signing timestamp older than the
// window are rejected outright, so the pool never needs to remember more.
const DefaultReplayRetention = 24 * time.Hour

type replayItem struct {
	timestamp int64        // to cull entries older than the retention window
	hash      util.Uint256 // compared against newly-received contracts
}

// ReplayPool is a rolling cache of recently-received contract hashes used to
// reject replayed contracts. Only version 2+ contracts carry the signing
// timestamp and nonce needed for meaningful replay detection; version 1
// contracts are accepted through legacy trust assumptions.
//
// The pool is not internally synchronized: callers serialize through the same
// lock that guards the dispatch paths.
type ReplayPool struct {
	clk       clock.Clock
	retention time.Duration
	items     []replayItem
}

// NewReplayPool returns a pool evicting entries older than retention,
// measured against the given time source. A nil clock falls back to wall
// time; a non-positive retention falls back to DefaultReplayRetention.
func NewReplayPool(clk clock.Clock, retention time.Duration) *ReplayPool {
	if clk == nil {
		clk = clock.New()
	}
	if retention <= 0 {
		retention = DefaultReplayRetention
	}

	return &ReplayPool{clk: clk, retention: retention}
}

// CheckReplay reports whether the contract is unique within the retention
// window. Contracts timestamped before the window cannot be replay-checked
// against a bounded pool and are rejected unconditionally. Expired entries
// are purged during the same scan; there is no background sweep.
func (p *ReplayPool) CheckReplay(c *contract.Contract) bool {
	validAfter := p.validAfterTime()

	if c.Timestamp < validAfter {
		return false
	}

	candidate := c.Hash()
	unique := true
	kept := p.items[:0]

	for _, item := range p.items {
		// A hash matching a pool entry means the contract was replayed:
		if item.hash.Equals(candidate) {
			unique = false
		}

		// Expired entries pass out of the pool as new contracts arrive:
		if item.timestamp < validAfter {
			continue
		}

		kept = append(kept, item)
	}

	p.items = kept

	return unique
}

// TrackForReplay records the contract hash in the pool. Call it only for
// contracts that passed full validation and were applied, never
// speculatively.
func (p *ReplayPool) TrackForReplay(c *contract.Contract) {
	p.items = append(p.items, replayItem{
		timestamp: c.Timestamp,
		hash:      c.Hash(),
	})
}

// Len returns the number of tracked hashes.
func (p *ReplayPool) Len() int {
	return len(p.items)
}

func (p *ReplayPool) validAfterTime() int64 {
	return p.clk.Now().Add(-p.retention).Unix()
}
