package dispatch

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gridnet-dev/gridnet-contract/contract"
	"go.uber.org/zap"
)

// Dispatcher routes validated contracts to per-type handlers and tracks
// received contracts for replay protection. The node's validation context
// owns one Dispatcher and calls it from the block (dis)connection paths under
// its state lock; the Dispatcher itself is not synchronized.
type Dispatcher struct {
	log *zap.Logger

	handlers map[contract.TypeID]Handler
	legacy   *StoreHandler
	unknown  *UnknownHandler

	replay *ReplayPool
}

// New returns a Dispatcher persisting through store. Poll, protocol, scraper
// and vote contracts route to the store-backed default handler until those
// types grow dedicated handlers; register handlers for the remaining types
// with Register. Superblocks are processed by a separate subsystem and stay
// unrouted. retention bounds the replay pool (see NewReplayPool).
func New(store Store, log *zap.Logger, clk clock.Clock, retention time.Duration) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	legacy := NewStoreHandler(store, log)

	return &Dispatcher{
		log:    log,
		legacy: legacy,
		handlers: map[contract.TypeID]Handler{
			contract.TypePoll:     legacy,
			contract.TypeProtocol: legacy,
			contract.TypeScraper:  legacy,
			contract.TypeVote:     legacy,
		},
		unknown: NewUnknownHandler(log),
		replay:  NewReplayPool(clk, retention),
	}
}

// Register routes contracts of the given type to h, replacing any previous
// handler.
func (d *Dispatcher) Register(t contract.TypeID, h Handler) {
	d.handlers[t] = h
}

// OnPollChange registers the presentation-layer callback receiving the
// currently-displayed poll (see StoreHandler.SetPollListener).
func (d *Dispatcher) OnPollChange(fn func(poll string)) {
	d.legacy.SetPollListener(fn)
}

// Apply forwards a validated contract to its type's handler: additions to
// Add, removals to Delete. Contracts with any other action are logged and
// ignored.
func (d *Dispatcher) Apply(c *contract.Contract) error {
	switch c.Action.ID() {
	case contract.ActionAdd:
		d.log.Info("add contract", c.LogFields()...)
		return d.handler(c.Type.ID()).Add(c)
	case contract.ActionRemove:
		d.log.Info("delete contract", c.LogFields()...)
		return d.handler(c.Type.ID()).Delete(c)
	}

	d.log.Warn("unknown contract action ignored", c.LogFields()...)

	return nil
}

// Revert undoes a previously-applied contract from a disconnected block by
// passing it to the type's handler. Handlers default to reversing the
// declared action but may override that behavior.
func (d *Dispatcher) Revert(c *contract.Contract) error {
	d.log.Info("revert contract", c.LogFields()...)

	return d.handler(c.Type.ID()).Revert(c)
}

// CheckReplay reports whether a received contract is unique within the
// replay retention window. Callers reject the enclosing transaction when it
// returns false.
func (d *Dispatcher) CheckReplay(c *contract.Contract) bool {
	return d.replay.CheckReplay(c)
}

// TrackForReplay records an accepted contract in the replay pool.
func (d *Dispatcher) TrackForReplay(c *contract.Contract) {
	d.replay.TrackForReplay(c)
}

// TrackContracts records a batch of accepted contracts in the replay pool.
func (d *Dispatcher) TrackContracts(cs []*contract.Contract) {
	for _, c := range cs {
		d.replay.TrackForReplay(c)
	}
}

func (d *Dispatcher) handler(t contract.TypeID) Handler {
	if h, ok := d.handlers[t]; ok {
		return h
	}

	return d.unknown
}
