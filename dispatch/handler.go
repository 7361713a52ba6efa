package dispatch

import (
	"fmt"

	"github.com/gridnet-dev/gridnet-contract/contract"
	"go.uber.org/zap"
)

// Handler applies contracts of one type to node state. Implementations must
// enforce any type-specific invariants beyond the generic key/value payload.
type Handler interface {
	// Add handles a contract addition.
	Add(c *contract.Contract) error

	// Delete handles a contract deletion.
	Delete(c *contract.Contract) error

	// Revert undoes a previously-applied contract, typically parsed from a
	// transaction in a disconnected block. Most handlers delegate to
	// RevertDefault; override when reversal is not a pure inverse.
	Revert(c *contract.Contract) error
}

// RevertDefault reverses an applied contract by performing the opposite
// action: reverting an addition deletes, reverting a deletion re-adds.
func RevertDefault(h Handler, c *contract.Contract) error {
	switch c.Action.ID() {
	case contract.ActionAdd:
		return h.Delete(c)
	case contract.ActionRemove:
		return h.Add(c)
	}

	return fmt.Errorf("dispatch: cannot revert action %q", c.Action.String())
}

// Store is the key/value persistence collaborator behind the default
// handler. Records are keyed by (section, key) where the section is the
// contract type literal.
type Store interface {
	Write(section, key, value string, txTime int64) error
	Delete(section, key string) error
}

// StoreHandler reads and writes contracts to a type-sectioned key/value
// store. It serves the contract types that have no dedicated handler yet.
type StoreHandler struct {
	store Store
	log   *zap.Logger

	// Notifies the presentation layer of the currently-displayed poll.
	pollListener func(poll string)
}

// NewStoreHandler returns a handler persisting through store.
func NewStoreHandler(store Store, log *zap.Logger) *StoreHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return &StoreHandler{store: store, log: log}
}

// SetPollListener registers a callback invoked with the rendered contract
// whenever a poll is added. The UI consumes this to display the current poll
// without reaching into node state.
func (h *StoreHandler) SetPollListener(fn func(poll string)) {
	h.pollListener = fn
}

// Add implements Handler.
func (h *StoreHandler) Add(c *contract.Contract) error {
	err := h.store.Write(c.Type.String(), c.Key, c.Value, c.TxTimestamp)
	if err != nil {
		return fmt.Errorf("dispatch: write contract record: %w", err)
	}

	if c.Type.ID() == contract.TypePoll && h.pollListener != nil {
		h.pollListener(c.ToString())
	}

	return nil
}

// Delete implements Handler.
func (h *StoreHandler) Delete(c *contract.Contract) error {
	err := h.store.Delete(c.Type.String(), c.Key)
	if err != nil {
		return fmt.Errorf("dispatch: delete contract record: %w", err)
	}

	return nil
}

// Revert implements Handler.
func (h *StoreHandler) Revert(c *contract.Contract) error {
	return RevertDefault(h, c)
}

// UnknownHandler handles contracts of unrecognized types by logging them.
// Once version 2 contracts become mandatory, nodes will reject transactions
// with unknown contract types instead and this handler goes away.
type UnknownHandler struct {
	log *zap.Logger
}

// NewUnknownHandler returns a handler logging through log.
func NewUnknownHandler(log *zap.Logger) *UnknownHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return &UnknownHandler{log: log}
}

// Add implements Handler.
func (h *UnknownHandler) Add(c *contract.Contract) error {
	h.log.Warn("add unknown contract type ignored", c.LogFields()...)
	return nil
}

// Delete implements Handler.
func (h *UnknownHandler) Delete(c *contract.Contract) error {
	h.log.Warn("delete unknown contract type ignored", c.LogFields()...)
	return nil
}

// Revert implements Handler.
func (h *UnknownHandler) Revert(c *contract.Contract) error {
	h.log.Warn("revert unknown contract type ignored", c.LogFields()...)
	return nil
}
