/*
Package dispatch routes validated contracts to per-type handlers and protects
the node against contract replay.

The Dispatcher owns a configuration-time handler table: dedicated handlers
register per contract type, a store-backed default handler serves the types
without one, and unrecognized types fall through to a handler that only logs.
Reverting a contract from a disconnected block defaults to performing the
opposite action.

The ReplayPool keeps a rolling window of recently-received contract hashes,
purging expired entries lazily while scanning for duplicates, so memory stays
bounded without a background timer.
*/
package dispatch
