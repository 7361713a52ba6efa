// Package appcache provides the key/value persistence collaborator consumed
// by the dispatch package: records keyed by contract type section and
// contract key, with the carrying transaction's timestamp. MemStore keeps
// everything in memory; BoltStore persists through a bbolt file.
package appcache
