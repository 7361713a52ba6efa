/*
Package contract implements the governance contract entity: the versioned
message embedded in transactions that registers beacons, opens polls, casts
votes, whitelists projects and tunes protocol parameters.

The package covers the full entity lifecycle short of persistence: detection
and parsing of legacy tagged-string messages, the canonical binary encoding of
version 2+ contracts, hashing, signing, structural validation and signature
verification, and the key-resolution policy that maps each contract type and
action pair to the master key, the message key or a key embedded in the
contract itself.

Routing of validated contracts to handlers and replay protection live in the
dispatch package.
*/
package contract
