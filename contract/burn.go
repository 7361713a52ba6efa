package contract

import (
	"bytes"

	"github.com/mr-tron/base58"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
)

// Contract transactions pay their fee to an unspendable burn address.
const (
	mainnetBurnAddress = "S67nL4vELWwdDVzjgtEP4MxryarTZ9a8GB"
	testnetBurnAddress = "mk1e432zWKH1MW57ragKywuXaWAtHy1AHZ"
)

// BurnAddress returns the address that contract transactions send their
// output to.
func BurnAddress(testnet bool) string {
	if testnet {
		return testnetBurnAddress
	}

	return mainnetBurnAddress
}

// ValidAddress reports whether s is a well-formed base58check address: the
// trailing four bytes must match the checksum of the payload.
func ValidAddress(s string) bool {
	decoded, err := base58.Decode(s)
	if err != nil || len(decoded) <= 4 {
		return false
	}

	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]

	return bytes.Equal(hash.Checksum(payload), checksum)
}
