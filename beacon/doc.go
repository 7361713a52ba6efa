// Package beacon maintains the directory of node-registration beacons, the
// contracts that bind a researcher CPID to a payment address and a
// verification key.
package beacon
