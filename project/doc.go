// Package project maintains the whitelist of approved projects announced
// through project contracts.
package project
