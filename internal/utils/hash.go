package utils

import (
	"crypto/rand"  // Random bytes for the hash
	"encoding/hex" // Hex encoding
)

// NewLedgerHash produces a decorative "0x" + 40 hex character string in the
// shape of a chain transaction hash. It is random, not derived from any
// ledger; the demo has no real blockchain behind it.
func NewLedgerHash() string {
	b := make([]byte, 20) // 20 bytes -> 40 hex characters
	if _, err := rand.Read(b); err != nil {
		return "0x0000000000000000000000000000000000000000" // Never expected; keep the shape
	}
	return "0x" + hex.EncodeToString(b)
}
