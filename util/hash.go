package util

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// TransactionHash returns the hex-encoded Keccak-256 content hash of a raw
// transaction blob. This is the transaction id callers get back from
// /sendrawtransaction.
func TransactionHash(tx []byte) string {
	h := sha3.NewLegacyKeccak256()
	h.Write(tx)

	return hex.EncodeToString(h.Sum(nil))
}
