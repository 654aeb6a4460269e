package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// GenerateTransactionID returns a globally unique transaction identifier
// for a payment ledger entry.
func GenerateTransactionID() string {
	return "tx_" + uuid.NewString()
}

// GenerateResetCode returns a 6-digit single-use code for the password
// reset flow. Uses crypto/rand since the code guards account ownership.
func GenerateResetCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		// crypto/rand failing means the platform RNG is broken;
		// fall back to a uuid-derived code rather than something guessable.
		return uuid.NewString()[:6]
	}
	return fmt.Sprintf("%06d", n.Int64())
}
