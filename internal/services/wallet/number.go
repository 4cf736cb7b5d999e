package wallet

import (
	"fmt"
	"math/rand/v2"
)

const walletNumberPrefix = "WST"

// generateWalletNumber draws a random 10-digit account number. The
// number column is unique, so CreateWallet retries on collision.
func generateWalletNumber() string {
	const min, max = 1_000_000_000, 9_999_999_999
	return fmt.Sprintf("%s%d", walletNumberPrefix, rand.Int64N(max-min+1)+min)
}
