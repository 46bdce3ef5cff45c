package domain

import "math/big"

const (
	// MINIMUM_TIP is the smallest tip amount accepted by the tip accounting engine
	MINIMUM_TIP int64 = 100_000

	// DEFAULT_PLATFORM_FEE_BPS is the platform fee applied when none is configured at initialization (2.5%)
	DEFAULT_PLATFORM_FEE_BPS uint32 = 250

	// MAX_PLATFORM_FEE_BPS is the highest platform fee governance accepts (10%)
	MAX_PLATFORM_FEE_BPS uint32 = 1000

	// BPS_DENOMINATOR is the number of basis points in a whole
	BPS_DENOMINATOR int64 = 10_000

	// DEFAULT_TIP_THRESHOLD is the cumulative tip amount an item needs before its collectible can be minted
	DEFAULT_TIP_THRESHOLD int64 = 100_000_000

	// MAX_IDENTIFIER_LENGTH bounds item, highlight and identity strings used as storage key components
	MAX_IDENTIFIER_LENGTH = 256
)

// MinimumTip returns MINIMUM_TIP as a big integer
func MinimumTip() *big.Int {
	return big.NewInt(MINIMUM_TIP)
}

// maxAmount is the largest value of a signed 128-bit integer
var maxAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))

// MaxAmount returns the largest amount, total or threshold the ledger stores (2^127 - 1)
func MaxAmount() *big.Int {
	return new(big.Int).Set(maxAmount)
}

// AmountInRange reports whether v is between zero and MaxAmount inclusive
func AmountInRange(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(maxAmount) <= 0
}

// DefaultTipThreshold returns DEFAULT_TIP_THRESHOLD as a big integer
func DefaultTipThreshold() *big.Int {
	return big.NewInt(DEFAULT_TIP_THRESHOLD)
}
