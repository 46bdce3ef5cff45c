package settlement

import (
	"context"
	"math/big"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

// Strategy names the value movement strategy selected at configuration time
type Strategy string

const (
	StrategyInternal Strategy = "internal"
	StrategyExternal Strategy = "external"
)

// Valid checks if the strategy is known
func (s Strategy) Valid() bool {
	return s == StrategyInternal || s == StrategyExternal
}

// Split is the result of splitting one tip between the creator and the platform
type Split struct {
	Payer        domain.Identity
	Creator      domain.Identity
	CreatorShare *big.Int
	Platform     domain.Identity
	PlatformFee  *big.Int
}

// Total returns the full amount moved by the split
func (s Split) Total() *big.Int {
	return new(big.Int).Add(s.CreatorShare, s.PlatformFee)
}

// Reversal undoes value already moved outside the store.
// It is called when the store transaction that settled the split fails to commit.
type Reversal func(ctx context.Context) error

// NoReversal is returned by movers whose effects live entirely in the store transaction
func NoReversal(context.Context) error { return nil }

// ValueMover moves the value of an accepted tip to its recipients
//
//go:generate mockgen -source=settlement.go -destination=../mocks/settlement.go -package=mocks -mock_names=ValueMover=MockValueMover,TokenLedger=MockTokenLedger
type ValueMover interface {
	// Settle moves split.CreatorShare to the creator and split.PlatformFee to the platform.
	// Either both legs succeed or the call fails with domain.ErrTransferFailed and nothing moved.
	Settle(ctx context.Context, tx store.Tx, split Split) (Reversal, error)
	// Balance returns the balance of identity as seen by this strategy
	Balance(ctx context.Context, tx store.Tx, identity domain.Identity) (*big.Int, error)
	// Withdraw pays out the balance of identity and returns the amount paid out
	Withdraw(ctx context.Context, tx store.Tx, identity domain.Identity) (*big.Int, error)
	// SupportsWithdraw reports whether Withdraw does anything under this strategy
	SupportsWithdraw() bool
}

// TokenLedger is the external fungible-token ledger used by ExternalLedgerMover
type TokenLedger interface {
	Transfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error
	Balance(ctx context.Context, identity domain.Identity) (*big.Int, error)
}
