package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// ErrInsufficientFunds is returned by MemoryLedger when a transfer would overdraw the sender
var ErrInsufficientFunds = errors.New("insufficient funds")

// MemoryLedger is an in-process TokenLedger used by tests and local runs
type MemoryLedger struct {
	mu       sync.Mutex
	balances map[domain.Identity]*big.Int
}

// NewMemoryLedger creates an empty ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{balances: make(map[domain.Identity]*big.Int)}
}

// Deposit credits identity out of thin air
func (l *MemoryLedger) Deposit(identity domain.Identity, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balanceLocked(identity).Add(l.balanceLocked(identity), amount)
}

func (l *MemoryLedger) balanceLocked(identity domain.Identity) *big.Int {
	b, ok := l.balances[identity]
	if !ok {
		b = new(big.Int)
		l.balances[identity] = b
	}
	return b
}

func (l *MemoryLedger) Transfer(_ context.Context, from, to domain.Identity, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return fmt.Errorf("%w: transfer amount must be positive", domain.ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	src := l.balanceLocked(from)
	if src.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientFunds, from, src, amount)
	}
	src.Sub(src, amount)
	dst := l.balanceLocked(to)
	dst.Add(dst, amount)
	return nil
}

func (l *MemoryLedger) Balance(_ context.Context, identity domain.Identity) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.balanceLocked(identity)), nil
}
