package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

type externalLedgerMover struct {
	ledger TokenLedger
}

// NewExternalLedgerMover creates a mover that transfers each share on an external token ledger
func NewExternalLedgerMover(ledger TokenLedger) ValueMover {
	return &externalLedgerMover{ledger: ledger}
}

func (m *externalLedgerMover) Settle(ctx context.Context, _ store.Tx, split Split) (Reversal, error) {
	if err := m.ledger.Transfer(ctx, split.Payer, split.Creator, split.CreatorShare); err != nil {
		return nil, fmt.Errorf("%w: creator share: %v", domain.ErrTransferFailed, err)
	}

	if split.PlatformFee.Sign() > 0 {
		if err := m.ledger.Transfer(ctx, split.Payer, split.Platform, split.PlatformFee); err != nil {
			if rerr := m.ledger.Transfer(ctx, split.Creator, split.Payer, split.CreatorShare); rerr != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("failed to reverse creator share: %w", rerr),
					zap.String("payer", string(split.Payer)),
					zap.String("creator", string(split.Creator)),
					zap.String("amount", split.CreatorShare.String()),
				)
			}
			return nil, fmt.Errorf("%w: platform fee: %v", domain.ErrTransferFailed, err)
		}
	}

	return func(ctx context.Context) error {
		var errs []error
		if err := m.ledger.Transfer(ctx, split.Creator, split.Payer, split.CreatorShare); err != nil {
			errs = append(errs, fmt.Errorf("creator share: %w", err))
		}
		if split.PlatformFee.Sign() > 0 {
			if err := m.ledger.Transfer(ctx, split.Platform, split.Payer, split.PlatformFee); err != nil {
				errs = append(errs, fmt.Errorf("platform fee: %w", err))
			}
		}
		return errors.Join(errs...)
	}, nil
}

func (m *externalLedgerMover) Balance(ctx context.Context, _ store.Tx, identity domain.Identity) (*big.Int, error) {
	balance, err := m.ledger.Balance(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger balance: %w", err)
	}
	return balance, nil
}

func (m *externalLedgerMover) Withdraw(context.Context, store.Tx, domain.Identity) (*big.Int, error) {
	return nil, domain.ErrWithdrawUnsupported
}

func (m *externalLedgerMover) SupportsWithdraw() bool {
	return false
}
