package settlement

import (
	"context"
	"math/big"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/state"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

type internalAccumulatorMover struct {
	json adapter.JSON
}

// NewInternalAccumulatorMover creates a mover that credits per-recipient balances kept in the store
func NewInternalAccumulatorMover(json adapter.JSON) ValueMover {
	return &internalAccumulatorMover{json: json}
}

func (m *internalAccumulatorMover) Settle(_ context.Context, tx store.Tx, split Split) (Reversal, error) {
	st := state.New(tx, m.json)
	if err := credit(st, split.Creator, split.CreatorShare); err != nil {
		return nil, err
	}
	if split.PlatformFee.Sign() > 0 {
		if err := credit(st, split.Platform, split.PlatformFee); err != nil {
			return nil, err
		}
	}
	return NoReversal, nil
}

func credit(st *state.State, identity domain.Identity, amount *big.Int) error {
	balance, err := st.Balance(identity)
	if err != nil {
		return err
	}
	return st.PutBalance(identity, balance.Add(balance, amount))
}

func (m *internalAccumulatorMover) Balance(_ context.Context, tx store.Tx, identity domain.Identity) (*big.Int, error) {
	return state.New(tx, m.json).Balance(identity)
}

func (m *internalAccumulatorMover) Withdraw(_ context.Context, tx store.Tx, identity domain.Identity) (*big.Int, error) {
	st := state.New(tx, m.json)
	balance, err := st.Balance(identity)
	if err != nil {
		return nil, err
	}
	if balance.Sign() == 0 {
		return balance, nil
	}
	if err := st.PutBalance(identity, new(big.Int)); err != nil {
		return nil, err
	}
	return balance, nil
}

func (m *internalAccumulatorMover) SupportsWithdraw() bool {
	return true
}
