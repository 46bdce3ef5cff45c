package executor_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-tipping-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
)

type testExecutor struct {
	exec       executor.Executor
	governance *mocks.MockGovernance
	tipping    *mocks.MockTippingEngine
	minting    *mocks.MockMintingGate
}

func setupExecutor(t *testing.T) *testExecutor {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	te := &testExecutor{
		governance: mocks.NewMockGovernance(ctrl),
		tipping:    mocks.NewMockTippingEngine(ctrl),
		minting:    mocks.NewMockMintingGate(ctrl),
	}
	te.exec = executor.NewExecutor(te.governance, te.tipping, te.minting)
	return te
}

func TestGetItem(t *testing.T) {
	ctx := context.Background()
	tips := []domain.TipRecord{{Tipper: "alice", Amount: big.NewInt(100), Timestamp: 10}}

	t.Run("unminted item has no collectible", func(t *testing.T) {
		te := setupExecutor(t)
		te.tipping.EXPECT().GetItemTotal(ctx, domain.ItemID("item-1")).Return(big.NewInt(100), nil)
		te.tipping.EXPECT().GetItemTips(ctx, domain.ItemID("item-1")).Return(tips, nil)
		te.minting.EXPECT().GetTokenByItem(ctx, domain.ItemID("item-1")).Return(nil, domain.ErrTokenNotFound)

		view, err := te.exec.GetItem(ctx, "item-1")
		require.NoError(t, err)
		assert.Equal(t, domain.ItemID("item-1"), view.ItemID)
		assert.Equal(t, "100", view.Total.String())
		assert.Equal(t, tips, view.Tips)
		assert.Nil(t, view.Collectible)
	})

	t.Run("minted item carries its collectible", func(t *testing.T) {
		te := setupExecutor(t)
		token := &domain.CollectibleToken{TokenID: 1, ItemID: "item-1", Owner: "carol"}
		te.tipping.EXPECT().GetItemTotal(ctx, domain.ItemID("item-1")).Return(big.NewInt(100), nil)
		te.tipping.EXPECT().GetItemTips(ctx, domain.ItemID("item-1")).Return(tips, nil)
		te.minting.EXPECT().GetTokenByItem(ctx, domain.ItemID("item-1")).Return(token, nil)

		view, err := te.exec.GetItem(ctx, "item-1")
		require.NoError(t, err)
		assert.Equal(t, token, view.Collectible)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		te := setupExecutor(t)
		boom := errors.New("boom")
		te.tipping.EXPECT().GetItemTotal(ctx, domain.ItemID("item-1")).Return(big.NewInt(0), nil)
		te.tipping.EXPECT().GetItemTips(ctx, domain.ItemID("item-1")).Return(nil, nil)
		te.minting.EXPECT().GetTokenByItem(ctx, domain.ItemID("item-1")).Return(nil, boom)

		_, err := te.exec.GetItem(ctx, "item-1")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty id", func(t *testing.T) {
		te := setupExecutor(t)
		_, err := te.exec.GetItem(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestGetOwnedTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("expands ids", func(t *testing.T) {
		te := setupExecutor(t)
		a := &domain.CollectibleToken{TokenID: 2, ItemID: "item-2"}
		b := &domain.CollectibleToken{TokenID: 5, ItemID: "item-5"}
		te.minting.EXPECT().GetOwnedTokens(ctx, domain.Identity("carol")).Return([]uint64{2, 5}, nil)
		te.minting.EXPECT().GetToken(ctx, uint64(2)).Return(a, nil)
		te.minting.EXPECT().GetToken(ctx, uint64(5)).Return(b, nil)

		tokens, err := te.exec.GetOwnedTokens(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, []*domain.CollectibleToken{a, b}, tokens)
	})

	t.Run("missing token fails the listing", func(t *testing.T) {
		te := setupExecutor(t)
		te.minting.EXPECT().GetOwnedTokens(ctx, domain.Identity("carol")).Return([]uint64{2}, nil)
		te.minting.EXPECT().GetToken(ctx, uint64(2)).Return(nil, domain.ErrTokenNotFound)

		_, err := te.exec.GetOwnedTokens(ctx, "carol")
		assert.ErrorIs(t, err, domain.ErrTokenNotFound)
	})

	t.Run("no tokens lists as empty", func(t *testing.T) {
		te := setupExecutor(t)
		te.minting.EXPECT().GetOwnedTokens(ctx, domain.Identity("dave")).Return(nil, nil)

		ids, err := te.exec.GetOwnedTokenIDs(ctx, "dave")
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})
}
