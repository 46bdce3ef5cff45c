package minting_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/auth"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/emitter"
	"github.com/feral-file/ff-tipping-ledger/internal/governance"
	"github.com/feral-file/ff-tipping-ledger/internal/minting"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
	"github.com/feral-file/ff-tipping-ledger/internal/state"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

const (
	admin    domain.Identity = "admin"
	platform domain.Identity = "platform"
	alice    domain.Identity = "alice"
	bob      domain.Identity = "bob"
	carol    domain.Identity = "carol"
	mallory  domain.Identity = "mallory"

	articleA domain.ItemID = "article-a"
	articleB domain.ItemID = "article-b"

	uri = "ipfs://metadata"
)

var now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

var everyoneButMallory = auth.AuthorizerFunc(func(_ context.Context, identity domain.Identity) bool {
	return identity != mallory
})

type fixture struct {
	store      store.Store
	governance governance.Module
	gate       minting.Gate
}

func setup(t *testing.T, em emitter.Emitter) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	if em == nil {
		em = emitter.NewNoopEmitter()
	}

	st := store.NewMemoryStore()
	guard := auth.NewGuard(everyoneButMallory)
	jsonAdapter := adapter.NewJSON()

	return &fixture{
		store:      st,
		governance: governance.NewModule(st, guard, jsonAdapter),
		gate:       minting.NewGate(st, guard, em, clock, jsonAdapter, nil),
	}
}

func (f *fixture) initialize(t *testing.T) {
	t.Helper()
	require.NoError(t, f.governance.Initialize(context.Background(), admin, platform, nil, big.NewInt(100_000_000)))
}

func amount(v int64) *big.Int {
	return big.NewInt(v)
}

func TestMintExampleScenario(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)

	tokenID, err := f.gate.Mint(ctx, alice, articleA, amount(110_000_000), uri)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tokenID)

	token, err := f.gate.GetToken(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, &domain.CollectibleToken{
		TokenID:         1,
		ItemID:          articleA,
		Owner:           alice,
		Minter:          alice,
		MetadataURI:     uri,
		MintedAt:        uint64(now.Unix()),
		TipAmountAtMint: amount(110_000_000),
	}, token)

	minted, err := f.gate.IsItemMinted(ctx, articleA)
	require.NoError(t, err)
	assert.True(t, minted)

	byItem, err := f.gate.GetTokenByItem(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, token, byItem)

	owned, err := f.gate.GetOwnedTokens(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, owned)
}

func TestMintRules(t *testing.T) {
	ctx := context.Background()

	t.Run("no tips against default threshold", func(t *testing.T) {
		f := setup(t, nil)

		_, err := f.gate.Mint(ctx, alice, articleA, amount(0), uri)
		assert.ErrorIs(t, err, domain.ErrBelowThreshold)

		threshold, err := f.gate.GetThreshold(ctx)
		require.NoError(t, err)
		assert.Equal(t, amount(100_000_000), threshold)
	})

	t.Run("exactly at threshold succeeds", func(t *testing.T) {
		f := setup(t, nil)
		f.initialize(t)

		_, err := f.gate.Mint(ctx, alice, articleA, amount(99_999_999), uri)
		assert.ErrorIs(t, err, domain.ErrBelowThreshold)

		tokenID, err := f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), tokenID)
	})

	t.Run("second mint fails regardless of snapshot", func(t *testing.T) {
		f := setup(t, nil)
		f.initialize(t)

		_, err := f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
		require.NoError(t, err)

		_, err = f.gate.Mint(ctx, bob, articleA, amount(0), uri)
		assert.ErrorIs(t, err, domain.ErrAlreadyMinted)

		_, err = f.gate.MintWithReference(ctx, alice, articleA, amount(1_000_000_000), uri, "ar-tx")
		assert.ErrorIs(t, err, domain.ErrAlreadyMinted)
	})

	t.Run("threshold follows governance", func(t *testing.T) {
		f := setup(t, nil)
		f.initialize(t)
		require.NoError(t, f.governance.SetThreshold(ctx, admin, amount(5)))

		_, err := f.gate.Mint(ctx, alice, articleA, amount(5), uri)
		require.NoError(t, err)
	})

	t.Run("snapshot beyond i128", func(t *testing.T) {
		f := setup(t, nil)
		f.initialize(t)

		_, err := f.gate.Mint(ctx, alice, articleA, new(big.Int).Lsh(big.NewInt(1), 200), uri)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		minted, err := f.gate.IsItemMinted(ctx, articleA)
		require.NoError(t, err)
		assert.False(t, minted)
	})

	t.Run("unauthorized author", func(t *testing.T) {
		f := setup(t, nil)
		f.initialize(t)

		_, err := f.gate.Mint(ctx, mallory, articleA, amount(100_000_000), uri)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		minted, err := f.gate.IsItemMinted(ctx, articleA)
		require.NoError(t, err)
		assert.False(t, minted)
	})

	t.Run("token ids are sequential", func(t *testing.T) {
		f := setup(t, nil)
		f.initialize(t)

		for i, item := range []domain.ItemID{articleA, articleB, "article-c"} {
			tokenID, err := f.gate.Mint(ctx, alice, item, amount(100_000_000), uri)
			require.NoError(t, err)
			assert.Equal(t, uint64(i+1), tokenID)
		}
	})
}

func TestMintWithReference(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)

	tokenID, err := f.gate.MintWithReference(ctx, alice, articleA, amount(100_000_000), uri, "ar-tx")
	require.NoError(t, err)

	token, err := f.gate.GetToken(ctx, tokenID)
	require.NoError(t, err)
	require.NotNil(t, token.PermanentRef)
	assert.Equal(t, "ar-tx", *token.PermanentRef)

	_, err = f.gate.MintWithReference(ctx, alice, articleB, amount(0), uri, "ar-tx")
	assert.ErrorIs(t, err, domain.ErrBelowThreshold)

	_, err = f.gate.MintWithReference(ctx, alice, articleB, amount(100_000_000), uri, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMintPauseAsymmetry(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)
	require.NoError(t, f.governance.Pause(ctx, admin))

	_, err := f.gate.MintWithReference(ctx, alice, articleA, amount(100_000_000), uri, "ar-tx")
	assert.ErrorIs(t, err, domain.ErrContractPaused)

	// the legacy mint ignores the pause flag
	tokenID, err := f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
	require.NoError(t, err)

	// transfers ignore the pause flag
	require.NoError(t, f.gate.Transfer(ctx, alice, bob, tokenID))
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)

	first, err := f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
	require.NoError(t, err)
	second, err := f.gate.Mint(ctx, alice, articleB, amount(100_000_000), uri)
	require.NoError(t, err)

	tests := []struct {
		name        string
		from        domain.Identity
		to          domain.Identity
		tokenID     uint64
		expectedErr error
	}{
		{name: "unknown token", from: alice, to: bob, tokenID: 99, expectedErr: domain.ErrTokenNotFound},
		{name: "not owner", from: bob, to: carol, tokenID: first, expectedErr: domain.ErrNotOwner},
		{name: "unauthorized", from: mallory, to: bob, tokenID: first, expectedErr: domain.ErrUnauthorized},
		{name: "invalid recipient", from: alice, to: "", tokenID: first, expectedErr: domain.ErrInvalidArgument},
		{name: "owner transfers", from: alice, to: bob, tokenID: first},
		{name: "previous owner can no longer transfer", from: alice, to: carol, tokenID: first, expectedErr: domain.ErrNotOwner},
		{name: "new owner transfers on", from: bob, to: carol, tokenID: first},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.gate.Transfer(ctx, tt.from, tt.to, tt.tokenID)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	owner, err := f.gate.GetOwner(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, carol, owner)

	assertOwned(t, f, alice, []uint64{second})
	assertOwned(t, f, bob, []uint64{})
	assertOwned(t, f, carol, []uint64{first})

	_, err = f.gate.GetOwner(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestRegistrySizeInvariantAcrossTransfers(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)

	owners := []domain.Identity{alice, bob, carol}
	var tokenIDs []uint64
	for _, item := range []domain.ItemID{"a", "b", "c", "d"} {
		id, err := f.gate.Mint(ctx, alice, item, amount(100_000_000), uri)
		require.NoError(t, err)
		tokenIDs = append(tokenIDs, id)
	}

	for step := 0; step < 12; step++ {
		tokenID := tokenIDs[step%len(tokenIDs)]
		from, err := f.gate.GetOwner(ctx, tokenID)
		require.NoError(t, err)
		to := owners[(step+1)%len(owners)]
		require.NoError(t, f.gate.Transfer(ctx, from, to, tokenID))

		seen := map[uint64]domain.Identity{}
		for _, owner := range owners {
			owned, err := f.gate.GetOwnedTokens(ctx, owner)
			require.NoError(t, err)
			for _, id := range owned {
				_, dup := seen[id]
				assert.False(t, dup, "token %d listed twice", id)
				seen[id] = owner

				actual, err := f.gate.GetOwner(ctx, id)
				require.NoError(t, err)
				assert.Equal(t, owner, actual)
			}
		}
		assert.Len(t, seen, len(tokenIDs))
	}
}

func TestTransferToSelfKeepsRegistry(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)

	tokenID, err := f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
	require.NoError(t, err)
	require.NoError(t, f.gate.Transfer(ctx, alice, alice, tokenID))

	assertOwned(t, f, alice, []uint64{tokenID})
}

func TestTransferDetectsRegistryDesync(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	f.initialize(t)

	tokenID, err := f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
	require.NoError(t, err)

	// drop the token from the owner's list behind the gate's back
	err = f.store.Update(ctx, func(tx store.Tx) error {
		return state.New(tx, adapter.NewJSON()).PutOwnedTokens(alice, []uint64{})
	})
	require.NoError(t, err)

	err = f.gate.Transfer(ctx, alice, bob, tokenID)
	assert.ErrorIs(t, err, domain.ErrRegistryDesync)

	owner, err := f.gate.GetOwner(ctx, tokenID)
	require.NoError(t, err)
	assert.Equal(t, alice, owner, "failed transfer must not change the owner")
	assertOwned(t, f, bob, []uint64{})
}

func TestGetTokenByItemNotMinted(t *testing.T) {
	f := setup(t, nil)

	_, err := f.gate.GetTokenByItem(context.Background(), articleA)
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)

	owned, err := f.gate.GetOwnedTokens(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	em := mocks.NewMockEmitter(ctrl)
	f := setup(t, em)
	f.initialize(t)

	gomock.InOrder(
		em.EXPECT().Emit(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.LedgerEvent) {
			assert.Equal(t, domain.EventKindCollectibleMinted, event.Kind)
			assert.Equal(t, uint64(1), event.TokenID)
			assert.Equal(t, alice, event.Actors[domain.ActorMinter])
			require.NotNil(t, event.PermanentRef)
		}),
		em.EXPECT().Emit(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.LedgerEvent) {
			assert.Equal(t, domain.EventKindCollectibleTransferred, event.Kind)
			assert.Equal(t, articleA, event.ItemID)
			assert.Equal(t, alice, event.Actors[domain.ActorFrom])
			assert.Equal(t, bob, event.Actors[domain.ActorTo])
		}),
	)

	tokenID, err := f.gate.MintWithReference(ctx, alice, articleA, amount(100_000_000), uri, "ar-tx")
	require.NoError(t, err)
	require.NoError(t, f.gate.Transfer(ctx, alice, bob, tokenID))

	_, err = f.gate.Mint(ctx, alice, articleA, amount(100_000_000), uri)
	assert.ErrorIs(t, err, domain.ErrAlreadyMinted)
}

func assertOwned(t *testing.T, f *fixture, owner domain.Identity, expected []uint64) {
	t.Helper()
	owned, err := f.gate.GetOwnedTokens(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, expected, owned)
}
