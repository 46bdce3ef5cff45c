package tipping_test

import (
	"context"
	"errors"
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
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
	"github.com/feral-file/ff-tipping-ledger/internal/settlement"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
	"github.com/feral-file/ff-tipping-ledger/internal/tipping"
)

const (
	admin    domain.Identity = "admin"
	platform domain.Identity = "platform"
	alice    domain.Identity = "alice"
	bob      domain.Identity = "bob"
	creator  domain.Identity = "creator"
	mallory  domain.Identity = "mallory"

	articleA domain.ItemID = "article-a"
	articleB domain.ItemID = "article-b"
)

var now = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

// everyoneButMallory authorizes every identity except mallory
var everyoneButMallory = auth.AuthorizerFunc(func(_ context.Context, identity domain.Identity) bool {
	return identity != mallory
})

type fixture struct {
	store      store.Store
	governance governance.Module
	engine     tipping.Engine
	ledger     *settlement.MemoryLedger
}

type options struct {
	external bool
	emitter  emitter.Emitter
	store    store.Store
}

func setup(t *testing.T, opts options) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	st := opts.store
	if st == nil {
		st = store.NewMemoryStore()
	}
	em := opts.emitter
	if em == nil {
		em = emitter.NewNoopEmitter()
	}

	jsonAdapter := adapter.NewJSON()
	guard := auth.NewGuard(everyoneButMallory)

	f := &fixture{store: st, ledger: settlement.NewMemoryLedger()}

	var mover settlement.ValueMover
	if opts.external {
		mover = settlement.NewExternalLedgerMover(f.ledger)
	} else {
		mover = settlement.NewInternalAccumulatorMover(jsonAdapter)
	}

	f.governance = governance.NewModule(st, guard, jsonAdapter)
	f.engine = tipping.NewEngine(st, guard, mover, em, clock, jsonAdapter, nil)
	return f
}

func (f *fixture) initialize(t *testing.T) {
	t.Helper()
	fee := uint32(250)
	require.NoError(t, f.governance.Initialize(context.Background(), admin, platform, &fee, big.NewInt(100_000_000)))
}

func amount(v int64) *big.Int {
	return big.NewInt(v)
}

func TestExampleScenario(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{external: true})
	f.initialize(t)
	f.ledger.Deposit(alice, amount(200_000_000))

	first, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(60_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), first.TipID)
	assert.Equal(t, amount(1_500_000), first.PlatformFee)
	assert.Equal(t, amount(58_500_000), first.CreatorReceived)
	assert.Equal(t, uint64(now.Unix()), first.Timestamp)
	assert.True(t, first.Balanced())

	second, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(50_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.TipID)
	assert.True(t, second.Balanced())

	total, err := f.engine.GetItemTotal(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, amount(110_000_000), total)

	volume, err := f.engine.GetVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, amount(110_000_000), volume)

	tips, err := f.engine.GetItemTips(ctx, articleA)
	require.NoError(t, err)
	require.Len(t, tips, 2)
	assert.Equal(t, alice, tips[0].Tipper)
	assert.Equal(t, amount(60_000_000), tips[0].Amount)

	creatorBalance, err := f.engine.GetBalance(ctx, creator)
	require.NoError(t, err)
	assert.Equal(t, amount(58_500_000+48_750_000), creatorBalance)

	platformBalance, err := f.engine.GetBalance(ctx, platform)
	require.NoError(t, err)
	assert.Equal(t, amount(1_500_000+1_250_000), platformBalance)

	eligible, err := f.engine.IsEligible(ctx, articleA, nil)
	require.NoError(t, err)
	assert.True(t, eligible)
}

func TestFeeSplit(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})
	f.initialize(t)

	tests := []struct {
		name            string
		amount          int64
		expectedFee     int64
		expectedCreator int64
	}{
		{name: "minimum tip", amount: 100_000, expectedFee: 2_500, expectedCreator: 97_500},
		{name: "fee rounds down", amount: 100_039, expectedFee: 2_500, expectedCreator: 97_539},
		{name: "large tip", amount: 1_000_000_000, expectedFee: 25_000_000, expectedCreator: 975_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(tt.amount))
			require.NoError(t, err)
			assert.Equal(t, amount(tt.expectedFee), receipt.PlatformFee)
			assert.Equal(t, amount(tt.expectedCreator), receipt.CreatorReceived)
			assert.True(t, receipt.Balanced())
		})
	}
}

func TestValidation(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})

	_, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(1_000_000))
	assert.ErrorIs(t, err, domain.ErrNotInitialized)

	f.initialize(t)

	tests := []struct {
		name        string
		tipper      domain.Identity
		item        domain.ItemID
		creator     domain.Identity
		amount      *big.Int
		expectedErr error
	}{
		{name: "below minimum", tipper: alice, item: articleA, creator: creator, amount: amount(99_999), expectedErr: domain.ErrBelowMinimum},
		{name: "missing amount", tipper: alice, item: articleA, creator: creator, amount: nil, expectedErr: domain.ErrBelowMinimum},
		{name: "negative amount", tipper: alice, item: articleA, creator: creator, amount: amount(-1_000_000), expectedErr: domain.ErrBelowMinimum},
		{name: "unauthorized tipper", tipper: mallory, item: articleA, creator: creator, amount: amount(1_000_000), expectedErr: domain.ErrUnauthorized},
		{name: "invalid item", tipper: alice, item: "", creator: creator, amount: amount(1_000_000), expectedErr: domain.ErrInvalidArgument},
		{name: "invalid creator", tipper: alice, item: articleA, creator: "has space", amount: amount(1_000_000), expectedErr: domain.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.engine.RecordTip(ctx, tt.tipper, tt.item, tt.creator, tt.amount)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	tips, err := f.engine.GetItemTips(ctx, articleA)
	require.NoError(t, err)
	assert.Empty(t, tips)

	volume, err := f.engine.GetVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, volume.Sign())
}

func TestAmountRange(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})
	f.initialize(t)

	huge := new(big.Int).Lsh(big.NewInt(1), 200)

	_, err := f.engine.RecordTip(ctx, alice, articleA, creator, huge)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = f.engine.RecordHighlightTip(ctx, alice, "highlight-1", articleA, creator, huge)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// a tip of exactly 2^127-1 fits
	receipt, err := f.engine.RecordTip(ctx, alice, articleA, creator, domain.MaxAmount())
	require.NoError(t, err)
	assert.True(t, receipt.Balanced())

	tests := []struct {
		name   string
		record func() error
	}{
		{
			name: "item total would overflow",
			record: func() error {
				_, err := f.engine.RecordTip(ctx, bob, articleA, creator, domain.MinimumTip())
				return err
			},
		},
		{
			name: "global volume would overflow on another item",
			record: func() error {
				_, err := f.engine.RecordTip(ctx, bob, articleB, creator, domain.MinimumTip())
				return err
			},
		},
		{
			name: "global volume would overflow on a highlight",
			record: func() error {
				_, err := f.engine.RecordHighlightTip(ctx, bob, "highlight-1", articleB, creator, domain.MinimumTip())
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.record(), domain.ErrInvalidArgument)
		})
	}

	total, err := f.engine.GetItemTotal(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, 0, domain.MaxAmount().Cmp(total))

	volume, err := f.engine.GetVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, domain.MaxAmount().Cmp(volume))

	tips, err := f.engine.GetItemTips(ctx, articleB)
	require.NoError(t, err)
	assert.Empty(t, tips)
}

func TestTipIDsAreSharedAndMonotonic(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})
	f.initialize(t)

	var ids []uint64
	for i := 0; i < 3; i++ {
		r, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(100_000))
		require.NoError(t, err)
		ids = append(ids, r.TipID)

		r, err = f.engine.RecordHighlightTip(ctx, bob, "highlight-1", articleB, creator, amount(100_000))
		require.NoError(t, err)
		ids = append(ids, r.TipID)

		r, err = f.engine.RecordTipWithReference(ctx, bob, articleB, creator, amount(100_000), "ar-tx")
		require.NoError(t, err)
		ids = append(ids, r.TipID)
	}

	for i, id := range ids {
		assert.Equal(t, uint64(i+1), id)
	}
}

func TestHighlightTipsAreSeparateStream(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})
	f.initialize(t)

	_, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(1_000_000))
	require.NoError(t, err)
	_, err = f.engine.RecordHighlightTip(ctx, bob, "highlight-1", articleA, creator, amount(2_000_000))
	require.NoError(t, err)

	total, err := f.engine.GetItemTotal(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, amount(1_000_000), total)

	volume, err := f.engine.GetVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, amount(3_000_000), volume)

	tips, err := f.engine.GetHighlightTips(ctx, "highlight-1")
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Equal(t, domain.HighlightTipRecord{
		HighlightID: "highlight-1",
		ItemID:      articleA,
		Tipper:      bob,
		Amount:      amount(2_000_000),
		Timestamp:   uint64(now.Unix()),
	}, tips[0])

	itemTips, err := f.engine.GetItemTips(ctx, articleA)
	require.NoError(t, err)
	assert.Len(t, itemTips, 1)

	unseen, err := f.engine.GetHighlightTips(ctx, "unseen")
	require.NoError(t, err)
	assert.Empty(t, unseen)
}

func TestItemTotalsIndependentOfInterleaving(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})
	f.initialize(t)

	amountsA := []int64{100_000, 250_000, 1_000_000, 333_333}
	amountsB := []int64{500_000, 100_001}

	for i := 0; i < len(amountsA); i++ {
		_, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(amountsA[i]))
		require.NoError(t, err)
		if i < len(amountsB) {
			_, err = f.engine.RecordTip(ctx, bob, articleB, creator, amount(amountsB[i]))
			require.NoError(t, err)
		}
	}

	totalA, err := f.engine.GetItemTotal(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, amount(1_683_333), totalA)

	totalB, err := f.engine.GetItemTotal(ctx, articleB)
	require.NoError(t, err)
	assert.Equal(t, amount(600_001), totalB)

	unseen, err := f.engine.GetItemTotal(ctx, "unseen")
	require.NoError(t, err)
	assert.Equal(t, 0, unseen.Sign())
}

func TestPauseAsymmetry(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})
	f.initialize(t)
	require.NoError(t, f.governance.Pause(ctx, admin))

	_, err := f.engine.RecordTipWithReference(ctx, alice, articleA, creator, amount(1_000_000), "ar-tx")
	assert.ErrorIs(t, err, domain.ErrContractPaused)

	_, err = f.engine.RecordHighlightTipWithReference(ctx, alice, "highlight-1", articleA, creator, amount(1_000_000), "ar-tx")
	assert.ErrorIs(t, err, domain.ErrContractPaused)

	// legacy entry points ignore the pause flag
	receipt, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.TipID)

	receipt, err = f.engine.RecordHighlightTip(ctx, alice, "highlight-1", articleA, creator, amount(1_000_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), receipt.TipID)

	require.NoError(t, f.governance.Unpause(ctx, admin))
	receipt, err = f.engine.RecordTipWithReference(ctx, alice, articleA, creator, amount(1_000_000), "ar-tx")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), receipt.TipID)
}

func TestTransferFailureLeavesNoState(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{external: true})
	f.initialize(t)
	f.ledger.Deposit(alice, amount(500_000))

	_, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(1_000_000))
	assert.ErrorIs(t, err, domain.ErrTransferFailed)

	tips, err := f.engine.GetItemTips(ctx, articleA)
	require.NoError(t, err)
	assert.Empty(t, tips)

	total, err := f.engine.GetItemTotal(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, 0, total.Sign())

	balance, err := f.engine.GetBalance(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, amount(500_000), balance)

	receipt, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(500_000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), receipt.TipID)
}

// failingCommitStore runs the update callback and then refuses to commit
type failingCommitStore struct {
	store.Store
	fail bool
}

var errCommit = errors.New("commit failed")

func (s *failingCommitStore) Update(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.Update(ctx, func(tx store.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		if s.fail {
			return errCommit
		}
		return nil
	})
}

func TestCommitFailureReversesSettlement(t *testing.T) {
	ctx := context.Background()
	st := &failingCommitStore{Store: store.NewMemoryStore()}
	f := setup(t, options{external: true, store: st})
	f.initialize(t)
	f.ledger.Deposit(alice, amount(10_000_000))

	st.fail = true
	_, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(1_000_000))
	assert.ErrorIs(t, err, errCommit)

	for identity, expected := range map[domain.Identity]int64{alice: 10_000_000, creator: 0, platform: 0} {
		balance, err := f.ledger.Balance(ctx, identity)
		require.NoError(t, err)
		assert.Equal(t, amount(expected), balance, identity)
	}

	total, err := f.engine.GetItemTotal(ctx, articleA)
	require.NoError(t, err)
	assert.Equal(t, 0, total.Sign())
}

func TestEventsAreEmittedAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	em := mocks.NewMockEmitter(ctrl)
	f := setup(t, options{emitter: em})
	f.initialize(t)

	em.EXPECT().Emit(ctx, gomock.Any()).Do(func(_ context.Context, event *domain.LedgerEvent) {
		assert.Equal(t, domain.EventKindHighlightTipRecorded, event.Kind)
		assert.Equal(t, domain.HighlightID("highlight-1"), event.HighlightID)
		assert.Equal(t, articleA, event.ItemID)
		assert.Equal(t, alice, event.Actors[domain.ActorTipper])
		assert.Equal(t, creator, event.Actors[domain.ActorCreator])
		assert.Equal(t, uint64(1), event.TipID)
		require.NotNil(t, event.PermanentRef)
		assert.Equal(t, "ar-tx", *event.PermanentRef)
	})

	_, err := f.engine.RecordHighlightTipWithReference(ctx, alice, "highlight-1", articleA, creator, amount(1_000_000), "ar-tx")
	require.NoError(t, err)

	// failed tips emit nothing
	_, err = f.engine.RecordTip(ctx, alice, articleA, creator, amount(1))
	assert.ErrorIs(t, err, domain.ErrBelowMinimum)
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("internal accumulator", func(t *testing.T) {
		f := setup(t, options{})
		f.initialize(t)
		assert.True(t, f.engine.SupportsWithdraw())

		_, err := f.engine.RecordTip(ctx, alice, articleA, creator, amount(60_000_000))
		require.NoError(t, err)

		_, err = f.engine.Withdraw(ctx, mallory)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		paid, err := f.engine.Withdraw(ctx, creator)
		require.NoError(t, err)
		assert.Equal(t, amount(58_500_000), paid)

		balance, err := f.engine.GetBalance(ctx, creator)
		require.NoError(t, err)
		assert.Equal(t, 0, balance.Sign())

		paid, err = f.engine.Withdraw(ctx, creator)
		require.NoError(t, err)
		assert.Equal(t, 0, paid.Sign())
	})

	t.Run("external ledger", func(t *testing.T) {
		f := setup(t, options{external: true})
		assert.False(t, f.engine.SupportsWithdraw())

		_, err := f.engine.Withdraw(ctx, creator)
		assert.ErrorIs(t, err, domain.ErrWithdrawUnsupported)
	})
}

func TestIsEligible(t *testing.T) {
	ctx := context.Background()
	f := setup(t, options{})

	eligible, err := f.engine.IsEligible(ctx, articleA, nil)
	require.NoError(t, err)
	assert.False(t, eligible)

	f.initialize(t)
	_, err = f.engine.RecordTip(ctx, alice, articleA, creator, amount(1_000_000))
	require.NoError(t, err)

	tests := []struct {
		threshold *big.Int
		expected  bool
	}{
		{threshold: amount(999_999), expected: true},
		{threshold: amount(1_000_000), expected: true},
		{threshold: amount(1_000_001), expected: false},
		{threshold: nil, expected: false},
	}
	for _, tt := range tests {
		eligible, err := f.engine.IsEligible(ctx, articleA, tt.threshold)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, eligible, "threshold %v", tt.threshold)
	}
}
