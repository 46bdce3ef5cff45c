package tipping

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/auth"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/emitter"
	"github.com/feral-file/ff-tipping-ledger/internal/governance"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/metrics"
	"github.com/feral-file/ff-tipping-ledger/internal/settlement"
	"github.com/feral-file/ff-tipping-ledger/internal/state"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

// Engine validates, settles and records tips
//
//go:generate mockgen -source=engine.go -destination=../mocks/tipping.go -package=mocks -mock_names=Engine=MockTippingEngine
type Engine interface {
	// RecordTip records a tip on an item. Legacy entry point: it ignores the pause flag.
	RecordTip(ctx context.Context, tipper domain.Identity, item domain.ItemID, creator domain.Identity, amount *big.Int) (*domain.TipReceipt, error)
	// RecordTipWithReference records a tip on an item carrying a permanent content reference.
	// It fails with domain.ErrContractPaused while paused.
	RecordTipWithReference(ctx context.Context, tipper domain.Identity, item domain.ItemID, creator domain.Identity, amount *big.Int, ref string) (*domain.TipReceipt, error)
	// RecordHighlightTip records a tip on a highlight of item. Legacy entry point: it ignores the pause flag.
	// The parent item's total is left untouched.
	RecordHighlightTip(ctx context.Context, tipper domain.Identity, highlight domain.HighlightID, item domain.ItemID, creator domain.Identity, amount *big.Int) (*domain.TipReceipt, error)
	// RecordHighlightTipWithReference is the pause-aware highlight tip carrying a permanent content reference
	RecordHighlightTipWithReference(ctx context.Context, tipper domain.Identity, highlight domain.HighlightID, item domain.ItemID, creator domain.Identity, amount *big.Int, ref string) (*domain.TipReceipt, error)

	GetItemTips(ctx context.Context, item domain.ItemID) ([]domain.TipRecord, error)
	GetHighlightTips(ctx context.Context, highlight domain.HighlightID) ([]domain.HighlightTipRecord, error)
	GetItemTotal(ctx context.Context, item domain.ItemID) (*big.Int, error)
	GetVolume(ctx context.Context) (*big.Int, error)
	GetBalance(ctx context.Context, identity domain.Identity) (*big.Int, error)
	// IsEligible reports whether the item's total reached threshold
	IsEligible(ctx context.Context, item domain.ItemID, threshold *big.Int) (bool, error)

	// Withdraw pays out the accumulated balance of identity
	Withdraw(ctx context.Context, identity domain.Identity) (*big.Int, error)
	SupportsWithdraw() bool
}

type engine struct {
	store   store.Store
	guard   auth.Guard
	mover   settlement.ValueMover
	emitter emitter.Emitter
	clock   adapter.Clock
	json    adapter.JSON
	metrics *metrics.LedgerMetrics
}

// NewEngine creates a tip accounting engine
func NewEngine(
	st store.Store,
	guard auth.Guard,
	mover settlement.ValueMover,
	em emitter.Emitter,
	clock adapter.Clock,
	json adapter.JSON,
	m *metrics.LedgerMetrics,
) Engine {
	return &engine{
		store:   st,
		guard:   guard,
		mover:   mover,
		emitter: em,
		clock:   clock,
		json:    json,
		metrics: m,
	}
}

// tipRequest is one tip on either the item stream or a highlight stream
type tipRequest struct {
	tipper     domain.Identity
	creator    domain.Identity
	item       domain.ItemID
	highlight  domain.HighlightID
	amount     *big.Int
	ref        *string
	pauseAware bool
}

func (r tipRequest) stream() string {
	if r.highlight != "" {
		return "highlight"
	}
	return "item"
}

func (r tipRequest) validate() error {
	if !r.item.Valid() {
		return fmt.Errorf("%w: invalid item id", domain.ErrInvalidArgument)
	}
	if !r.creator.Valid() {
		return fmt.Errorf("%w: invalid creator", domain.ErrInvalidArgument)
	}
	if r.stream() == "highlight" && !r.highlight.Valid() {
		return fmt.Errorf("%w: invalid highlight id", domain.ErrInvalidArgument)
	}
	if r.ref != nil && *r.ref == "" {
		return fmt.Errorf("%w: empty permanent reference", domain.ErrInvalidArgument)
	}
	return nil
}

func (e *engine) RecordTip(ctx context.Context, tipper domain.Identity, item domain.ItemID, creator domain.Identity, amount *big.Int) (*domain.TipReceipt, error) {
	return e.record(ctx, tipRequest{tipper: tipper, creator: creator, item: item, amount: amount})
}

func (e *engine) RecordTipWithReference(ctx context.Context, tipper domain.Identity, item domain.ItemID, creator domain.Identity, amount *big.Int, ref string) (*domain.TipReceipt, error) {
	return e.record(ctx, tipRequest{tipper: tipper, creator: creator, item: item, amount: amount, ref: &ref, pauseAware: true})
}

func (e *engine) RecordHighlightTip(ctx context.Context, tipper domain.Identity, highlight domain.HighlightID, item domain.ItemID, creator domain.Identity, amount *big.Int) (*domain.TipReceipt, error) {
	return e.record(ctx, tipRequest{tipper: tipper, creator: creator, item: item, highlight: highlight, amount: amount})
}

func (e *engine) RecordHighlightTipWithReference(ctx context.Context, tipper domain.Identity, highlight domain.HighlightID, item domain.ItemID, creator domain.Identity, amount *big.Int, ref string) (*domain.TipReceipt, error) {
	return e.record(ctx, tipRequest{tipper: tipper, creator: creator, item: item, highlight: highlight, amount: amount, ref: &ref, pauseAware: true})
}

func (e *engine) record(ctx context.Context, req tipRequest) (*domain.TipReceipt, error) {
	receipt, err := e.recordTip(ctx, req)
	if err != nil {
		e.metrics.ObserveFailure(req.stream()+"_tip", err)
		return nil, err
	}
	e.metrics.ObserveTip(req.stream(), receipt.CreatorReceived, receipt.PlatformFee)
	return receipt, nil
}

func (e *engine) recordTip(ctx context.Context, req tipRequest) (*domain.TipReceipt, error) {
	logger.DebugCtx(ctx, "Recording tip",
		zap.String("tipper", string(req.tipper)),
		zap.String("item", string(req.item)),
		zap.String("highlight", string(req.highlight)),
		zap.Stringer("amount", req.amount))

	if err := e.guard.RequireAuthorized(ctx, req.tipper); err != nil {
		return nil, err
	}
	if req.amount == nil || req.amount.Cmp(domain.MinimumTip()) < 0 {
		return nil, domain.ErrBelowMinimum
	}
	if !domain.AmountInRange(req.amount) {
		return nil, fmt.Errorf("%w: tip amount exceeds 2^127-1", domain.ErrInvalidArgument)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	var receipt *domain.TipReceipt
	var reversal settlement.Reversal

	err := e.store.Update(ctx, func(tx store.Tx) error {
		st := state.New(tx, e.json)

		if req.pauseAware {
			if err := governance.RequireActive(st); err != nil {
				return err
			}
		}

		cfg, err := st.Governance()
		if err != nil {
			return err
		}

		if err := checkAccumulators(st, req); err != nil {
			return err
		}

		creatorShare, platformFee := domain.SplitTip(req.amount, cfg.PlatformFeeBps)
		reversal, err = e.mover.Settle(ctx, tx, settlement.Split{
			Payer:        req.tipper,
			Creator:      req.creator,
			CreatorShare: creatorShare,
			Platform:     cfg.PlatformAddress,
			PlatformFee:  platformFee,
		})
		if err != nil {
			return err
		}

		tipID, err := st.NextTipID()
		if err != nil {
			return err
		}
		timestamp := adapter.UnixSeconds(e.clock.Now())

		if req.highlight != "" {
			err = st.AppendHighlightTip(domain.HighlightTipRecord{
				HighlightID: req.highlight,
				ItemID:      req.item,
				Tipper:      req.tipper,
				Amount:      req.amount,
				Timestamp:   timestamp,
			})
		} else {
			err = st.AppendItemTip(req.item, domain.TipRecord{
				Tipper:    req.tipper,
				Amount:    req.amount,
				Timestamp: timestamp,
			})
			if err == nil {
				err = st.AddItemTotal(req.item, req.amount)
			}
		}
		if err != nil {
			return err
		}
		if err := st.AddVolume(req.amount); err != nil {
			return err
		}

		receipt = &domain.TipReceipt{
			TipID:           tipID,
			AmountSent:      new(big.Int).Set(req.amount),
			CreatorReceived: creatorShare,
			PlatformFee:     platformFee,
			Timestamp:       timestamp,
		}
		return nil
	})
	if err != nil {
		if reversal != nil {
			if rerr := reversal(ctx); rerr != nil {
				logger.ErrorCtx(ctx, errors.New("failed to reverse settlement after aborted tip"),
					zap.Error(rerr),
					zap.NamedError("cause", err),
					zap.String("tipper", string(req.tipper)),
					zap.String("creator", string(req.creator)))
			}
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Tip recorded",
		zap.Uint64("tipID", receipt.TipID),
		zap.String("tipper", string(req.tipper)),
		zap.String("item", string(req.item)),
		zap.String("highlight", string(req.highlight)),
		zap.Stringer("amount", receipt.AmountSent),
		zap.Stringer("platformFee", receipt.PlatformFee))

	e.emitter.Emit(ctx, tipEvent(req, receipt))

	return receipt, nil
}

// checkAccumulators rejects a tip that would push the item total or the global volume past MaxAmount.
// Balances and shares never exceed the volume, so they stay in range too.
func checkAccumulators(st *state.State, req tipRequest) error {
	volume, err := st.Volume()
	if err != nil {
		return err
	}
	if !domain.AmountInRange(new(big.Int).Add(volume, req.amount)) {
		return fmt.Errorf("%w: global volume would exceed 2^127-1", domain.ErrInvalidArgument)
	}
	if req.highlight != "" {
		return nil
	}

	total, err := st.ItemTotal(req.item)
	if err != nil {
		return err
	}
	if !domain.AmountInRange(new(big.Int).Add(total, req.amount)) {
		return fmt.Errorf("%w: item total would exceed 2^127-1", domain.ErrInvalidArgument)
	}
	return nil
}

func tipEvent(req tipRequest, receipt *domain.TipReceipt) *domain.LedgerEvent {
	kind := domain.EventKindTipRecorded
	if req.highlight != "" {
		kind = domain.EventKindHighlightTipRecorded
	}
	return &domain.LedgerEvent{
		Kind:        kind,
		ItemID:      req.item,
		HighlightID: req.highlight,
		Actors: map[string]domain.Identity{
			domain.ActorTipper:  req.tipper,
			domain.ActorCreator: req.creator,
		},
		Amount:       receipt.AmountSent,
		TipID:        receipt.TipID,
		PermanentRef: req.ref,
	}
}

func (e *engine) view(ctx context.Context, fn func(st *state.State) error) error {
	return e.store.View(ctx, func(tx store.Tx) error {
		return fn(state.New(tx, e.json))
	})
}

func (e *engine) GetItemTips(ctx context.Context, item domain.ItemID) ([]domain.TipRecord, error) {
	var tips []domain.TipRecord
	err := e.view(ctx, func(st *state.State) error {
		var err error
		tips, err = st.ItemTips(item)
		return err
	})
	return tips, err
}

func (e *engine) GetHighlightTips(ctx context.Context, highlight domain.HighlightID) ([]domain.HighlightTipRecord, error) {
	var tips []domain.HighlightTipRecord
	err := e.view(ctx, func(st *state.State) error {
		var err error
		tips, err = st.HighlightTips(highlight)
		return err
	})
	return tips, err
}

func (e *engine) GetItemTotal(ctx context.Context, item domain.ItemID) (*big.Int, error) {
	var total *big.Int
	err := e.view(ctx, func(st *state.State) error {
		var err error
		total, err = st.ItemTotal(item)
		return err
	})
	return total, err
}

func (e *engine) GetVolume(ctx context.Context) (*big.Int, error) {
	var volume *big.Int
	err := e.view(ctx, func(st *state.State) error {
		var err error
		volume, err = st.Volume()
		return err
	})
	return volume, err
}

func (e *engine) GetBalance(ctx context.Context, identity domain.Identity) (*big.Int, error) {
	var balance *big.Int
	err := e.store.View(ctx, func(tx store.Tx) error {
		var err error
		balance, err = e.mover.Balance(ctx, tx, identity)
		return err
	})
	return balance, err
}

// IsEligible compares against threshold, or the configured tip threshold when threshold is nil
func (e *engine) IsEligible(ctx context.Context, item domain.ItemID, threshold *big.Int) (bool, error) {
	var eligible bool
	err := e.view(ctx, func(st *state.State) error {
		limit := threshold
		if limit == nil {
			var err error
			if limit, err = st.TipThreshold(); err != nil {
				return err
			}
		}

		total, err := st.ItemTotal(item)
		if err != nil {
			return err
		}
		eligible = total.Cmp(limit) >= 0
		return nil
	})
	return eligible, err
}

func (e *engine) Withdraw(ctx context.Context, identity domain.Identity) (*big.Int, error) {
	if !e.mover.SupportsWithdraw() {
		return nil, domain.ErrWithdrawUnsupported
	}
	if err := e.guard.RequireAuthorized(ctx, identity); err != nil {
		return nil, err
	}

	var paid *big.Int
	err := e.store.Update(ctx, func(tx store.Tx) error {
		var err error
		paid, err = e.mover.Withdraw(ctx, tx, identity)
		return err
	})
	if err != nil {
		e.metrics.ObserveFailure("withdraw", err)
		return nil, err
	}

	logger.InfoCtx(ctx, "Balance withdrawn",
		zap.String("identity", string(identity)),
		zap.Stringer("amount", paid))
	return paid, nil
}

func (e *engine) SupportsWithdraw() bool {
	return e.mover.SupportsWithdraw()
}
