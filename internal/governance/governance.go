package governance

import (
	"context"
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/auth"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/state"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

// Module owns the admin identity, pause flag, platform fee and tip threshold
//
//go:generate mockgen -source=governance.go -destination=../mocks/governance.go -package=mocks -mock_names=Module=MockGovernance
type Module interface {
	// Initialize creates the configuration once. feeBps and threshold fall back to the platform defaults when nil.
	Initialize(ctx context.Context, admin, platform domain.Identity, feeBps *uint32, threshold *big.Int) error
	// SetFee updates the platform fee; fails with domain.ErrFeeTooHigh above MAX_PLATFORM_FEE_BPS
	SetFee(ctx context.Context, admin domain.Identity, feeBps uint32) error
	// SetThreshold updates the tip threshold used by the minting gate
	SetThreshold(ctx context.Context, admin domain.Identity, threshold *big.Int) error
	// Pause makes pause-aware entry points fail with domain.ErrContractPaused
	Pause(ctx context.Context, admin domain.Identity) error
	// Unpause clears the pause flag
	Unpause(ctx context.Context, admin domain.Identity) error
	// IsPaused reports the pause flag
	IsPaused(ctx context.Context) (bool, error)
	// Config returns the full configuration
	Config(ctx context.Context) (*domain.GovernanceConfig, error)
}

type module struct {
	store store.Store
	guard auth.Guard
	json  adapter.JSON
}

// NewModule creates a governance module
func NewModule(st store.Store, guard auth.Guard, json adapter.JSON) Module {
	return &module{
		store: st,
		guard: guard,
		json:  json,
	}
}

// RequireActive fails with domain.ErrContractPaused while the deployment is paused
func RequireActive(st *state.State) error {
	paused, err := st.Paused()
	if err != nil {
		return fmt.Errorf("failed to read pause flag: %w", err)
	}
	if paused {
		return domain.ErrContractPaused
	}
	return nil
}

func (m *module) Initialize(ctx context.Context, admin, platform domain.Identity, feeBps *uint32, threshold *big.Int) error {
	if !platform.Valid() {
		return fmt.Errorf("%w: invalid platform address", domain.ErrInvalidArgument)
	}

	cfg := &domain.GovernanceConfig{
		Admin:           admin,
		PlatformAddress: platform,
		PlatformFeeBps:  domain.DEFAULT_PLATFORM_FEE_BPS,
		TipThreshold:    domain.DefaultTipThreshold(),
	}
	if feeBps != nil {
		if *feeBps > domain.MAX_PLATFORM_FEE_BPS {
			return domain.ErrFeeTooHigh
		}
		cfg.PlatformFeeBps = *feeBps
	}
	if threshold != nil {
		if !domain.AmountInRange(threshold) {
			return fmt.Errorf("%w: tip threshold must be within [0, 2^127-1]", domain.ErrInvalidArgument)
		}
		cfg.TipThreshold = new(big.Int).Set(threshold)
	}

	err := m.store.Update(ctx, func(tx store.Tx) error {
		st := state.New(tx, m.json)

		initialized, err := st.Initialized()
		if err != nil {
			return err
		}
		if initialized {
			return domain.ErrAlreadyInitialized
		}
		if err := m.guard.RequireAuthorized(ctx, admin); err != nil {
			return err
		}

		return st.PutGovernance(cfg)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Governance initialized",
		zap.String("admin", string(admin)),
		zap.String("platform", string(platform)),
		zap.Uint32("fee_bps", cfg.PlatformFeeBps),
		zap.String("tip_threshold", cfg.TipThreshold.String()),
	)
	return nil
}

// adminUpdate authorizes admin, checks it against the stored admin and runs fn in the same transaction
func (m *module) adminUpdate(ctx context.Context, admin domain.Identity, fn func(st *state.State) error) error {
	if err := m.guard.RequireAuthorized(ctx, admin); err != nil {
		return err
	}

	return m.store.Update(ctx, func(tx store.Tx) error {
		st := state.New(tx, m.json)

		cfg, err := st.Governance()
		if err != nil {
			return err
		}
		if cfg.Admin != admin {
			return fmt.Errorf("%w: %s is not the admin", domain.ErrUnauthorized, admin)
		}

		return fn(st)
	})
}

func (m *module) SetFee(ctx context.Context, admin domain.Identity, feeBps uint32) error {
	err := m.adminUpdate(ctx, admin, func(st *state.State) error {
		if feeBps > domain.MAX_PLATFORM_FEE_BPS {
			return domain.ErrFeeTooHigh
		}
		return st.SetFeeBps(feeBps)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Platform fee updated", zap.Uint32("fee_bps", feeBps))
	return nil
}

func (m *module) SetThreshold(ctx context.Context, admin domain.Identity, threshold *big.Int) error {
	if !domain.AmountInRange(threshold) {
		return fmt.Errorf("%w: tip threshold must be within [0, 2^127-1]", domain.ErrInvalidArgument)
	}

	err := m.adminUpdate(ctx, admin, func(st *state.State) error {
		return st.SetThreshold(threshold)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Tip threshold updated", zap.String("tip_threshold", threshold.String()))
	return nil
}

func (m *module) Pause(ctx context.Context, admin domain.Identity) error {
	return m.setPaused(ctx, admin, true)
}

func (m *module) Unpause(ctx context.Context, admin domain.Identity) error {
	return m.setPaused(ctx, admin, false)
}

func (m *module) setPaused(ctx context.Context, admin domain.Identity, paused bool) error {
	err := m.adminUpdate(ctx, admin, func(st *state.State) error {
		return st.SetPaused(paused)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Pause flag updated", zap.Bool("paused", paused))
	return nil
}

func (m *module) IsPaused(ctx context.Context) (bool, error) {
	var paused bool
	err := m.store.View(ctx, func(tx store.Tx) error {
		var err error
		paused, err = state.New(tx, m.json).Paused()
		return err
	})
	return paused, err
}

func (m *module) Config(ctx context.Context) (*domain.GovernanceConfig, error) {
	var cfg *domain.GovernanceConfig
	err := m.store.View(ctx, func(tx store.Tx) error {
		var err error
		cfg, err = state.New(tx, m.json).Governance()
		return err
	})
	return cfg, err
}
