package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/governance"
	"github.com/feral-file/ff-tipping-ledger/internal/minting"
	"github.com/feral-file/ff-tipping-ledger/internal/tipping"
)

// ItemView is the public state of one item
type ItemView struct {
	ItemID domain.ItemID
	Total  *big.Int
	Tips   []domain.TipRecord
	// Collectible is nil until the item is minted
	Collectible *domain.CollectibleToken
}

// Executor serves the read side of the ledger to the REST and GraphQL surfaces
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Governance returns the governance configuration
	Governance(ctx context.Context) (*domain.GovernanceConfig, error)
	// IsPaused reports the pause flag
	IsPaused(ctx context.Context) (bool, error)

	// GetItem returns the total, tips and collectible of an item
	GetItem(ctx context.Context, item domain.ItemID) (*ItemView, error)
	GetItemTips(ctx context.Context, item domain.ItemID) ([]domain.TipRecord, error)
	GetItemTotal(ctx context.Context, item domain.ItemID) (*big.Int, error)
	// IsEligible checks the item total against threshold, or the governance threshold when nil
	IsEligible(ctx context.Context, item domain.ItemID, threshold *big.Int) (bool, error)
	GetHighlightTips(ctx context.Context, highlight domain.HighlightID) ([]domain.HighlightTipRecord, error)
	GetVolume(ctx context.Context) (*big.Int, error)
	GetBalance(ctx context.Context, identity domain.Identity) (*big.Int, error)

	// GetToken returns domain.ErrTokenNotFound for unknown ids
	GetToken(ctx context.Context, tokenID uint64) (*domain.CollectibleToken, error)
	// GetItemCollectible returns domain.ErrTokenNotFound when the item has not been minted
	GetItemCollectible(ctx context.Context, item domain.ItemID) (*domain.CollectibleToken, error)
	GetOwnedTokenIDs(ctx context.Context, owner domain.Identity) ([]uint64, error)
	// GetOwnedTokens expands GetOwnedTokenIDs into full tokens
	GetOwnedTokens(ctx context.Context, owner domain.Identity) ([]*domain.CollectibleToken, error)
	GetMintThreshold(ctx context.Context) (*big.Int, error)
}

type executor struct {
	governance governance.Module
	tipping    tipping.Engine
	minting    minting.Gate
}

func NewExecutor(gov governance.Module, engine tipping.Engine, gate minting.Gate) Executor {
	return &executor{governance: gov, tipping: engine, minting: gate}
}

func (e *executor) Governance(ctx context.Context) (*domain.GovernanceConfig, error) {
	return e.governance.Config(ctx)
}

func (e *executor) IsPaused(ctx context.Context) (bool, error) {
	return e.governance.IsPaused(ctx)
}

func (e *executor) GetItem(ctx context.Context, item domain.ItemID) (*ItemView, error) {
	if !item.Valid() {
		return nil, fmt.Errorf("%w: invalid item id", domain.ErrInvalidArgument)
	}

	total, err := e.tipping.GetItemTotal(ctx, item)
	if err != nil {
		return nil, err
	}
	tips, err := e.tipping.GetItemTips(ctx, item)
	if err != nil {
		return nil, err
	}
	token, err := e.minting.GetTokenByItem(ctx, item)
	if err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		return nil, err
	}

	return &ItemView{ItemID: item, Total: total, Tips: tips, Collectible: token}, nil
}

func (e *executor) GetItemTips(ctx context.Context, item domain.ItemID) ([]domain.TipRecord, error) {
	return e.tipping.GetItemTips(ctx, item)
}

func (e *executor) GetItemTotal(ctx context.Context, item domain.ItemID) (*big.Int, error) {
	return e.tipping.GetItemTotal(ctx, item)
}

func (e *executor) IsEligible(ctx context.Context, item domain.ItemID, threshold *big.Int) (bool, error) {
	return e.tipping.IsEligible(ctx, item, threshold)
}

func (e *executor) GetHighlightTips(ctx context.Context, highlight domain.HighlightID) ([]domain.HighlightTipRecord, error) {
	return e.tipping.GetHighlightTips(ctx, highlight)
}

func (e *executor) GetVolume(ctx context.Context) (*big.Int, error) {
	return e.tipping.GetVolume(ctx)
}

func (e *executor) GetBalance(ctx context.Context, identity domain.Identity) (*big.Int, error) {
	return e.tipping.GetBalance(ctx, identity)
}

func (e *executor) GetToken(ctx context.Context, tokenID uint64) (*domain.CollectibleToken, error) {
	return e.minting.GetToken(ctx, tokenID)
}

func (e *executor) GetItemCollectible(ctx context.Context, item domain.ItemID) (*domain.CollectibleToken, error) {
	return e.minting.GetTokenByItem(ctx, item)
}

func (e *executor) GetOwnedTokenIDs(ctx context.Context, owner domain.Identity) ([]uint64, error) {
	ids, err := e.minting.GetOwnedTokens(ctx, owner)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uint64{}
	}
	return ids, nil
}

func (e *executor) GetOwnedTokens(ctx context.Context, owner domain.Identity) ([]*domain.CollectibleToken, error) {
	ids, err := e.minting.GetOwnedTokens(ctx, owner)
	if err != nil {
		return nil, err
	}

	tokens := make([]*domain.CollectibleToken, 0, len(ids))
	for _, id := range ids {
		token, err := e.minting.GetToken(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load token %d: %w", id, err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func (e *executor) GetMintThreshold(ctx context.Context) (*big.Int, error) {
	return e.minting.GetThreshold(ctx)
}
