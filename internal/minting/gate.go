package minting

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
	"github.com/feral-file/ff-tipping-ledger/internal/state"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

// Gate mints at most one collectible per item and keeps the owner registry
//
//go:generate mockgen -source=gate.go -destination=../mocks/minting.go -package=mocks -mock_names=Gate=MockMintingGate
type Gate interface {
	// Mint issues the item's collectible to author when tipAmount reaches the tip threshold.
	// Legacy entry point: it ignores the pause flag.
	Mint(ctx context.Context, author domain.Identity, item domain.ItemID, tipAmount *big.Int, metadataURI string) (uint64, error)
	// MintWithReference additionally stores an immutable permanent content reference.
	// It fails with domain.ErrContractPaused while paused.
	MintWithReference(ctx context.Context, author domain.Identity, item domain.ItemID, tipAmount *big.Int, metadataURI, ref string) (uint64, error)
	// Transfer moves tokenID from its owner to another identity
	Transfer(ctx context.Context, from, to domain.Identity, tokenID uint64) error

	GetOwner(ctx context.Context, tokenID uint64) (domain.Identity, error)
	GetToken(ctx context.Context, tokenID uint64) (*domain.CollectibleToken, error)
	IsItemMinted(ctx context.Context, item domain.ItemID) (bool, error)
	GetTokenByItem(ctx context.Context, item domain.ItemID) (*domain.CollectibleToken, error)
	GetOwnedTokens(ctx context.Context, owner domain.Identity) ([]uint64, error)
	GetThreshold(ctx context.Context) (*big.Int, error)
}

type gate struct {
	store   store.Store
	guard   auth.Guard
	emitter emitter.Emitter
	clock   adapter.Clock
	json    adapter.JSON
	metrics *metrics.LedgerMetrics
}

// NewGate creates a minting gate
func NewGate(
	st store.Store,
	guard auth.Guard,
	em emitter.Emitter,
	clock adapter.Clock,
	json adapter.JSON,
	m *metrics.LedgerMetrics,
) Gate {
	return &gate{
		store:   st,
		guard:   guard,
		emitter: em,
		clock:   clock,
		json:    json,
		metrics: m,
	}
}

type mintRequest struct {
	author      domain.Identity
	item        domain.ItemID
	tipAmount   *big.Int
	metadataURI string
	ref         *string
	pauseAware  bool
}

func (g *gate) Mint(ctx context.Context, author domain.Identity, item domain.ItemID, tipAmount *big.Int, metadataURI string) (uint64, error) {
	return g.mint(ctx, mintRequest{author: author, item: item, tipAmount: tipAmount, metadataURI: metadataURI})
}

func (g *gate) MintWithReference(ctx context.Context, author domain.Identity, item domain.ItemID, tipAmount *big.Int, metadataURI, ref string) (uint64, error) {
	if ref == "" {
		return 0, fmt.Errorf("%w: empty permanent reference", domain.ErrInvalidArgument)
	}
	return g.mint(ctx, mintRequest{author: author, item: item, tipAmount: tipAmount, metadataURI: metadataURI, ref: &ref, pauseAware: true})
}

func (g *gate) mint(ctx context.Context, req mintRequest) (uint64, error) {
	tokenID, err := g.mintToken(ctx, req)
	if err != nil {
		g.metrics.ObserveFailure("mint", err)
		return 0, err
	}
	g.metrics.ObserveCollectible("mint")
	return tokenID, nil
}

func (g *gate) mintToken(ctx context.Context, req mintRequest) (uint64, error) {
	logger.DebugCtx(ctx, "Minting collectible",
		zap.String("author", string(req.author)),
		zap.String("item", string(req.item)),
		zap.Stringer("tipAmount", req.tipAmount))

	if err := g.guard.RequireAuthorized(ctx, req.author); err != nil {
		return 0, err
	}
	if !req.item.Valid() {
		return 0, fmt.Errorf("%w: invalid item id", domain.ErrInvalidArgument)
	}
	if req.tipAmount == nil {
		return 0, fmt.Errorf("%w: missing tip amount", domain.ErrInvalidArgument)
	}

	var token *domain.CollectibleToken
	err := g.store.Update(ctx, func(tx store.Tx) error {
		st := state.New(tx, g.json)

		if req.pauseAware {
			if err := governance.RequireActive(st); err != nil {
				return err
			}
		}

		if _, minted, err := st.ItemToken(req.item); err != nil {
			return err
		} else if minted {
			return domain.ErrAlreadyMinted
		}

		threshold, err := st.TipThreshold()
		if err != nil {
			return err
		}
		if req.tipAmount.Cmp(threshold) < 0 {
			return domain.ErrBelowThreshold
		}
		if !domain.AmountInRange(req.tipAmount) {
			return fmt.Errorf("%w: tip amount exceeds 2^127-1", domain.ErrInvalidArgument)
		}

		tokenID, err := st.NextTokenID()
		if err != nil {
			return err
		}

		token = &domain.CollectibleToken{
			TokenID:         tokenID,
			ItemID:          req.item,
			Owner:           req.author,
			Minter:          req.author,
			MetadataURI:     req.metadataURI,
			PermanentRef:    req.ref,
			MintedAt:        adapter.UnixSeconds(g.clock.Now()),
			TipAmountAtMint: new(big.Int).Set(req.tipAmount),
		}
		if err := st.PutToken(token); err != nil {
			return err
		}

		owned, err := st.OwnedTokens(req.author)
		if err != nil {
			return err
		}
		if err := st.PutOwnedTokens(req.author, append(owned, tokenID)); err != nil {
			return err
		}

		return st.PutItemToken(req.item, tokenID)
	})
	if err != nil {
		return 0, err
	}

	logger.InfoCtx(ctx, "Collectible minted",
		zap.Uint64("tokenID", token.TokenID),
		zap.String("item", string(token.ItemID)),
		zap.String("owner", string(token.Owner)))

	g.emitter.Emit(ctx, &domain.LedgerEvent{
		Kind:         domain.EventKindCollectibleMinted,
		ItemID:       token.ItemID,
		Actors:       map[string]domain.Identity{domain.ActorMinter: token.Minter},
		Amount:       token.TipAmountAtMint,
		TokenID:      token.TokenID,
		PermanentRef: token.PermanentRef,
	})

	return token.TokenID, nil
}

func (g *gate) Transfer(ctx context.Context, from, to domain.Identity, tokenID uint64) error {
	err := g.transfer(ctx, from, to, tokenID)
	if err != nil {
		g.metrics.ObserveFailure("transfer", err)
		return err
	}
	g.metrics.ObserveCollectible("transfer")
	return nil
}

func (g *gate) transfer(ctx context.Context, from, to domain.Identity, tokenID uint64) error {
	logger.DebugCtx(ctx, "Transferring collectible",
		zap.Uint64("tokenID", tokenID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	if err := g.guard.RequireAuthorized(ctx, from); err != nil {
		return err
	}
	if !to.Valid() {
		return fmt.Errorf("%w: invalid recipient", domain.ErrInvalidArgument)
	}

	var itemID domain.ItemID
	err := g.store.Update(ctx, func(tx store.Tx) error {
		st := state.New(tx, g.json)

		token, found, err := st.Token(tokenID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrTokenNotFound
		}
		if token.Owner != from {
			return domain.ErrNotOwner
		}
		itemID = token.ItemID

		token.Owner = to
		if err := st.PutToken(token); err != nil {
			return err
		}

		fromTokens, err := st.OwnedTokens(from)
		if err != nil {
			return err
		}
		fromTokens, removed := removeTokenID(fromTokens, tokenID)
		if !removed {
			logger.ErrorCtx(ctx, errors.New("owner registry out of sync with token record"),
				zap.Uint64("tokenID", tokenID),
				zap.String("owner", string(from)))
			return fmt.Errorf("%w: token %d missing from %s", domain.ErrRegistryDesync, tokenID, from)
		}
		if err := st.PutOwnedTokens(from, fromTokens); err != nil {
			return err
		}

		toTokens, err := st.OwnedTokens(to)
		if err != nil {
			return err
		}
		return st.PutOwnedTokens(to, append(toTokens, tokenID))
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Collectible transferred",
		zap.Uint64("tokenID", tokenID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))

	g.emitter.Emit(ctx, &domain.LedgerEvent{
		Kind:    domain.EventKindCollectibleTransferred,
		ItemID:  itemID,
		Actors:  map[string]domain.Identity{domain.ActorFrom: from, domain.ActorTo: to},
		TokenID: tokenID,
	})

	return nil
}

// removeTokenID removes the first occurrence of id and reports whether it was present
func removeTokenID(ids []uint64, id uint64) ([]uint64, bool) {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...), true
		}
	}
	return ids, false
}

func (g *gate) view(ctx context.Context, fn func(st *state.State) error) error {
	return g.store.View(ctx, func(tx store.Tx) error {
		return fn(state.New(tx, g.json))
	})
}

func (g *gate) GetToken(ctx context.Context, tokenID uint64) (*domain.CollectibleToken, error) {
	var token *domain.CollectibleToken
	err := g.view(ctx, func(st *state.State) error {
		t, found, err := st.Token(tokenID)
		if err != nil {
			return err
		}
		if !found {
			return domain.ErrTokenNotFound
		}
		token = t
		return nil
	})
	return token, err
}

func (g *gate) GetOwner(ctx context.Context, tokenID uint64) (domain.Identity, error) {
	token, err := g.GetToken(ctx, tokenID)
	if err != nil {
		return "", err
	}
	return token.Owner, nil
}

func (g *gate) IsItemMinted(ctx context.Context, item domain.ItemID) (bool, error) {
	var minted bool
	err := g.view(ctx, func(st *state.State) error {
		var err error
		_, minted, err = st.ItemToken(item)
		return err
	})
	return minted, err
}

// GetTokenByItem returns domain.ErrTokenNotFound when the item has not been minted
func (g *gate) GetTokenByItem(ctx context.Context, item domain.ItemID) (*domain.CollectibleToken, error) {
	var token *domain.CollectibleToken
	err := g.view(ctx, func(st *state.State) error {
		tokenID, minted, err := st.ItemToken(item)
		if err != nil {
			return err
		}
		if !minted {
			return domain.ErrTokenNotFound
		}
		t, found, err := st.Token(tokenID)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%w: item %s points at missing token %d", domain.ErrRegistryDesync, item, tokenID)
		}
		token = t
		return nil
	})
	return token, err
}

func (g *gate) GetOwnedTokens(ctx context.Context, owner domain.Identity) ([]uint64, error) {
	var ids []uint64
	err := g.view(ctx, func(st *state.State) error {
		var err error
		ids, err = st.OwnedTokens(owner)
		return err
	})
	return ids, err
}

func (g *gate) GetThreshold(ctx context.Context) (*big.Int, error) {
	var threshold *big.Int
	err := g.view(ctx, func(st *state.State) error {
		var err error
		threshold, err = st.TipThreshold()
		return err
	})
	return threshold, err
}
