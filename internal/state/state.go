package state

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/store"
)

// ErrSequenceExhausted is returned when a global sequence cannot be incremented further
var ErrSequenceExhausted = errors.New("sequence exhausted")

// State gives typed access to the persisted ledger layout inside one store transaction.
// Reads of unseen keys return zero values rather than failing.
type State struct {
	tx   store.Tx
	json adapter.JSON
}

// New wraps a store transaction
func New(tx store.Tx, json adapter.JSON) *State {
	return &State{tx: tx, json: json}
}

func (s *State) get(class store.Class, key string, v interface{}) (bool, error) {
	data, ok, err := s.tx.Get(class, key)
	if err != nil || !ok {
		return ok, err
	}
	if err := s.json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *State) put(class store.Class, key string, v interface{}) error {
	data, err := s.json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.tx.Put(class, key, data)
}

func (s *State) getAmount(class store.Class, key string) (*big.Int, error) {
	amount := new(big.Int)
	if _, err := s.get(class, key, amount); err != nil {
		return nil, err
	}
	return amount, nil
}

// Initialized reports whether governance configuration exists
func (s *State) Initialized() (bool, error) {
	return s.tx.Has(store.ClassInstance, KeyAdmin)
}

// Governance reads the governance configuration
func (s *State) Governance() (*domain.GovernanceConfig, error) {
	var cfg domain.GovernanceConfig
	ok, err := s.get(store.ClassInstance, KeyAdmin, &cfg.Admin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotInitialized
	}
	if _, err := s.get(store.ClassInstance, KeyPlatform, &cfg.PlatformAddress); err != nil {
		return nil, err
	}
	if _, err := s.get(store.ClassInstance, KeyFeeBps, &cfg.PlatformFeeBps); err != nil {
		return nil, err
	}
	if _, err := s.get(store.ClassInstance, KeyPaused, &cfg.Paused); err != nil {
		return nil, err
	}
	if cfg.TipThreshold, err = s.getAmount(store.ClassInstance, KeyThreshold); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PutGovernance writes the full governance configuration
func (s *State) PutGovernance(cfg *domain.GovernanceConfig) error {
	if err := s.put(store.ClassInstance, KeyAdmin, cfg.Admin); err != nil {
		return err
	}
	if err := s.put(store.ClassInstance, KeyPlatform, cfg.PlatformAddress); err != nil {
		return err
	}
	if err := s.SetFeeBps(cfg.PlatformFeeBps); err != nil {
		return err
	}
	if err := s.SetThreshold(cfg.TipThreshold); err != nil {
		return err
	}
	return s.SetPaused(cfg.Paused)
}

func (s *State) SetFeeBps(feeBps uint32) error {
	return s.put(store.ClassInstance, KeyFeeBps, feeBps)
}

func (s *State) SetThreshold(threshold *big.Int) error {
	return s.put(store.ClassInstance, KeyThreshold, threshold)
}

func (s *State) SetPaused(paused bool) error {
	return s.put(store.ClassInstance, KeyPaused, paused)
}

// TipThreshold reads the minting threshold, falling back to the default before initialization
func (s *State) TipThreshold() (*big.Int, error) {
	threshold := new(big.Int)
	ok, err := s.get(store.ClassInstance, KeyThreshold, threshold)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.DefaultTipThreshold(), nil
	}
	return threshold, nil
}

// Paused reads the pause flag; an uninitialized deployment is not paused
func (s *State) Paused() (bool, error) {
	var paused bool
	_, err := s.get(store.ClassInstance, KeyPaused, &paused)
	return paused, err
}

func (s *State) next(key string) (uint64, error) {
	var current uint64
	if _, err := s.get(store.ClassInstance, key, &current); err != nil {
		return 0, err
	}
	if current == math.MaxUint64 {
		return 0, fmt.Errorf("%w: %s", ErrSequenceExhausted, key)
	}
	next := current + 1
	if err := s.put(store.ClassInstance, key, next); err != nil {
		return 0, err
	}
	return next, nil
}

// NextTipID increments the global tip sequence shared by item and highlight tips; the first id is 1
func (s *State) NextTipID() (uint64, error) {
	return s.next(KeyTipSeq)
}

// NextTokenID increments the global token sequence; the first id is 1
func (s *State) NextTokenID() (uint64, error) {
	return s.next(KeyTokenSeq)
}

// TipCount returns the last issued tip id
func (s *State) TipCount() (uint64, error) {
	var current uint64
	_, err := s.get(store.ClassInstance, KeyTipSeq, &current)
	return current, err
}

// TokenCount returns the last issued token id
func (s *State) TokenCount() (uint64, error) {
	var current uint64
	_, err := s.get(store.ClassInstance, KeyTokenSeq, &current)
	return current, err
}

// Volume returns the running total of all accepted tips
func (s *State) Volume() (*big.Int, error) {
	return s.getAmount(store.ClassInstance, KeyVolume)
}

func (s *State) AddVolume(amount *big.Int) error {
	volume, err := s.Volume()
	if err != nil {
		return err
	}
	return s.put(store.ClassInstance, KeyVolume, volume.Add(volume, amount))
}

func (s *State) ItemTips(item domain.ItemID) ([]domain.TipRecord, error) {
	tips := []domain.TipRecord{}
	if _, err := s.get(store.ClassPersistent, ItemTipsKey(item), &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

func (s *State) AppendItemTip(item domain.ItemID, tip domain.TipRecord) error {
	tips, err := s.ItemTips(item)
	if err != nil {
		return err
	}
	return s.put(store.ClassPersistent, ItemTipsKey(item), append(tips, tip))
}

func (s *State) ItemTotal(item domain.ItemID) (*big.Int, error) {
	return s.getAmount(store.ClassPersistent, ItemTotalKey(item))
}

func (s *State) AddItemTotal(item domain.ItemID, amount *big.Int) error {
	total, err := s.ItemTotal(item)
	if err != nil {
		return err
	}
	return s.put(store.ClassPersistent, ItemTotalKey(item), total.Add(total, amount))
}

func (s *State) HighlightTips(highlight domain.HighlightID) ([]domain.HighlightTipRecord, error) {
	tips := []domain.HighlightTipRecord{}
	if _, err := s.get(store.ClassPersistent, HighlightTipsKey(highlight), &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

func (s *State) AppendHighlightTip(tip domain.HighlightTipRecord) error {
	tips, err := s.HighlightTips(tip.HighlightID)
	if err != nil {
		return err
	}
	return s.put(store.ClassPersistent, HighlightTipsKey(tip.HighlightID), append(tips, tip))
}

// ItemToken returns the token id minted for item, if any
func (s *State) ItemToken(item domain.ItemID) (uint64, bool, error) {
	var tokenID uint64
	ok, err := s.get(store.ClassPersistent, ItemTokenKey(item), &tokenID)
	return tokenID, ok, err
}

func (s *State) PutItemToken(item domain.ItemID, tokenID uint64) error {
	return s.put(store.ClassPersistent, ItemTokenKey(item), tokenID)
}

func (s *State) Token(tokenID uint64) (*domain.CollectibleToken, bool, error) {
	var token domain.CollectibleToken
	ok, err := s.get(store.ClassPersistent, TokenKey(tokenID), &token)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &token, true, nil
}

func (s *State) PutToken(token *domain.CollectibleToken) error {
	return s.put(store.ClassPersistent, TokenKey(token.TokenID), token)
}

func (s *State) OwnedTokens(owner domain.Identity) ([]uint64, error) {
	ids := []uint64{}
	if _, err := s.get(store.ClassPersistent, OwnerTokensKey(owner), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *State) PutOwnedTokens(owner domain.Identity, ids []uint64) error {
	return s.put(store.ClassPersistent, OwnerTokensKey(owner), ids)
}

// Balance returns the internally accumulated balance of identity
func (s *State) Balance(identity domain.Identity) (*big.Int, error) {
	return s.getAmount(store.ClassPersistent, BalanceKey(identity))
}

func (s *State) PutBalance(identity domain.Identity, amount *big.Int) error {
	return s.put(store.ClassPersistent, BalanceKey(identity), amount)
}
