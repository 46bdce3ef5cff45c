package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"
)

// Identity is an external account reference used for authorization and as a storage key component
type Identity string

// ItemID identifies a content item (an article) against which tips and mint eligibility are tracked
type ItemID string

// HighlightID identifies a sub-unit of an item with its own tip stream
type HighlightID string

// Valid checks if the identity can be used as a storage key component
func (i Identity) Valid() bool {
	return validIdentifier(string(i))
}

// Valid checks if the item id can be used as a storage key component
func (i ItemID) Valid() bool {
	return validIdentifier(string(i))
}

// Valid checks if the highlight id can be used as a storage key component
func (h HighlightID) Valid() bool {
	return validIdentifier(string(h))
}

func validIdentifier(s string) bool {
	if s == "" || len(s) > MAX_IDENTIFIER_LENGTH {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

// TipRecord is a single accepted tip appended to an item's tip sequence
type TipRecord struct {
	Tipper    Identity `json:"tipper"`
	Amount    *big.Int `json:"amount"`
	Timestamp uint64   `json:"timestamp"`
}

// HighlightTipRecord is a single accepted tip appended to a highlight's tip sequence
type HighlightTipRecord struct {
	HighlightID HighlightID `json:"highlight_id"`
	ItemID      ItemID      `json:"item_id"`
	Tipper      Identity    `json:"tipper"`
	Amount      *big.Int    `json:"amount"`
	Timestamp   uint64      `json:"timestamp"`
}

// TipReceipt is returned to the caller of a successful tip
type TipReceipt struct {
	TipID           uint64   `json:"tip_id"`
	AmountSent      *big.Int `json:"amount_sent"`
	CreatorReceived *big.Int `json:"creator_received"`
	PlatformFee     *big.Int `json:"platform_fee"`
	Timestamp       uint64   `json:"timestamp"`
}

// Balanced reports whether the creator share and platform fee add up to the amount sent
func (r TipReceipt) Balanced() bool {
	if r.AmountSent == nil || r.CreatorReceived == nil || r.PlatformFee == nil {
		return false
	}
	sum := new(big.Int).Add(r.CreatorReceived, r.PlatformFee)
	return sum.Cmp(r.AmountSent) == 0
}

// CollectibleToken is the one-per-item collectible minted once an item's tips cross the threshold
type CollectibleToken struct {
	TokenID         uint64   `json:"token_id"`
	ItemID          ItemID   `json:"item_id"`
	Owner           Identity `json:"owner"`
	Minter          Identity `json:"minter"`
	MetadataURI     string   `json:"metadata_uri"`
	PermanentRef    *string  `json:"permanent_ref,omitempty"` // e.g. an Arweave transaction id
	MintedAt        uint64   `json:"minted_at"`
	TipAmountAtMint *big.Int `json:"tip_amount_at_mint"`
}

// GovernanceConfig holds the deployment-wide administrative configuration
type GovernanceConfig struct {
	Admin           Identity `json:"admin"`
	PlatformAddress Identity `json:"platform_address"`
	PlatformFeeBps  uint32   `json:"platform_fee_bps"`
	Paused          bool     `json:"paused"`
	TipThreshold    *big.Int `json:"tip_threshold"`
}

// SplitTip splits amount into the creator share and the platform fee.
// The fee is floor(amount * feeBps / 10000); the creator receives the remainder.
func SplitTip(amount *big.Int, feeBps uint32) (creatorShare *big.Int, platformFee *big.Int) {
	platformFee = new(big.Int).Mul(amount, big.NewInt(int64(feeBps)))
	platformFee.Quo(platformFee, big.NewInt(BPS_DENOMINATOR))
	creatorShare = new(big.Int).Sub(amount, platformFee)
	return creatorShare, platformFee
}

// ParseAmount parses a base-10 amount string in the range [0, MaxAmount]
func ParseAmount(s string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: amount %q is not a base-10 integer", ErrInvalidArgument, s)
	}
	if !AmountInRange(amount) {
		return nil, fmt.Errorf("%w: amount %q is outside [0, 2^127-1]", ErrInvalidArgument, s)
	}
	return amount, nil
}

// EventKind represents the kind of ledger event published to observers
type EventKind string

const (
	EventKindTipRecorded            EventKind = "tip.recorded"
	EventKindHighlightTipRecorded   EventKind = "tip.highlight_recorded"
	EventKindCollectibleMinted      EventKind = "collectible.minted"
	EventKindCollectibleTransferred EventKind = "collectible.transferred"
)

// Actor roles used as keys of LedgerEvent.Actors
const (
	ActorTipper  = "tipper"
	ActorCreator = "creator"
	ActorMinter  = "minter"
	ActorFrom    = "from"
	ActorTo      = "to"
)

// LedgerEvent is the structured record emitted after a successful tip, mint or transfer
type LedgerEvent struct {
	ID           string              `json:"id"`
	Kind         EventKind           `json:"kind"`
	ItemID       ItemID              `json:"item_id,omitempty"`
	HighlightID  HighlightID         `json:"highlight_id,omitempty"`
	Actors       map[string]Identity `json:"actors"`
	Amount       *big.Int            `json:"amount,omitempty"`
	TokenID      uint64              `json:"token_id,omitempty"`
	TipID        uint64              `json:"tip_id,omitempty"`
	PermanentRef *string             `json:"permanent_ref,omitempty"`
	Timestamp    time.Time           `json:"timestamp"`
}
