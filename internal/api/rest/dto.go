package rest

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/feral-file/ff-tipping-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// Amounts travel as base-10 strings; JSON numbers cannot carry 256-bit values.

// InitializeRequest is the body of POST /governance/initialize
type InitializeRequest struct {
	Admin           domain.Identity `json:"admin"`
	PlatformAddress domain.Identity `json:"platform_address"`
	PlatformFeeBps  *uint32         `json:"platform_fee_bps,omitempty"`
	TipThreshold    *string         `json:"tip_threshold,omitempty"`
}

// AdminRequest is the body of the pause and unpause routes
type AdminRequest struct {
	Admin domain.Identity `json:"admin"`
}

// SetFeeRequest is the body of PUT /governance/fee
type SetFeeRequest struct {
	Admin          domain.Identity `json:"admin"`
	PlatformFeeBps uint32          `json:"platform_fee_bps"`
}

// SetThresholdRequest is the body of PUT /governance/threshold
type SetThresholdRequest struct {
	Admin        domain.Identity `json:"admin"`
	TipThreshold string          `json:"tip_threshold"`
}

// TipRequest is the body of the tip routes
type TipRequest struct {
	Tipper       domain.Identity `json:"tipper"`
	Creator      domain.Identity `json:"creator"`
	Amount       string          `json:"amount"`
	PermanentRef string          `json:"permanent_ref,omitempty"`
}

// MintRequest is the body of POST /items/:item_id/collectible
type MintRequest struct {
	Author       domain.Identity `json:"author"`
	TipAmount    string          `json:"tip_amount"`
	MetadataURI  string          `json:"metadata_uri"`
	PermanentRef string          `json:"permanent_ref,omitempty"`
}

// TransferRequest is the body of POST /tokens/:token_id/transfer
type TransferRequest struct {
	From domain.Identity `json:"from"`
	To   domain.Identity `json:"to"`
}

// GovernanceResponse is the public view of the governance configuration
type GovernanceResponse struct {
	Admin           domain.Identity `json:"admin"`
	PlatformAddress domain.Identity `json:"platform_address"`
	PlatformFeeBps  uint32          `json:"platform_fee_bps"`
	Paused          bool            `json:"paused"`
	TipThreshold    string          `json:"tip_threshold"`
}

// TipReceiptResponse is returned by the tip routes
type TipReceiptResponse struct {
	TipID           uint64 `json:"tip_id"`
	AmountSent      string `json:"amount_sent"`
	CreatorReceived string `json:"creator_received"`
	PlatformFee     string `json:"platform_fee"`
	Timestamp       uint64 `json:"timestamp"`
}

// TipResponse is one entry of an item's tip sequence
type TipResponse struct {
	Tipper    domain.Identity `json:"tipper"`
	Amount    string          `json:"amount"`
	Timestamp uint64          `json:"timestamp"`
}

// HighlightTipResponse is one entry of a highlight's tip sequence
type HighlightTipResponse struct {
	HighlightID domain.HighlightID `json:"highlight_id"`
	ItemID      domain.ItemID      `json:"item_id"`
	Tipper      domain.Identity    `json:"tipper"`
	Amount      string             `json:"amount"`
	Timestamp   uint64             `json:"timestamp"`
}

// TokenResponse is the public view of a collectible
type TokenResponse struct {
	TokenID         uint64          `json:"token_id"`
	ItemID          domain.ItemID   `json:"item_id"`
	Owner           domain.Identity `json:"owner"`
	Minter          domain.Identity `json:"minter"`
	MetadataURI     string          `json:"metadata_uri"`
	PermanentRef    *string         `json:"permanent_ref,omitempty"`
	MintedAt        uint64          `json:"minted_at"`
	TipAmountAtMint string          `json:"tip_amount_at_mint"`
}

// ItemResponse is the public view of an item
type ItemResponse struct {
	ItemID      domain.ItemID  `json:"item_id"`
	Total       string         `json:"total"`
	Tips        []TipResponse  `json:"tips"`
	Collectible *TokenResponse `json:"collectible"`
}

// AmountResponse wraps a single amount
type AmountResponse struct {
	Amount string `json:"amount"`
}

func (r *InitializeRequest) Validate() (*big.Int, error) {
	if !r.Admin.Valid() {
		return nil, fmt.Errorf("%w: admin is required", domain.ErrInvalidArgument)
	}
	if !r.PlatformAddress.Valid() {
		return nil, fmt.Errorf("%w: platform_address is required", domain.ErrInvalidArgument)
	}
	if r.TipThreshold == nil {
		return nil, nil
	}
	return domain.ParseAmount(*r.TipThreshold)
}

func (r *TipRequest) Validate() (*big.Int, error) {
	if !r.Tipper.Valid() {
		return nil, fmt.Errorf("%w: tipper is required", domain.ErrInvalidArgument)
	}
	if !r.Creator.Valid() {
		return nil, fmt.Errorf("%w: creator is required", domain.ErrInvalidArgument)
	}
	return domain.ParseAmount(r.Amount)
}

func (r *MintRequest) Validate() (*big.Int, error) {
	if !r.Author.Valid() {
		return nil, fmt.Errorf("%w: author is required", domain.ErrInvalidArgument)
	}
	return domain.ParseAmount(r.TipAmount)
}

func amountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func parseTokenID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token id %q", domain.ErrInvalidArgument, raw)
	}
	return id, nil
}

func toGovernanceResponse(cfg *domain.GovernanceConfig) GovernanceResponse {
	return GovernanceResponse{
		Admin:           cfg.Admin,
		PlatformAddress: cfg.PlatformAddress,
		PlatformFeeBps:  cfg.PlatformFeeBps,
		Paused:          cfg.Paused,
		TipThreshold:    amountString(cfg.TipThreshold),
	}
}

func toTipReceiptResponse(r *domain.TipReceipt) TipReceiptResponse {
	return TipReceiptResponse{
		TipID:           r.TipID,
		AmountSent:      amountString(r.AmountSent),
		CreatorReceived: amountString(r.CreatorReceived),
		PlatformFee:     amountString(r.PlatformFee),
		Timestamp:       r.Timestamp,
	}
}

func toTipResponses(records []domain.TipRecord) []TipResponse {
	out := make([]TipResponse, 0, len(records))
	for _, r := range records {
		out = append(out, TipResponse{Tipper: r.Tipper, Amount: amountString(r.Amount), Timestamp: r.Timestamp})
	}
	return out
}

func toHighlightTipResponses(records []domain.HighlightTipRecord) []HighlightTipResponse {
	out := make([]HighlightTipResponse, 0, len(records))
	for _, r := range records {
		out = append(out, HighlightTipResponse{
			HighlightID: r.HighlightID,
			ItemID:      r.ItemID,
			Tipper:      r.Tipper,
			Amount:      amountString(r.Amount),
			Timestamp:   r.Timestamp,
		})
	}
	return out
}

func toTokenResponse(t *domain.CollectibleToken) TokenResponse {
	return TokenResponse{
		TokenID:         t.TokenID,
		ItemID:          t.ItemID,
		Owner:           t.Owner,
		Minter:          t.Minter,
		MetadataURI:     t.MetadataURI,
		PermanentRef:    t.PermanentRef,
		MintedAt:        t.MintedAt,
		TipAmountAtMint: amountString(t.TipAmountAtMint),
	}
}

func toItemResponse(v *executor.ItemView) ItemResponse {
	resp := ItemResponse{
		ItemID: v.ItemID,
		Total:  amountString(v.Total),
		Tips:   toTipResponses(v.Tips),
	}
	if v.Collectible != nil {
		token := toTokenResponse(v.Collectible)
		resp.Collectible = &token
	}
	return resp
}
