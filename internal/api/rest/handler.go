package rest

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/governance"
	"github.com/feral-file/ff-tipping-ledger/internal/minting"
	"github.com/feral-file/ff-tipping-ledger/internal/tipping"
)

// Handler defines the REST API handlers
type Handler interface {
	// POST /api/v1/governance/initialize
	Initialize(c *gin.Context)
	// PUT /api/v1/governance/fee
	SetFee(c *gin.Context)
	// PUT /api/v1/governance/threshold
	SetThreshold(c *gin.Context)
	// POST /api/v1/governance/pause
	Pause(c *gin.Context)
	// POST /api/v1/governance/unpause
	Unpause(c *gin.Context)
	// GET /api/v1/governance
	GetGovernance(c *gin.Context)
	// GET /api/v1/governance/paused
	IsPaused(c *gin.Context)

	// RecordTip records a tip on an item
	// POST /api/v1/items/:item_id/tips?legacy=<bool>
	RecordTip(c *gin.Context)
	// RecordHighlightTip records a tip on a highlight of an item
	// POST /api/v1/items/:item_id/highlights/:highlight_id/tips?legacy=<bool>
	RecordHighlightTip(c *gin.Context)
	// GetItem returns the total, tips and collectible of an item
	// GET /api/v1/items/:item_id
	GetItem(c *gin.Context)
	// GET /api/v1/items/:item_id/tips
	GetItemTips(c *gin.Context)
	// GET /api/v1/items/:item_id/total
	GetItemTotal(c *gin.Context)
	// GET /api/v1/items/:item_id/eligibility?threshold=<amount>
	GetEligibility(c *gin.Context)
	// GET /api/v1/highlights/:highlight_id/tips
	GetHighlightTips(c *gin.Context)
	// GET /api/v1/volume
	GetVolume(c *gin.Context)
	// GET /api/v1/balances/:identity
	GetBalance(c *gin.Context)
	// POST /api/v1/balances/:identity/withdraw
	Withdraw(c *gin.Context)

	// Mint mints the collectible of an item
	// POST /api/v1/items/:item_id/collectible?legacy=<bool>
	Mint(c *gin.Context)
	// GET /api/v1/items/:item_id/collectible
	GetItemCollectible(c *gin.Context)
	// GET /api/v1/tokens/:token_id
	GetToken(c *gin.Context)
	// POST /api/v1/tokens/:token_id/transfer
	TransferToken(c *gin.Context)
	// GET /api/v1/owners/:identity/tokens
	GetOwnedTokens(c *gin.Context)
	// GET /api/v1/collectibles/threshold
	GetThreshold(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	governance governance.Module
	tipping    tipping.Engine
	minting    minting.Gate
	executor   executor.Executor
}

// NewHandler creates a new REST API handler. Mutations go to the modules, reads go through exec.
func NewHandler(gov governance.Module, engine tipping.Engine, gate minting.Gate, exec executor.Executor) Handler {
	return &handler{
		governance: gov,
		tipping:    engine,
		minting:    gate,
		executor:   exec,
	}
}

// legacy reports whether the caller selected the non-pause-aware entry point
func legacy(c *gin.Context) bool {
	return c.Query("legacy") == "true"
}

func (h *handler) Initialize(c *gin.Context) {
	var req InitializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	threshold, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.governance.Initialize(c.Request.Context(), req.Admin, req.PlatformAddress, req.PlatformFeeBps, threshold); err != nil {
		respondDomainError(c, err, zap.String("admin", string(req.Admin)))
		return
	}

	h.respondGovernance(c, http.StatusCreated)
}

func (h *handler) SetFee(c *gin.Context) {
	var req SetFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.governance.SetFee(c.Request.Context(), req.Admin, req.PlatformFeeBps); err != nil {
		respondDomainError(c, err, zap.Uint32("fee_bps", req.PlatformFeeBps))
		return
	}

	h.respondGovernance(c, http.StatusOK)
}

func (h *handler) SetThreshold(c *gin.Context) {
	var req SetThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	threshold, err := domain.ParseAmount(req.TipThreshold)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.governance.SetThreshold(c.Request.Context(), req.Admin, threshold); err != nil {
		respondDomainError(c, err, zap.String("threshold", req.TipThreshold))
		return
	}

	h.respondGovernance(c, http.StatusOK)
}

func (h *handler) Pause(c *gin.Context) {
	h.setPaused(c, true)
}

func (h *handler) Unpause(c *gin.Context) {
	h.setPaused(c, false)
}

func (h *handler) setPaused(c *gin.Context, paused bool) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	var err error
	if paused {
		err = h.governance.Pause(c.Request.Context(), req.Admin)
	} else {
		err = h.governance.Unpause(c.Request.Context(), req.Admin)
	}
	if err != nil {
		respondDomainError(c, err, zap.Bool("paused", paused))
		return
	}

	c.JSON(http.StatusOK, gin.H{"paused": paused})
}

func (h *handler) GetGovernance(c *gin.Context) {
	h.respondGovernance(c, http.StatusOK)
}

func (h *handler) respondGovernance(c *gin.Context, status int) {
	cfg, err := h.executor.Governance(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(status, toGovernanceResponse(cfg))
}

func (h *handler) IsPaused(c *gin.Context) {
	paused, err := h.executor.IsPaused(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paused": paused})
}

func (h *handler) RecordTip(c *gin.Context) {
	h.recordTip(c, "")
}

func (h *handler) RecordHighlightTip(c *gin.Context) {
	highlight := domain.HighlightID(c.Param("highlight_id"))
	if !highlight.Valid() {
		respondValidationError(c, "invalid highlight id")
		return
	}
	h.recordTip(c, highlight)
}

func (h *handler) recordTip(c *gin.Context, highlight domain.HighlightID) {
	item := domain.ItemID(c.Param("item_id"))
	if !item.Valid() {
		respondValidationError(c, "invalid item id")
		return
	}

	var req TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	amount, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	isLegacy := legacy(c)
	if isLegacy && req.PermanentRef != "" {
		respondValidationError(c, "permanent_ref is not accepted by the legacy entry point")
		return
	}
	if !isLegacy && req.PermanentRef == "" {
		respondValidationError(c, "permanent_ref is required")
		return
	}

	ctx := c.Request.Context()
	var receipt *domain.TipReceipt
	switch {
	case highlight == "" && isLegacy:
		receipt, err = h.tipping.RecordTip(ctx, req.Tipper, item, req.Creator, amount)
	case highlight == "":
		receipt, err = h.tipping.RecordTipWithReference(ctx, req.Tipper, item, req.Creator, amount, req.PermanentRef)
	case isLegacy:
		receipt, err = h.tipping.RecordHighlightTip(ctx, req.Tipper, highlight, item, req.Creator, amount)
	default:
		receipt, err = h.tipping.RecordHighlightTipWithReference(ctx, req.Tipper, highlight, item, req.Creator, amount, req.PermanentRef)
	}
	if err != nil {
		respondDomainError(c, err,
			zap.String("item_id", string(item)),
			zap.String("highlight_id", string(highlight)),
			zap.String("tipper", string(req.Tipper)),
		)
		return
	}

	c.JSON(http.StatusCreated, toTipReceiptResponse(receipt))
}

func (h *handler) GetItem(c *gin.Context) {
	item := domain.ItemID(c.Param("item_id"))
	view, err := h.executor.GetItem(c.Request.Context(), item)
	if err != nil {
		respondDomainError(c, err, zap.String("item_id", string(item)))
		return
	}
	c.JSON(http.StatusOK, toItemResponse(view))
}

func (h *handler) GetItemTips(c *gin.Context) {
	item := domain.ItemID(c.Param("item_id"))
	tips, err := h.executor.GetItemTips(c.Request.Context(), item)
	if err != nil {
		respondDomainError(c, err, zap.String("item_id", string(item)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": toTipResponses(tips)})
}

func (h *handler) GetItemTotal(c *gin.Context) {
	item := domain.ItemID(c.Param("item_id"))
	total, err := h.executor.GetItemTotal(c.Request.Context(), item)
	if err != nil {
		respondDomainError(c, err, zap.String("item_id", string(item)))
		return
	}
	c.JSON(http.StatusOK, AmountResponse{Amount: amountString(total)})
}

func (h *handler) GetEligibility(c *gin.Context) {
	item := domain.ItemID(c.Param("item_id"))

	var threshold *big.Int
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := domain.ParseAmount(raw)
		if err != nil {
			respondValidationError(c, err.Error())
			return
		}
		threshold = parsed
	}

	eligible, err := h.executor.IsEligible(c.Request.Context(), item, threshold)
	if err != nil {
		respondDomainError(c, err, zap.String("item_id", string(item)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"item_id": item, "eligible": eligible})
}

func (h *handler) GetHighlightTips(c *gin.Context) {
	highlight := domain.HighlightID(c.Param("highlight_id"))
	tips, err := h.executor.GetHighlightTips(c.Request.Context(), highlight)
	if err != nil {
		respondDomainError(c, err, zap.String("highlight_id", string(highlight)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"tips": toHighlightTipResponses(tips)})
}

func (h *handler) GetVolume(c *gin.Context) {
	volume, err := h.executor.GetVolume(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, AmountResponse{Amount: amountString(volume)})
}

func (h *handler) GetBalance(c *gin.Context) {
	identity := domain.Identity(c.Param("identity"))
	balance, err := h.executor.GetBalance(c.Request.Context(), identity)
	if err != nil {
		respondDomainError(c, err, zap.String("identity", string(identity)))
		return
	}
	c.JSON(http.StatusOK, AmountResponse{Amount: amountString(balance)})
}

func (h *handler) Withdraw(c *gin.Context) {
	identity := domain.Identity(c.Param("identity"))
	amount, err := h.tipping.Withdraw(c.Request.Context(), identity)
	if err != nil {
		respondDomainError(c, err, zap.String("identity", string(identity)))
		return
	}
	c.JSON(http.StatusOK, AmountResponse{Amount: amountString(amount)})
}

func (h *handler) Mint(c *gin.Context) {
	item := domain.ItemID(c.Param("item_id"))
	if !item.Valid() {
		respondValidationError(c, "invalid item id")
		return
	}

	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	tipAmount, err := req.Validate()
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	var tokenID uint64
	if legacy(c) {
		if req.PermanentRef != "" {
			respondValidationError(c, "permanent_ref is not accepted by the legacy entry point")
			return
		}
		tokenID, err = h.minting.Mint(ctx, req.Author, item, tipAmount, req.MetadataURI)
	} else {
		tokenID, err = h.minting.MintWithReference(ctx, req.Author, item, tipAmount, req.MetadataURI, req.PermanentRef)
	}
	if err != nil {
		respondDomainError(c, err, zap.String("item_id", string(item)), zap.String("author", string(req.Author)))
		return
	}

	token, err := h.executor.GetToken(ctx, tokenID)
	if err != nil {
		respondDomainError(c, err, zap.Uint64("token_id", tokenID))
		return
	}
	c.JSON(http.StatusCreated, toTokenResponse(token))
}

func (h *handler) GetItemCollectible(c *gin.Context) {
	item := domain.ItemID(c.Param("item_id"))
	token, err := h.executor.GetItemCollectible(c.Request.Context(), item)
	if err != nil {
		respondDomainError(c, err, zap.String("item_id", string(item)))
		return
	}
	c.JSON(http.StatusOK, toTokenResponse(token))
}

func (h *handler) GetToken(c *gin.Context) {
	tokenID, err := parseTokenID(c.Param("token_id"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	token, err := h.executor.GetToken(c.Request.Context(), tokenID)
	if err != nil {
		respondDomainError(c, err, zap.Uint64("token_id", tokenID))
		return
	}
	c.JSON(http.StatusOK, toTokenResponse(token))
}

func (h *handler) TransferToken(c *gin.Context) {
	tokenID, err := parseTokenID(c.Param("token_id"))
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.minting.Transfer(ctx, req.From, req.To, tokenID); err != nil {
		respondDomainError(c, err,
			zap.Uint64("token_id", tokenID),
			zap.String("from", string(req.From)),
			zap.String("to", string(req.To)),
		)
		return
	}

	token, err := h.executor.GetToken(ctx, tokenID)
	if err != nil {
		respondDomainError(c, err, zap.Uint64("token_id", tokenID))
		return
	}
	c.JSON(http.StatusOK, toTokenResponse(token))
}

func (h *handler) GetOwnedTokens(c *gin.Context) {
	owner := domain.Identity(c.Param("identity"))
	ids, err := h.executor.GetOwnedTokenIDs(c.Request.Context(), owner)
	if err != nil {
		respondDomainError(c, err, zap.String("owner", string(owner)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"owner": owner, "token_ids": ids})
}

func (h *handler) GetThreshold(c *gin.Context) {
	threshold, err := h.executor.GetMintThreshold(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, AmountResponse{Amount: amountString(threshold)})
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"withdraw_enabled": h.tipping.SupportsWithdraw(),
		"service":          fmt.Sprintf("ff-tipping-ledger/%s", apiVersion),
	})
}
