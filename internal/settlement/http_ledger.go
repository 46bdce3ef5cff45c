package settlement

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
)

// transferRequest is the body of POST {base}/transfers
type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// balanceResponse is the body of GET {base}/balances/{identity}
type balanceResponse struct {
	Identity string `json:"identity"`
	Balance  string `json:"balance"`
}

type httpLedger struct {
	baseURL string
	client  adapter.HTTPClient
	json    adapter.JSON
}

// NewHTTPLedger creates a TokenLedger backed by a remote ledger service
func NewHTTPLedger(baseURL string, client adapter.HTTPClient, json adapter.JSON) TokenLedger {
	return &httpLedger{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		json:    json,
	}
}

// Transfer posts a single transfer with a fresh idempotency key. It is not retried here.
func (l *httpLedger) Transfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	body, err := l.json.Marshal(transferRequest{
		From:   string(from),
		To:     string(to),
		Amount: amount.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode transfer: %w", err)
	}

	key := uuid.NewString()
	status, resp, err := l.client.Post(ctx, l.baseURL+"/transfers", map[string]string{
		"Idempotency-Key": key,
	}, body)
	if err != nil {
		return fmt.Errorf("failed to post transfer: %w", err)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return fmt.Errorf("ledger rejected transfer with status %d: %s", status, string(resp))
	}

	logger.DebugCtx(ctx, "Ledger transfer accepted",
		zap.String("idempotency_key", key),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("amount", amount.String()),
	)
	return nil
}

func (l *httpLedger) Balance(ctx context.Context, identity domain.Identity) (*big.Int, error) {
	var resp balanceResponse
	if err := l.client.Get(ctx, l.baseURL+"/balances/"+url.PathEscape(string(identity)), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	balance, err := domain.ParseAmount(resp.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	return balance, nil
}
