package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
)

const challengePrefix = "ff-tipping authorize"

// ChallengeMessage builds the message an Ethereum account signs (EIP-191 personal_sign) to act as
// identity on exactly one request: method, request URI (path and query) and body are all bound.
func ChallengeMessage(identity domain.Identity, method, requestURI string, body []byte, at time.Time) string {
	return fmt.Sprintf("%s %s %s %s %s at %d", challengePrefix, identity, method, requestURI, BodyHash(body), at.Unix())
}

// BodyHash is the keccak256 digest of a request body as it appears in a challenge
func BodyHash(body []byte) string {
	return crypto.Keccak256Hash(body).Hex()
}

// SignatureAuthorizer authorizes Ethereum address identities that signed a fresh challenge
type SignatureAuthorizer struct {
	clock  adapter.Clock
	maxAge time.Duration
}

// NewSignatureAuthorizer creates a signature authorizer accepting challenges up to maxAge old
func NewSignatureAuthorizer(clock adapter.Clock, maxAge time.Duration) *SignatureAuthorizer {
	return &SignatureAuthorizer{clock: clock, maxAge: maxAge}
}

func (a *SignatureAuthorizer) Authorize(ctx context.Context, identity domain.Identity) bool {
	proof, ok := ProofFromContext(ctx)
	if !ok {
		return false
	}
	if !common.IsHexAddress(string(identity)) {
		return false
	}

	if err := a.checkChallenge(proof, identity); err != nil {
		logger.DebugCtx(ctx, "Rejected signature challenge", zap.Error(err), zap.String("identity", string(identity)))
		return false
	}

	signer, err := RecoverSigner(proof.Message, proof.Signature)
	if err != nil {
		logger.DebugCtx(ctx, "Failed to recover signer", zap.Error(err), zap.String("identity", string(identity)))
		return false
	}

	return signer == common.HexToAddress(string(identity))
}

func (a *SignatureAuthorizer) checkChallenge(proof Proof, identity domain.Identity) error {
	// prefix(2) identity method uri body-hash "at" timestamp
	fields := strings.Fields(proof.Message)
	if len(fields) != 8 || strings.Join(fields[:2], " ") != challengePrefix || fields[6] != "at" {
		return fmt.Errorf("malformed challenge")
	}
	if !strings.EqualFold(fields[2], string(identity)) {
		return fmt.Errorf("challenge issued for %s", fields[2])
	}
	if fields[3] != proof.Method || fields[4] != proof.RequestURI {
		return fmt.Errorf("challenge issued for %s %s", fields[3], fields[4])
	}
	if fields[5] != proof.BodyHash {
		return fmt.Errorf("challenge body hash mismatch")
	}

	ts, err := strconv.ParseInt(fields[7], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid challenge timestamp: %w", err)
	}
	age := a.clock.Now().Sub(time.Unix(ts, 0))
	if age < -time.Minute || age > a.maxAge {
		return fmt.Errorf("challenge expired (age %s)", age)
	}
	return nil
}

// RecoverSigner recovers the address that produced an EIP-191 personal_sign signature over message
func RecoverSigner(message string, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
