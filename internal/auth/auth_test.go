package auth_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-tipping-ledger/internal/auth"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
)

func TestGuardRequireAuthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorizer := mocks.NewMockAuthorizer(ctrl)
	guard := auth.NewGuard(authorizer)
	ctx := context.Background()

	t.Run("authorized actor passes", func(t *testing.T) {
		authorizer.EXPECT().Authorize(ctx, domain.Identity("alice")).Return(true)
		assert.NoError(t, guard.RequireAuthorized(ctx, "alice"))
	})

	t.Run("rejected actor fails with unauthorized", func(t *testing.T) {
		authorizer.EXPECT().Authorize(ctx, domain.Identity("mallory")).Return(false)
		err := guard.RequireAuthorized(ctx, "mallory")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("invalid identity never reaches the authorizer", func(t *testing.T) {
		err := guard.RequireAuthorized(ctx, "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestSubjectAuthorizer(t *testing.T) {
	a := auth.SubjectAuthorizer{}
	ctx := auth.WithSubject(context.Background(), "alice")

	assert.True(t, a.Authorize(ctx, "alice"))
	assert.False(t, a.Authorize(ctx, "bob"))
	assert.False(t, a.Authorize(context.Background(), "alice"))
	assert.False(t, a.Authorize(auth.WithSubject(context.Background(), ""), ""))
}

func TestAllowListAndAny(t *testing.T) {
	list := auth.NewAllowList("service-a", "service-b")
	assert.True(t, list.Authorize(context.Background(), "service-a"))
	assert.False(t, list.Authorize(context.Background(), "alice"))

	anyOf := auth.AnyAuthorizer{
		auth.SubjectAuthorizer{},
		list,
	}
	ctx := auth.WithSubject(context.Background(), "alice")
	assert.True(t, anyOf.Authorize(ctx, "alice"))
	assert.True(t, anyOf.Authorize(ctx, "service-b"))
	assert.False(t, anyOf.Authorize(ctx, "bob"))

	deny := auth.AuthorizerFunc(func(context.Context, domain.Identity) bool { return false })
	assert.False(t, auth.AnyAuthorizer{deny}.Authorize(ctx, "alice"))
}

func signChallenge(t *testing.T, message string) (domain.Identity, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27 // wallets return V in {27, 28}

	return domain.Identity(crypto.PubkeyToAddress(key.PublicKey).Hex()), hexutil.Encode(sig)
}

func TestSignatureAuthorizer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(now).AnyTimes()

	a := auth.NewSignatureAuthorizer(clock, 5*time.Minute)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	identity := domain.Identity(crypto.PubkeyToAddress(key.PublicKey).Hex())

	sign := func(message string) string {
		sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
		require.NoError(t, err)
		return hexutil.Encode(sig)
	}

	const uri = "/api/v1/items/item-1/tips"
	body := []byte(`{"amount":"1000000"}`)
	challenge := func(id domain.Identity, at time.Time) string {
		return auth.ChallengeMessage(id, http.MethodPost, uri, body, at)
	}
	proof := func(msg, sig string) context.Context {
		return auth.WithProof(context.Background(), auth.Proof{
			Message:    msg,
			Signature:  sig,
			Method:     http.MethodPost,
			RequestURI: uri,
			BodyHash:   auth.BodyHash(body),
		})
	}

	t.Run("fresh challenge signed by identity", func(t *testing.T) {
		msg := challenge(identity, now.Add(-time.Minute))
		assert.True(t, a.Authorize(proof(msg, sign(msg)), identity))
	})

	t.Run("identity comparison ignores hex case", func(t *testing.T) {
		msg := challenge(identity, now)
		lower := domain.Identity(strings.ToLower(string(identity)))
		assert.True(t, a.Authorize(proof(msg, sign(msg)), lower))
	})

	t.Run("expired challenge", func(t *testing.T) {
		msg := challenge(identity, now.Add(-time.Hour))
		assert.False(t, a.Authorize(proof(msg, sign(msg)), identity))
	})

	t.Run("challenge for a different identity", func(t *testing.T) {
		other, otherSig := signChallenge(t, challenge("0x0000000000000000000000000000000000000001", now))
		msg := challenge("0x0000000000000000000000000000000000000001", now)
		assert.False(t, a.Authorize(proof(msg, otherSig), other))
	})

	t.Run("signature from another key", func(t *testing.T) {
		msg := challenge(identity, now)
		_, otherSig := signChallenge(t, msg)
		assert.False(t, a.Authorize(proof(msg, otherSig), identity))
	})

	t.Run("challenge replayed on another request", func(t *testing.T) {
		tests := []struct {
			name string
			msg  string
		}{
			{"other route", auth.ChallengeMessage(identity, http.MethodPost, "/api/v1/balances/x/withdraw", body, now)},
			{"legacy query added", auth.ChallengeMessage(identity, http.MethodPost, uri+"?legacy=true", body, now)},
			{"other method", auth.ChallengeMessage(identity, http.MethodPut, uri, body, now)},
			{"other body", auth.ChallengeMessage(identity, http.MethodPost, uri, []byte(`{"amount":"1"}`), now)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.False(t, a.Authorize(proof(tt.msg, sign(tt.msg)), identity))
			})
		}
	})

	t.Run("malformed proof", func(t *testing.T) {
		assert.False(t, a.Authorize(proof("hello", "0x1234"), identity))
		assert.False(t, a.Authorize(context.Background(), identity))

		unbound := fmt.Sprintf("ff-tipping authorize %s at %d", identity, now.Unix())
		assert.False(t, a.Authorize(proof(unbound, sign(unbound)), identity))
	})

	t.Run("non-address identity", func(t *testing.T) {
		msg := challenge("alice", now)
		assert.False(t, a.Authorize(proof(msg, sign(msg)), "alice"))
	})
}

func TestRecoverSigner(t *testing.T) {
	msg := "ff-tipping authorize test at 1"
	identity, sig := signChallenge(t, msg)

	signer, err := auth.RecoverSigner(msg, sig)
	require.NoError(t, err)
	assert.Equal(t, string(identity), signer.Hex())

	_, err = auth.RecoverSigner(msg, "not-hex")
	assert.Error(t, err)
}
