package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-tipping-ledger/internal/api/middleware"
	"github.com/feral-file/ff-tipping-ledger/internal/auth"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(pemKey)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicKey := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicKey, APIKeys: []string{"key-1", ""}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	otherKey, _ := generateKeyPair(t)
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "alice"})

	tests := []struct {
		name        string
		header      string
		wantSuccess bool
		wantType    string
		wantSubject string
	}{
		{name: "valid bearer", header: "Bearer " + valid, wantSuccess: true, wantType: middleware.AUTH_TYPE_JWT, wantSubject: "alice"},
		{name: "expired bearer", header: "Bearer " + expired},
		{name: "bearer signed by another key", header: "Bearer " + foreign},
		{name: "valid api key", header: "ApiKey key-1", wantSuccess: true, wantType: middleware.AUTH_TYPE_APIKEY},
		{name: "unknown api key", header: "ApiKey key-2"},
		{name: "missing header", header: ""},
		{name: "no credentials", header: "Bearer"},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.Authenticate(tt.header, cfg)
			assert.Equal(t, tt.wantSuccess, result.Success)
			if !tt.wantSuccess {
				assert.Error(t, result.Error)
				return
			}
			assert.Equal(t, tt.wantType, result.AuthType)
			assert.Equal(t, tt.wantSubject, result.AuthSubject)
		})
	}
}

func TestAuthenticateWithoutConfiguredCredentials(t *testing.T) {
	result := middleware.Authenticate("ApiKey anything", middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.EqualError(t, result.Error, "no API keys configured")

	result = middleware.Authenticate("Bearer token", middleware.AuthConfig{})
	assert.False(t, result.Success)
	assert.EqualError(t, result.Error, "JWT public key not configured")
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key, publicKey := generateKeyPair(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicKey, APIKeys: []string{"key-1"}}

	var (
		gotSubject domain.Identity
		hasSubject bool
		gotProof   auth.Proof
		hasProof   bool
		gotBody    []byte
	)
	router := gin.New()
	router.POST("/protected", middleware.Auth(cfg), func(c *gin.Context) {
		gotSubject, hasSubject = auth.SubjectFromContext(c.Request.Context())
		gotProof, hasProof = auth.ProofFromContext(c.Request.Context())
		gotBody, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusNoContent)
	})

	t.Run("jwt subject reaches the request context", func(t *testing.T) {
		token := signToken(t, key, jwt.RegisteredClaims{Subject: "alice"})
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, hasSubject)
		assert.Equal(t, domain.Identity("alice"), gotSubject)
		assert.False(t, hasProof)
	})

	t.Run("api key carries the signed challenge and the request it arrived on", func(t *testing.T) {
		body := `{"tipper":"0xabc","amount":"1000"}`
		req := httptest.NewRequest(http.MethodPost, "/protected?legacy=true", strings.NewReader(body))
		req.Header.Set("Authorization", "ApiKey key-1")
		req.Header.Set(middleware.HEADER_SIGNATURE, "0xdeadbeef")
		req.Header.Set(middleware.HEADER_SIGNED_MESSAGE, "ff-tipping authorize 0xabc POST /protected?legacy=true 0x00 at 1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, hasSubject)
		require.True(t, hasProof)
		assert.Equal(t, "0xdeadbeef", gotProof.Signature)
		assert.Equal(t, "ff-tipping authorize 0xabc POST /protected?legacy=true 0x00 at 1", gotProof.Message)
		assert.Equal(t, http.MethodPost, gotProof.Method)
		assert.Equal(t, "/protected?legacy=true", gotProof.RequestURI)
		assert.Equal(t, auth.BodyHash([]byte(body)), gotProof.BodyHash)
		assert.Equal(t, body, string(gotBody))
	})

	t.Run("oversized signed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", strings.NewReader(strings.Repeat("x", 1<<20+1)))
		req.Header.Set("Authorization", "ApiKey key-1")
		req.Header.Set(middleware.HEADER_SIGNATURE, "0xdeadbeef")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("rejected request never reaches the handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "ApiKey wrong")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":{"code":"unauthorized","message":"Authentication failed","details":"invalid API key"}}`, w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.Logger(nil))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"code":"internal_error","message":"Internal server error"}}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Logger(nil))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Len(t, w.Header().Get(middleware.HEADER_REQUEST_ID), 36)
	})

	t.Run("caller value is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HEADER_REQUEST_ID, "req-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(middleware.HEADER_REQUEST_ID))
	})
}
