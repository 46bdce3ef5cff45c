package auth

import (
	"context"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

type contextKey string

const (
	subjectKey contextKey = "auth_subject"
	proofKey   contextKey = "auth_proof"
)

// Proof is a signed challenge presented with a request. Method, RequestURI and BodyHash
// describe the request it arrived on, as observed by the server.
type Proof struct {
	Message   string
	Signature string // 0x-prefixed hex, 65 bytes

	Method     string
	RequestURI string
	BodyHash   string
}

// WithSubject returns a context carrying the authenticated subject
func WithSubject(ctx context.Context, subject domain.Identity) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authenticated subject, if any
func SubjectFromContext(ctx context.Context) (domain.Identity, bool) {
	subject, ok := ctx.Value(subjectKey).(domain.Identity)
	return subject, ok && subject != ""
}

// WithProof returns a context carrying a signed challenge
func WithProof(ctx context.Context, proof Proof) context.Context {
	return context.WithValue(ctx, proofKey, proof)
}

// ProofFromContext returns the signed challenge, if any
func ProofFromContext(ctx context.Context) (Proof, bool) {
	proof, ok := ctx.Value(proofKey).(Proof)
	return proof, ok && proof.Signature != ""
}

// SubjectAuthorizer authorizes the identity the request was authenticated as (e.g. a JWT subject)
type SubjectAuthorizer struct{}

func (SubjectAuthorizer) Authorize(ctx context.Context, identity domain.Identity) bool {
	subject, ok := SubjectFromContext(ctx)
	return ok && subject == identity
}
