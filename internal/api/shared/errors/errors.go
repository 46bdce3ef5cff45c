package errors

import (
	goerrors "errors"
	"net/http"

	"github.com/feral-file/ff-tipping-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest         ErrorCode = "bad_request"
	ErrCodeNotFound           ErrorCode = "not_found"
	ErrCodeValidationFailed   ErrorCode = "validation_failed"
	ErrCodeUnauthorized       ErrorCode = "unauthorized"
	ErrCodeForbidden          ErrorCode = "forbidden"
	ErrCodeConflict           ErrorCode = "conflict"
	ErrCodePaused             ErrorCode = "paused"
	ErrCodeNotInitialized     ErrorCode = "not_initialized"
	ErrCodeBelowMinimum       ErrorCode = "below_minimum"
	ErrCodeBelowThreshold     ErrorCode = "below_threshold"
	ErrCodeFeeTooHigh         ErrorCode = "fee_too_high"
	ErrCodeWithdrawNotAllowed ErrorCode = "withdraw_unsupported"

	// Server errors (5xx)
	ErrCodeInternalError  ErrorCode = "internal_error"
	ErrCodeTransferFailed ErrorCode = "transfer_failed"
)

// Classification is how a ledger error is presented to API clients
type Classification struct {
	Status  int
	Code    ErrorCode
	Message string
}

var classifications = []struct {
	err error
	Classification
}{
	{domain.ErrInvalidArgument, Classification{http.StatusBadRequest, ErrCodeValidationFailed, "Validation failed"}},
	{domain.ErrBelowMinimum, Classification{http.StatusBadRequest, ErrCodeBelowMinimum, "Tip amount below minimum"}},
	{domain.ErrBelowThreshold, Classification{http.StatusBadRequest, ErrCodeBelowThreshold, "Tip amount below mint threshold"}},
	{domain.ErrFeeTooHigh, Classification{http.StatusBadRequest, ErrCodeFeeTooHigh, "Platform fee too high"}},
	{domain.ErrWithdrawUnsupported, Classification{http.StatusBadRequest, ErrCodeWithdrawNotAllowed, "Withdraw not supported"}},
	{domain.ErrUnauthorized, Classification{http.StatusUnauthorized, ErrCodeUnauthorized, "Unauthorized"}},
	{domain.ErrNotOwner, Classification{http.StatusForbidden, ErrCodeForbidden, "Not the token owner"}},
	{domain.ErrTokenNotFound, Classification{http.StatusNotFound, ErrCodeNotFound, "Token not found"}},
	{domain.ErrAlreadyMinted, Classification{http.StatusConflict, ErrCodeConflict, "Item already minted"}},
	{domain.ErrAlreadyInitialized, Classification{http.StatusConflict, ErrCodeConflict, "Governance already initialized"}},
	{domain.ErrNotInitialized, Classification{http.StatusConflict, ErrCodeNotInitialized, "Governance not initialized"}},
	{domain.ErrContractPaused, Classification{http.StatusLocked, ErrCodePaused, "Ledger is paused"}},
	{domain.ErrTransferFailed, Classification{http.StatusBadGateway, ErrCodeTransferFailed, "Value transfer failed"}},
}

// Classify maps a ledger error onto its API classification. ok is false for errors the ledger does not define.
func Classify(err error) (c Classification, ok bool) {
	for _, m := range classifications {
		if goerrors.Is(err, m.err) {
			return m.Classification, true
		}
	}
	return Classification{}, false
}
