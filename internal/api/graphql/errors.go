package graphql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-tipping-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
)

var errInternal = errors.New("internal server error")

// ErrorPresenter formats errors the same way the REST API classifies them.
// Parse and validation errors raised by gqlparser pass through untouched.
func ErrorPresenter(ctx context.Context, err error) *gqlerror.Error {
	var gqlErr *gqlerror.Error
	if !errors.As(err, &gqlErr) {
		gqlErr = &gqlerror.Error{Message: err.Error(), Err: err}
	}

	c, ok := apierrors.Classify(err)
	switch {
	case ok && c.Status < http.StatusInternalServerError:
		extensions := map[string]interface{}{
			"code":    string(c.Code),
			"message": c.Message,
		}
		if details := err.Error(); details != c.Message {
			extensions["details"] = details
		}
		return &gqlerror.Error{
			Message:    c.Message,
			Path:       gqlErr.Path,
			Locations:  gqlErr.Locations,
			Extensions: extensions,
		}
	case !ok && gqlErr.Err == nil:
		return gqlErr
	default:
		return handleInternalError(ctx, gqlErr, err)
	}
}

// handleInternalError logs the cause and hides it from the client
func handleInternalError(ctx context.Context, gqlErr *gqlerror.Error, err error) *gqlerror.Error {
	if !errors.Is(err, errInternal) {
		logger.ErrorCtx(ctx, err, zap.String("path", gqlErr.Path.String()))
	}
	return &gqlerror.Error{
		Message: "Internal server error",
		Path:    gqlErr.Path,
		Extensions: map[string]interface{}{
			"code":    string(apierrors.ErrCodeInternalError),
			"message": "Internal server error",
		},
	}
}

// RecoverFunc handles panics in resolvers
func RecoverFunc(ctx context.Context, err interface{}) error {
	logger.ErrorCtx(ctx, fmt.Errorf("panic: %v", err), zap.Any("panic", err))
	return errInternal
}
