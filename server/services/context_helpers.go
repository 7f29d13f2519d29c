package services

import (
	"context"

	apperrors "crmserver/server/errors"
)

// ValidateContext checks that ctx is non-nil and not already cancelled.
// Every service method calls it before doing any work so cancelled
// requests fail the same way everywhere.
func ValidateContext(ctx context.Context) error {
	if ctx == nil {
		return apperrors.NewValidationError("context cannot be nil", nil)
	}

	select {
	case <-ctx.Done():
		return apperrors.NewServiceUnavailableError("request context cancelled", ctx.Err())
	default:
		return nil
	}
}
