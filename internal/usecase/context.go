package usecase

import (
	"context"
	"strings"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"
	"rural-internship-backend/pkg/validation"
)

// requesterFromCtx extracts the authenticated requester set by the auth
// middleware. Missing identity means the request never passed authentication
// and fails with 401, never 403.
func requesterFromCtx(ctx context.Context) (string, domain.Role, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || userID == "" {
		return "", "", apperror.Unauthorized("User not authenticated")
	}

	role, _ := ctx.Value(domain.KeyUserRole).(domain.Role)
	if !role.Valid() {
		return "", "", apperror.Unauthorized("User not authenticated")
	}

	return userID, role, nil
}

// validationError turns validator output into a 400 with readable field
// messages.
func validationError(err error) error {
	return apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
}
