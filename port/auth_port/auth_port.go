package auth_port

import (
	"context"

	"fieldboard/domain"
)

// AuthPort resolves a session token into the opaque user identity. The
// actual account store lives in the hosted auth service; this backend never
// sees credentials.
type AuthPort interface {
	ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error)
}
