// Package auth_gateway adapts the auth service client to the auth port.
package auth_gateway

import (
	"context"

	"fieldboard/domain"
	"fieldboard/driver/auth"
	"fieldboard/port/auth_port"
)

type AuthGateway struct {
	client *auth.Client
}

var _ auth_port.AuthPort = (*AuthGateway)(nil)

func NewAuthGateway(client *auth.Client) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error) {
	return g.client.ValidateSession(ctx, sessionToken)
}
