package auth

import "context"

type Service interface {
	// Login exchanges rut+password for token pair. Wrong credential and
	// blocked user are indistinguishable to the caller.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
