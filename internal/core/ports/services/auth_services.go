package services

import "context"

// AuthSvc authenticates the owner and issues access tokens.
type AuthSvc interface {
	// Login checks the credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
}
