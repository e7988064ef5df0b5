package auth

import "context"

// Service handles operator login. Credential verification is delegated to
// the ERP backend.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
