package auth

import (
	"context"
	"fmt"

	"github.com/meridianhr/console-backend-go/internal/domain/auth"
	"github.com/meridianhr/console-backend-go/internal/pkg/jwt"
)

// CredentialVerifier checks an API key pair against the ERP backend and
// returns the user it belongs to.
type CredentialVerifier interface {
	LoggedUser(ctx context.Context, apiKey, apiSecret string) (string, error)
}

type AuthServiceImpl struct {
	verifier   CredentialVerifier
	jwtService jwt.Service
}

func NewAuthService(verifier CredentialVerifier, jwtService jwt.Service) auth.Service {
	return &AuthServiceImpl{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	operator, err := s.verifier.LoggedUser(ctx, req.APIKey, req.APISecret)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("%w: %v", auth.ErrInvalidCredentials, err)
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(operator)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Operator:    operator,
	}, nil
}
