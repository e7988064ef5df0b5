package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhr/console-backend-go/internal/domain/auth"
	"github.com/meridianhr/console-backend-go/internal/pkg/jwt"
	"github.com/meridianhr/console-backend-go/internal/pkg/validator"
)

type fakeVerifier struct {
	loggedUserFn func(ctx context.Context, apiKey, apiSecret string) (string, error)
}

func (f *fakeVerifier) LoggedUser(ctx context.Context, apiKey, apiSecret string) (string, error) {
	return f.loggedUserFn(ctx, apiKey, apiSecret)
}

func TestLogin(t *testing.T) {
	verifier := &fakeVerifier{
		loggedUserFn: func(ctx context.Context, apiKey, apiSecret string) (string, error) {
			assert.Equal(t, "key", apiKey)
			assert.Equal(t, "secret", apiSecret)
			return "admin@example.com", nil
		},
	}
	svc := NewAuthService(verifier, jwt.NewJWTService("test-signing-key", "8h"))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{APIKey: "key", APISecret: "secret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "admin@example.com", resp.Operator)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	verifier := &fakeVerifier{
		loggedUserFn: func(ctx context.Context, apiKey, apiSecret string) (string, error) {
			return "", errors.New("erp API error [401] AuthenticationError: invalid key")
		},
	}
	svc := NewAuthService(verifier, jwt.NewJWTService("test-signing-key", "8h"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{APIKey: "key", APISecret: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := NewAuthService(&fakeVerifier{}, jwt.NewJWTService("test-signing-key", "8h"))

	_, err := svc.Login(context.Background(), auth.LoginRequest{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
