package auth

import "github.com/meridianhr/console-backend-go/internal/pkg/validator"

// LoginRequest carries the operator's ERP API key pair. Verification is
// delegated to the ERP backend; the console keeps no credential store.
type LoginRequest struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.APIKey) {
		errs = append(errs, validator.ValidationError{Field: "api_key", Message: "is required"})
	}
	if validator.IsEmpty(r.APISecret) {
		errs = append(errs, validator.ValidationError{Field: "api_secret", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	Operator    string `json:"operator"`
}
