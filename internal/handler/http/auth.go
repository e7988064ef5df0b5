package http

import (
	"encoding/json"
	"net/http"

	"github.com/meridianhr/console-backend-go/internal/domain/auth"
	"github.com/meridianhr/console-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout is a no-op on the server; tokens are short-lived and the client
// simply drops them. The endpoint exists so the frontend has a consistent
// place to call.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "Logged out", nil)
}
