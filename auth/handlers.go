package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"sudokuGo/models"
	"sudokuGo/utils"
)

// Handlers exposes the account flows over HTTP/JSON.
type Handlers struct {
	svc *Service
}

func NewHandlers(svc *Service) *Handlers {
	return &Handlers{svc: svc}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

// Register Handler
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || !utils.ValidEmail(req.Email) {
		utils.WriteJSONError(w, http.StatusBadRequest, "Username, email and password are required")
		return
	}

	account, token, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      account.ID,
		Username:    account.Username,
		Email:       account.Email,
	})
}

// Verify Registration Handler
func (h *Handlers) VerifyRegistration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.ConfirmRegistration(req.Email, req.Code); err != nil {
		writeAuthError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Verification successful"})
}

// Verify Code Handler (probe before reset, does not consume the code)
func (h *Handlers) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.VerifyResetCode(req.Email, req.Code); err != nil {
		writeAuthError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Verification code is valid"})
}

// Login Handler
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      account.ID,
		Username:    account.Username,
		Email:       account.Email,
	})
}

// Me Handler
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request, account models.Account) {
	utils.WriteJSONResponse(w, http.StatusOK, account)
}

// Forgot Password Handler
func (h *Handlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.ForgotPassword(req.Email); err != nil {
		writeAuthError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "A verification code has been sent to your email"})
}

// Reset Password Handler
func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NewPassword == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "New password is required")
		return
	}

	if err := h.svc.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		writeAuthError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Password has been reset"})
}

// RequireAuth wraps a handler with Bearer token authentication. The resolved
// account is passed through so downstream ownership checks always run
// against the verified identity.
func (h *Handlers) RequireAuth(next func(http.ResponseWriter, *http.Request, models.Account)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteJSONError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		account, err := h.svc.CurrentAccount(parts[1])
		if err != nil {
			utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next(w, r, account)
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidCode),
		errors.Is(err, ErrExpiredCode),
		errors.Is(err, ErrAccountMismatch):
		utils.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrUnknownSubject):
		utils.WriteJSONError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUnknownEmail):
		utils.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrNotificationDelivery):
		utils.WriteJSONError(w, http.StatusServiceUnavailable, "Could not send the verification email. Please try again later.")
	default:
		log.Printf("auth: internal error: %v", err)
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
