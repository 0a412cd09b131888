package handler

import (
	"errors"
	"net/http"

	userdomain "expense-tracker-go/internal/domain/user"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPayload struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAuthFailure(w, "invalid request body")
		return
	}

	account, err := h.Users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if isCredentialError(err) {
			h.log.BusinessError("auth.register: rejected", err, "username", req.Username)
			writeAuthFailure(w, err.Error())
			return
		}
		h.log.InternalError("auth.register: failed", err, "username", req.Username)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.session.Set(*account)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "registration successful",
		"user":    userPayload{ID: account.ID, Username: account.Username},
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeAuthFailure(w, "invalid request body")
		return
	}

	account, err := h.Users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if isCredentialError(err) {
			h.log.BusinessError("auth.login: rejected", err, "username", req.Username)
			writeAuthFailure(w, err.Error())
			return
		}
		h.log.InternalError("auth.login: failed", err, "username", req.Username)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	h.session.Set(*account)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "login successful",
		"user":    userPayload{ID: account.ID, Username: account.Username},
	})
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Clear()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "logout successful",
	})
}

func (h *Handlers) CheckAuth(w http.ResponseWriter, r *http.Request) {
	account, ok := h.session.Current()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"user":          userPayload{ID: account.ID, Username: account.Username},
	})
}

func isCredentialError(err error) bool {
	return errors.Is(err, userdomain.ErrUsernameRequired) ||
		errors.Is(err, userdomain.ErrPasswordRequired) ||
		errors.Is(err, userdomain.ErrUsernameTaken) ||
		errors.Is(err, userdomain.ErrInvalidCredentials)
}

func writeAuthFailure(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
