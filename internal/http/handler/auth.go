package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"redbook/internal/auth"
	"redbook/internal/identity"
)

type AuthHandler struct {
	Users *identity.Service
	JWT   *auth.JWT
}

type registerReq struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	AvatarIndex *int   `json:"avatarIndex"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func userPayload(u *identity.User) map[string]any {
	return map[string]any{
		"id":          u.ID,
		"username":    u.Username,
		"name":        u.Name,
		"avatarIndex": u.AvatarIndex,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	avatar := 1
	if req.AvatarIndex != nil {
		avatar = *req.AvatarIndex
	}

	u, err := h.Users.Register(r.Context(), identity.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Name:        req.Name,
		AvatarIndex: avatar,
	})
	switch {
	case errors.Is(err, identity.ErrValidation):
		writeFail(w, msgIncompleteInput)
		return
	case errors.Is(err, identity.ErrDuplicateUsername):
		writeFail(w, msgUsernameTaken)
		return
	case err != nil:
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeOK(w, map[string]any{
		"user":  userPayload(u),
		"token": token,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	u, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		writeFail(w, msgBadCredentials)
		return
	}
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeOK(w, map[string]any{
		"user":  userPayload(u),
		"token": token,
	})
}
