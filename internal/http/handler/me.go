package handler

import (
	"net/http"

	"redbook/internal/auth"
	"redbook/internal/identity"
)

type MeHandler struct {
	Users *identity.Service
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	u, err := h.Users.FindByID(r.Context(), uid)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	if u == nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	writeOK(w, map[string]any{"user": userPayload(u)})
}
