package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"redbook/internal/content"
)

type NoteHandler struct {
	Svc *content.Service
}

type noteDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Images      []string `json:"images"`
	CreatedAt   int64    `json:"createdAt"`
	AuthorID    string   `json:"authorId"`
	AuthorName  string   `json:"authorName"`
	AvatarIndex int      `json:"avatarIndex"`
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Svc.ListNotes(r.Context())
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]noteDTO, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteDTO{
			ID:          n.ID,
			Title:       n.Title,
			Content:     n.Content,
			Images:      []string(n.Images),
			CreatedAt:   n.CreatedAt,
			AuthorID:    n.AuthorID,
			AuthorName:  n.AuthorName,
			AvatarIndex: n.AuthorAvatar,
		})
	}

	writeOK(w, out)
}

type createNoteReq struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Images   []string `json:"images"`
	AuthorID string   `json:"authorId"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	// Absent fields get defaults; an explicit empty string stays empty.
	title := content.DefaultTitle
	if req.Title != nil {
		title = *req.Title
	}
	body := ""
	if req.Content != nil {
		body = *req.Content
	}

	n, err := h.Svc.CreateNote(r.Context(), content.CreateNoteInput{
		Title:    title,
		Content:  body,
		Images:   req.Images,
		AuthorID: req.AuthorID,
	})
	if errors.Is(err, content.ErrUnknownAuthor) {
		writeFail(w, msgUnknownAuthor)
		return
	}
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeOK(w, map[string]any{"id": n.ID})
}
