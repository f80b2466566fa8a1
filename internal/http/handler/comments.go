package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"redbook/internal/content"

	"github.com/go-chi/chi/v5"
)

type CommentHandler struct {
	Svc *content.Service
}

type commentDTO struct {
	ID         uint64 `json:"id"`
	NoteID     uint64 `json:"noteId"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	Content    string `json:"content"`
	LikeCount  int    `json:"likeCount"`
	CreatedAt  int64  `json:"createdAt"`
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	noteID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	comments, err := h.Svc.ListComments(r.Context(), noteID)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	out := make([]commentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentDTO{
			ID:         c.ID,
			NoteID:     c.NoteID,
			AuthorID:   c.AuthorID,
			AuthorName: c.AuthorName,
			Content:    c.Content,
			LikeCount:  c.LikeCount,
			CreatedAt:  c.CreatedAt,
		})
	}

	writeOK(w, out)
}

type createCommentReq struct {
	AuthorID string `json:"authorId"`
	Content  string `json:"content"`
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	noteID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createCommentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	c, err := h.Svc.CreateComment(r.Context(), content.CreateCommentInput{
		NoteID:   noteID,
		AuthorID: req.AuthorID,
		Content:  req.Content,
	})
	switch {
	case errors.Is(err, content.ErrEmptyContent):
		writeFail(w, msgIncompleteInput)
		return
	case errors.Is(err, content.ErrUnknownAuthor):
		writeFail(w, msgUnknownAuthor)
		return
	case errors.Is(err, content.ErrUnknownNote):
		writeFail(w, msgUnknownNote)
		return
	case err != nil:
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	writeOK(w, map[string]any{"id": c.ID})
}
