package content

import (
	"context"
	"errors"
	"strings"
	"time"

	"redbook/internal/identity"

	"github.com/lib/pq"
)

var ErrUnknownAuthor = errors.New("author does not exist")
var ErrUnknownNote = errors.New("note does not exist")
var ErrEmptyContent = errors.New("content required")

// DefaultTitle is stored when a note request carries no title.
const DefaultTitle = "无标题"

// AuthorResolver looks up the user a new note or comment claims as author.
type AuthorResolver interface {
	FindByID(ctx context.Context, id string) (*identity.User, error)
}

// Service owns note and comment creation. Every create resolves the author
// first and copies name/avatar into the new row; a bad reference means no
// write happens at all.
type Service struct {
	Authors  AuthorResolver
	Notes    NoteStore
	Comments CommentStore
}

type CreateNoteInput struct {
	Title    string
	Content  string
	Images   []string
	AuthorID string
}

type CreateCommentInput struct {
	NoteID   uint64
	AuthorID string
	Content  string
}

func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.Notes.ListDesc(ctx)
}

func (s *Service) CreateNote(ctx context.Context, in CreateNoteInput) (*Note, error) {
	author, err := s.Authors.FindByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnknownAuthor
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	n := &Note{
		Title:        in.Title,
		Content:      in.Content,
		Images:       pq.StringArray(images),
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.AvatarIndex,
		CreatedAt:    time.Now().UnixMilli(),
	}
	if err := s.Notes.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListComments(ctx context.Context, noteID uint64) ([]Comment, error) {
	return s.Comments.ListByNoteAsc(ctx, noteID)
}

func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, ErrEmptyContent
	}

	author, err := s.Authors.FindByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnknownAuthor
	}

	note, err := s.Notes.FindByID(ctx, in.NoteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrUnknownNote
	}

	c := &Comment{
		NoteID:     note.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    in.Content,
		LikeCount:  0,
		CreatedAt:  time.Now().UnixMilli(),
	}
	if err := s.Comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
