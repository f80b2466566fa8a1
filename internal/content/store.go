package content

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// NoteStore is the persistence port for Note rows. Integer ids come from the
// store's own autoincrement sequence, so concurrent creates never collide.
type NoteStore interface {
	Create(ctx context.Context, n *Note) error
	ListDesc(ctx context.Context) ([]Note, error)
	FindByID(ctx context.Context, id uint64) (*Note, error)
}

// CommentStore is the persistence port for Comment rows.
type CommentStore interface {
	Create(ctx context.Context, c *Comment) error
	ListByNoteAsc(ctx context.Context, noteID uint64) ([]Comment, error)
}

type GormNoteStore struct {
	DB *gorm.DB
}

func (s *GormNoteStore) Create(ctx context.Context, n *Note) error {
	return s.DB.WithContext(ctx).Create(n).Error
}

func (s *GormNoteStore) ListDesc(ctx context.Context) ([]Note, error) {
	var rows []Note
	err := s.DB.WithContext(ctx).Order("id desc").Find(&rows).Error
	return rows, err
}

func (s *GormNoteStore) FindByID(ctx context.Context, id uint64) (*Note, error) {
	var n Note
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

type GormCommentStore struct {
	DB *gorm.DB
}

func (s *GormCommentStore) Create(ctx context.Context, c *Comment) error {
	return s.DB.WithContext(ctx).Create(c).Error
}

func (s *GormCommentStore) ListByNoteAsc(ctx context.Context, noteID uint64) ([]Comment, error) {
	var rows []Comment
	err := s.DB.WithContext(ctx).Where("note_id = ?", noteID).Order("id asc").Find(&rows).Error
	return rows, err
}
