package content

import (
	"context"
	"sort"
	"testing"

	"redbook/internal/identity"

	"github.com/stretchr/testify/require"
)

type fakeAuthors struct {
	users map[string]*identity.User
}

func (f *fakeAuthors) FindByID(_ context.Context, id string) (*identity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// memNoteStore assigns sequential ids like the relational store does.
type memNoteStore struct {
	nextID uint64
	notes  []Note
}

func (m *memNoteStore) Create(_ context.Context, n *Note) error {
	m.nextID++
	n.ID = m.nextID
	m.notes = append(m.notes, *n)
	return nil
}

func (m *memNoteStore) ListDesc(_ context.Context) ([]Note, error) {
	out := make([]Note, len(m.notes))
	copy(out, m.notes)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memNoteStore) FindByID(_ context.Context, id uint64) (*Note, error) {
	for _, n := range m.notes {
		if n.ID == id {
			cp := n
			return &cp, nil
		}
	}
	return nil, nil
}

type memCommentStore struct {
	nextID   uint64
	comments []Comment
}

func (m *memCommentStore) Create(_ context.Context, c *Comment) error {
	m.nextID++
	c.ID = m.nextID
	m.comments = append(m.comments, *c)
	return nil
}

func (m *memCommentStore) ListByNoteAsc(_ context.Context, noteID uint64) ([]Comment, error) {
	out := []Comment{}
	for _, c := range m.comments {
		if c.NoteID == noteID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func newTestService(users ...*identity.User) (*Service, *memNoteStore, *memCommentStore) {
	authors := &fakeAuthors{users: map[string]*identity.User{}}
	for _, u := range users {
		authors.users[u.ID] = u
	}
	ns := &memNoteStore{}
	cs := &memCommentStore{}
	return &Service{Authors: authors, Notes: ns, Comments: cs}, ns, cs
}

func TestCreateNote_SnapshotsAuthor(t *testing.T) {
	t.Parallel()

	alice := &identity.User{ID: "u_1", Username: "alice", Name: "Alice", AvatarIndex: 2}
	svc, _, _ := newTestService(alice)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, CreateNoteInput{
		Title:    "hello",
		Content:  "first note",
		AuthorID: "u_1",
	})
	require.NoError(t, err)
	require.Equal(t, "u_1", n.AuthorID)
	require.Equal(t, "Alice", n.AuthorName)
	require.Equal(t, 2, n.AuthorAvatar)
	require.Greater(t, n.CreatedAt, int64(0))

	// snapshot must survive later author edits
	alice.Name = "Alicia"
	alice.AvatarIndex = 5

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "Alice", notes[0].AuthorName)
	require.Equal(t, 2, notes[0].AuthorAvatar)
}

func TestCreateNote_UnknownAuthor(t *testing.T) {
	t.Parallel()

	svc, ns, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, CreateNoteInput{Title: "x", AuthorID: "missing"})
	require.ErrorIs(t, err, ErrUnknownAuthor)

	// rejected create must not write
	require.Empty(t, ns.notes)

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestListNotes_NewestFirst(t *testing.T) {
	t.Parallel()

	alice := &identity.User{ID: "u_1", Name: "Alice", AvatarIndex: 1}
	svc, _, _ := newTestService(alice)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateNote(ctx, CreateNoteInput{Title: "t", AuthorID: "u_1"})
		require.NoError(t, err)
	}

	notes, err := svc.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 5)
	for i := range notes {
		require.Equal(t, uint64(5-i), notes[i].ID)
	}
}

func TestCreateNote_CreatedAtNonDecreasing(t *testing.T) {
	t.Parallel()

	alice := &identity.User{ID: "u_1", Name: "Alice", AvatarIndex: 1}
	svc, _, _ := newTestService(alice)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 3; i++ {
		n, err := svc.CreateNote(ctx, CreateNoteInput{Title: "t", AuthorID: "u_1"})
		require.NoError(t, err)
		require.GreaterOrEqual(t, n.CreatedAt, prev)
		prev = n.CreatedAt
	}
}

func TestCreateComment(t *testing.T) {
	t.Parallel()

	alice := &identity.User{ID: "u_1", Name: "Alice", AvatarIndex: 2}
	bob := &identity.User{ID: "u_2", Name: "Bob", AvatarIndex: 3}
	svc, _, _ := newTestService(alice, bob)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, CreateNoteInput{Title: "t", AuthorID: "u_1"})
	require.NoError(t, err)

	c, err := svc.CreateComment(ctx, CreateCommentInput{NoteID: n.ID, AuthorID: "u_2", Content: "nice"})
	require.NoError(t, err)
	require.Equal(t, n.ID, c.NoteID)
	require.Equal(t, "u_2", c.AuthorID)
	require.Equal(t, "Bob", c.AuthorName)
	require.Equal(t, 0, c.LikeCount)
	require.Greater(t, c.CreatedAt, int64(0))
}

func TestCreateComment_Rejections(t *testing.T) {
	t.Parallel()

	alice := &identity.User{ID: "u_1", Name: "Alice", AvatarIndex: 1}
	svc, _, cs := newTestService(alice)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, CreateNoteInput{Title: "t", AuthorID: "u_1"})
	require.NoError(t, err)

	_, err = svc.CreateComment(ctx, CreateCommentInput{NoteID: n.ID, AuthorID: "u_1", Content: "   "})
	require.ErrorIs(t, err, ErrEmptyContent)

	_, err = svc.CreateComment(ctx, CreateCommentInput{NoteID: n.ID, AuthorID: "missing", Content: "hi"})
	require.ErrorIs(t, err, ErrUnknownAuthor)

	_, err = svc.CreateComment(ctx, CreateCommentInput{NoteID: 999, AuthorID: "u_1", Content: "hi"})
	require.ErrorIs(t, err, ErrUnknownNote)

	require.Empty(t, cs.comments)
}

func TestListComments_CreationOrder(t *testing.T) {
	t.Parallel()

	alice := &identity.User{ID: "u_1", Name: "Alice", AvatarIndex: 1}
	svc, _, _ := newTestService(alice)
	ctx := context.Background()

	n, err := svc.CreateNote(ctx, CreateNoteInput{Title: "t", AuthorID: "u_1"})
	require.NoError(t, err)

	for _, txt := range []string{"one", "two", "three"} {
		_, err := svc.CreateComment(ctx, CreateCommentInput{NoteID: n.ID, AuthorID: "u_1", Content: txt})
		require.NoError(t, err)
	}

	comments, err := svc.ListComments(ctx, n.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	require.Equal(t, "one", comments[0].Content)
	require.Equal(t, "two", comments[1].Content)
	require.Equal(t, "three", comments[2].Content)

	// note with no comments lists empty, not an error
	empty, err := svc.ListComments(ctx, 12345)
	require.NoError(t, err)
	require.Empty(t, empty)
}
