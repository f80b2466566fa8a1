package content

import "github.com/lib/pq"

// Note carries a denormalized author snapshot taken at creation time.
// AuthorName/AuthorAvatar are copies of the author's profile as it was then
// and are never resynchronized.
type Note struct {
	ID           uint64         `gorm:"primaryKey"`
	Title        string         `gorm:"size:200;not null"`
	Content      string         `gorm:"type:text;not null"`
	Images       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	AuthorID     string         `gorm:"size:64;index;not null"`
	AuthorName   string         `gorm:"size:64;not null"`
	AuthorAvatar int            `gorm:"not null"`
	CreatedAt    int64          `gorm:"not null"` // epoch millis
}

// Comment attaches to a note. Same snapshot policy as Note. LikeCount has no
// mutation path yet; it is persisted so the counter can be wired later
// without a migration.
type Comment struct {
	ID         uint64 `gorm:"primaryKey"`
	NoteID     uint64 `gorm:"index;not null"`
	AuthorID   string `gorm:"size:64;not null"`
	AuthorName string `gorm:"size:64;not null"`
	Content    string `gorm:"type:text;not null"`
	LikeCount  int    `gorm:"not null;default:0"`
	CreatedAt  int64  `gorm:"not null"` // epoch millis
}
