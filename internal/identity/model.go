package identity

// User is an account record. ID is allocator-assigned and never reused;
// Username is unique (case-sensitive) and immutable after creation.
type User struct {
	ID           string `gorm:"primaryKey;size:64"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Name         string `gorm:"size:64;not null"`
	AvatarIndex  int    `gorm:"not null;default:1"`
	Bio          string `gorm:"size:255;not null;default:''"`
}
