package identity

import "github.com/google/uuid"

const userIDPrefix = "u_"

// NewUserID returns a fresh collision-resistant user id.
func NewUserID() string {
	return userIDPrefix + uuid.NewString()
}
