package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Analyses can optionally be associated with
// one; anonymous analyses are still allowed.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}
