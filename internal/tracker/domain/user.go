package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id PHC string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the slice of a user exposed on other entities.
type UserRef struct {
	ID       string
	Username string
}

func (u User) Ref() UserRef { return UserRef{ID: u.ID, Username: u.Username} }
