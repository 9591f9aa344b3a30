package domain

import "time"

// Project is a unit of work for a Client, assigned to a set of users.
type Project struct {
	ID         string
	Name       string
	ClientID   string
	ClientName string

	CreatedBy         string
	CreatedByUsername string

	// Users is ordered by username.
	Users []UserRef

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Project) OwnerID() string { return p.CreatedBy }

// ProjectRef is the slice of a project exposed on its client.
type ProjectRef struct {
	ID   string
	Name string
}
