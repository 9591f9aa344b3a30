package domain

import "time"

// Client is a customer organisation that projects are carried out for.
type Client struct {
	ID   string
	Name string

	// CreatedBy is "" once the creating user has been deleted.
	CreatedBy         string
	CreatedByUsername string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Client) OwnerID() string { return c.CreatedBy }

// ClientDetail is a Client together with the projects filed under it.
type ClientDetail struct {
	Client
	Projects []ProjectRef
}
