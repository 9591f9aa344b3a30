package http

import (
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// createdBy renders a creator username, or null when the creator is gone.
func createdBy(username string) *string {
	if username == "" {
		return nil
	}
	return &username
}

func clientSummary(c domain.Client) trackersdk.ClientSummary {
	return trackersdk.ClientSummary{
		ID:         c.ID,
		ClientName: c.Name,
		CreatedAt:  formatTime(c.CreatedAt),
		CreatedBy:  createdBy(c.CreatedByUsername),
	}
}

func clientView(c domain.Client) trackersdk.ClientView {
	return trackersdk.ClientView{
		ID:         c.ID,
		ClientName: c.Name,
		CreatedAt:  formatTime(c.CreatedAt),
		CreatedBy:  createdBy(c.CreatedByUsername),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func clientDetail(c domain.ClientDetail) trackersdk.ClientDetail {
	projects := make([]trackersdk.ProjectRef, len(c.Projects))
	for i, p := range c.Projects {
		projects[i] = trackersdk.ProjectRef{ID: p.ID, Name: p.Name}
	}
	return trackersdk.ClientDetail{
		ID:         c.ID,
		ClientName: c.Name,
		Projects:   projects,
		CreatedAt:  formatTime(c.CreatedAt),
		CreatedBy:  createdBy(c.CreatedByUsername),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func projectSummary(p domain.Project) trackersdk.ProjectSummary {
	return trackersdk.ProjectSummary{
		ID:          p.ID,
		ProjectName: p.Name,
		ClientName:  p.ClientName,
		CreatedAt:   formatTime(p.CreatedAt),
		CreatedBy:   createdBy(p.CreatedByUsername),
	}
}

func projectView(p domain.Project) trackersdk.Project {
	users := make([]trackersdk.ProjectUser, len(p.Users))
	for i, u := range p.Users {
		users[i] = trackersdk.ProjectUser{ID: u.ID, Username: u.Username}
	}
	return trackersdk.Project{
		ID:          p.ID,
		ProjectName: p.Name,
		ClientName:  p.ClientName,
		Users:       users,
		CreatedAt:   formatTime(p.CreatedAt),
		CreatedBy:   createdBy(p.CreatedByUsername),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}
