package domain

import "time"

// Status is the lifecycle phase of a project.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
	StatusDeleted  Status = "deleted"
)

// ValidStatus reports whether s is one of the three known phases.
func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusArchived, StatusDeleted:
		return true
	}
	return false
}

// ProjectDescriptor is the caller-supplied configuration payload decoded
// from a staged entry. The id is never generated server-side.
type ProjectDescriptor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// Project is the persisted record. Only Status is ever mutated after
// creation; CreatedAt is set once by the repository.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
