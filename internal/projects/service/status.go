package service

import (
	"fmt"

	"github.com/projectstage/config-backend/internal/projects/domain"
)

// transitions is the status adjacency table enforced in strict mode.
// deleted is terminal.
var transitions = map[domain.Status]map[domain.Status]bool{
	domain.StatusActive:   {domain.StatusArchived: true, domain.StatusDeleted: true},
	domain.StatusArchived: {domain.StatusActive: true, domain.StatusDeleted: true},
	domain.StatusDeleted:  {},
}

// StateMachine validates status transitions before they reach the
// repository. The default mode is permissive and allows any move between
// known statuses, matching how downstream consumers use this API today;
// strict mode enforces the adjacency table.
type StateMachine struct {
	strict bool
}

func NewStateMachine(strict bool) *StateMachine {
	return &StateMachine{strict: strict}
}

// Validate checks a proposed move from current to next. Unknown statuses
// fail with ErrInvalidStatus in either mode; in strict mode a move outside
// the adjacency table fails with ErrConflict.
func (m *StateMachine) Validate(current, next domain.Status) error {
	if !domain.ValidStatus(next) {
		return fmt.Errorf("status %q: %w", next, domain.ErrInvalidStatus)
	}

	if !m.strict || current == next {
		return nil
	}

	if !transitions[current][next] {
		return fmt.Errorf("transition %s -> %s not allowed: %w", current, next, domain.ErrConflict)
	}
	return nil
}
