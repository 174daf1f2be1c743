package errors

import "fmt"

// DuplicateInvitationError reports that an outstanding invitation already
// exists for the same target and scope. It carries the existing invitation's
// id so the caller can reference it instead of creating a new row.
type DuplicateInvitationError struct {
	ExistingID string
}

func (e *DuplicateInvitationError) Error() string {
	return fmt.Sprintf("invitation already exists: %s", e.ExistingID)
}
