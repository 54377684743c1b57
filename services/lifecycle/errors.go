package lifecycle

import "errors"

var (
	// ErrServiceNotFound means the transition referenced an unknown service;
	// no state was changed.
	ErrServiceNotFound = errors.New("service not found")
	// ErrInvalidTransition means the status change is not in the legal
	// transition table.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnknownStatus means the target status is not a lifecycle state.
	ErrUnknownStatus = errors.New("unknown service status")
	// ErrCollaboratorNotFound means the assignment patch referenced an
	// unknown collaborator; the transition was not applied.
	ErrCollaboratorNotFound = errors.New("collaborator not found")
)
