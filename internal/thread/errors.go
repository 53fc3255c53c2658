package thread

import "fmt"

// MissingParentError reports a surviving comment whose parent is neither the
// story root nor another surviving comment. The two input sources disagree
// about the tree; the reconciliation aborts rather than fabricate a path.
type MissingParentError struct {
	ID       int
	ParentID int
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("comment %d: parent %d survived neither as root nor as a comment", e.ID, e.ParentID)
}

// PreconditionError reports malformed input: a tree or argument that violates
// the caller's side of the contract.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.Reason
}

func preconditionf(format string, args ...interface{}) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}
