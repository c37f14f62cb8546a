package diffsync

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateObject is returned when a (type, unique id) pair is already stored.
	ErrDuplicateObject = errors.New("object already present")

	// ErrObjectNotPresent is returned when a lookup, update or delete targets a missing object.
	ErrObjectNotPresent = errors.New("object not present")

	// ErrUnknownObjectType is returned when the destination registry cannot construct a type.
	ErrUnknownObjectType = errors.New("unknown object type")

	// ErrDanglingChild is returned by Store.Validate for child ids that resolve to nothing.
	ErrDanglingChild = errors.New("dangling child reference")

	// ErrObjectCrud matches every *CrudError through errors.Is.
	ErrObjectCrud = errors.New("object crud operation failed")
)

// CrudError reports a recoverable failure of a create, update or delete handler.
// The Syncer records it and continues with the rest of the tree.
type CrudError struct {
	Action Action
	Type   string
	ID     string
	Err    error
}

// NewCrudError wraps err as a recoverable CRUD failure.
func NewCrudError(action Action, typ, id string, err error) *CrudError {
	return &CrudError{Action: action, Type: typ, ID: id, Err: err}
}

func (e *CrudError) Error() string {
	return fmt.Sprintf("%s %s %q: %v", e.Action, e.Type, e.ID, e.Err)
}

func (e *CrudError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrObjectCrud) match any CrudError.
func (e *CrudError) Is(target error) bool {
	return target == ErrObjectCrud
}
