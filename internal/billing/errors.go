package billing

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("bill not found")
	// ErrRemoteNotFound is wrapped by RemoteResolutionError when the peer answered 404.
	ErrRemoteNotFound = errors.New("remote entity not found")
)

// NotFoundError reports a local lookup miss.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound && e.Entity == "bill" }

// RemoteResolutionError reports a failed call to a peer service.
type RemoteResolutionError struct {
	Service string
	ID      int64
	Err     error
}

func (e *RemoteResolutionError) Error() string {
	return fmt.Sprintf("resolve %d from %s: %v", e.ID, e.Service, e.Err)
}

func (e *RemoteResolutionError) Unwrap() error { return e.Err }
