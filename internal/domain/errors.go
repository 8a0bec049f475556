package domain

import "errors"

var (
	// ErrCredentialsNotFound indicates the Twitter collaborator has no usable
	// credentials for the identity (e.g. the token was revoked upstream)
	ErrCredentialsNotFound = errors.New("twitter credentials not found")

	// ErrDuplicateSelector indicates two handlers were registered for the
	// same intent name or request type at startup
	ErrDuplicateSelector = errors.New("duplicate handler selector")

	// ErrNoSuchItem indicates an ordinal reference pointed outside the
	// current tweet queue
	ErrNoSuchItem = errors.New("no such item in queue")
)
