package output

import "github.com/anjishnu/ask-alexa-twitter/internal/domain"

// SessionStore interface - Output port
// Durable keyed storage of per-identity conversational state. The store
// owns all session mutation: callers never hold a session pointer outside
// Update, so a save can never snapshot a session another goroutine is
// writing. Turns for one identity are serialized; different identities
// proceed in parallel.
type SessionStore interface {
	// Update runs fn with exclusive access to the identity's session,
	// creating an empty unlinked one if none exists. When fn returns nil
	// the full mapping is persisted before Update returns; a persistence
	// failure is logged and absorbed (the store falls back to in-memory
	// state for that cycle). When fn returns an error nothing is
	// persisted and the error is returned.
	Update(identity string, fn func(session *domain.UserSession) error) error

	// Load reads the persisted identity mapping at startup. A missing or
	// corrupt backing file leaves the store empty and is not an error;
	// implementations log it and carry on.
	Load() error

	// Save persists the full identity mapping atomically: a reader must
	// never observe a half-written file. Pending actions are not persisted.
	Save() error
}
