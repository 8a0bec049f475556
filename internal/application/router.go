package application

import (
	"fmt"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
)

// HandlerFunc processes one turn for a locked session and produces the
// response envelope. A returned error is absorbed by the dialog engine.
type HandlerFunc func(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error)

// Router struct - Maps a request's selector (intent name, or request type
// for non-intent requests) to its registered handler. The table is built
// once at startup; there is no runtime re-registration.
type Router struct {
	handlers map[string]HandlerFunc
	fallback HandlerFunc
}

// NewRouter creates a router with the given default handler, returned for
// any selector without a registration
func NewRouter(fallback HandlerFunc) *Router {
	return &Router{
		handlers: make(map[string]HandlerFunc),
		fallback: fallback,
	}
}

// Register maps a selector to a handler. Registering the same selector
// twice is a configuration error and fails so startup can abort before
// serving traffic; a silent last-definition-wins override is exactly the
// bug this table exists to prevent.
func (r *Router) Register(selector string, handler HandlerFunc) error {
	if selector == "" {
		return fmt.Errorf("register handler: empty selector")
	}
	if _, exists := r.handlers[selector]; exists {
		return fmt.Errorf("register handler %q: %w", selector, domain.ErrDuplicateSelector)
	}

	r.handlers[selector] = handler
	return nil
}

// Resolve returns the handler for a request, keyed by intent name when the
// request carries one and by request type otherwise. Never fails: unmapped
// selectors resolve to the default handler.
func (r *Router) Resolve(request domain.SkillRequest) HandlerFunc {
	if handler, ok := r.handlers[request.Selector()]; ok {
		return handler
	}
	return r.fallback
}
