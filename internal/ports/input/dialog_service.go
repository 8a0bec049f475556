package input

import "github.com/anjishnu/ask-alexa-twitter/internal/domain"

// DialogService interface - Input port (use case)
// Defines what the application can do with one voice turn. The returned
// envelope is always usable; failures inside a turn are absorbed into a
// spoken apology rather than surfaced to the transport layer.
type DialogService interface {
	// HandleRequest processes one request/response cycle for an identity
	HandleRequest(request domain.SkillRequest) domain.Envelope
}
