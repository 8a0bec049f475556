package application

import (
	"fmt"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/output"

	"github.com/sirupsen/logrus"
)

const apologyMessage = "Sorry, something went wrong handling that. Please try again."

// DialogService struct - Application service implementing the dialog engine.
// Orchestrates one turn: route to a handler and run it inside the store's
// per-identity update, which serializes all turns for one identity and
// persists on success. Different identities proceed in parallel.
type DialogService struct {
	router   *Router
	store    output.SessionStore
	loginURL string
}

// NewDialogService func - Creates the dialog engine.
// loginURL is the base URL of the account linking page, surfaced on the
// link-account card for users without a linked Twitter account.
func NewDialogService(router *Router, store output.SessionStore, loginURL string) *DialogService {
	return &DialogService{
		router:   router,
		store:    store,
		loginURL: loginURL,
	}
}

// HandleRequest func - Use case: process one voice turn.
// Never fails: handler errors and panics are absorbed into a spoken
// apology and logged with the identity and selector for diagnosis. A
// failed turn returns an error from the update closure, so nothing is
// persisted for it.
func (s *DialogService) HandleRequest(request domain.SkillRequest) domain.Envelope {
	// No linked account presented at all: there is no identity to key a
	// session by, so every request gets the link prompt.
	if request.Identity == "" {
		if request.Type == domain.RequestTypeSessionEnded {
			return domain.SayAndEnd("Goodbye!")
		}
		return s.linkPrompt(request.ExternalUserID)
	}

	var envelope domain.Envelope
	err := s.store.Update(request.Identity, func(session *domain.UserSession) error {
		// Multiple platform users can link to the same account; the session
		// tracks whichever device spoke last.
		session.ExternalUserID = request.ExternalUserID

		// Identity presented but never linked in this store: prompt linking
		// instead of dispatching. The rebound platform user is still saved.
		if !session.Credentials.Linked() && request.Type != domain.RequestTypeSessionEnded {
			envelope = s.linkPrompt(request.ExternalUserID)
			return nil
		}

		handler := s.router.Resolve(request)
		var err error
		envelope, err = s.invoke(handler, session, request)
		return err
	})
	if err != nil {
		logrus.Errorf("Handler failed: identity=%s, selector=%s: %v",
			request.Identity, request.Selector(), err)
		return domain.Say(apologyMessage)
	}

	return envelope
}

// invoke runs a handler with panic recovery. A panicking handler must not
// take down the request goroutine or leak a broken turn to the transport.
func (s *DialogService) invoke(handler HandlerFunc, session *domain.UserSession, request domain.SkillRequest) (envelope domain.Envelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return handler(session, request)
}

// linkPrompt builds the link-account response with a card pointing at the
// out-of-core linking flow
func (s *DialogService) linkPrompt(externalUserID string) domain.Envelope {
	card := &domain.Card{
		Title:   "Please log into Twitter",
		Content: fmt.Sprintf("%s/login/%s", s.loginURL, externalUserID),
	}
	return domain.NewResponse(
		"Welcome to Twitter. Looks like you haven't logged in. Log in via the card in your companion app.",
		card, false)
}
