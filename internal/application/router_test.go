package application

import (
	"errors"
	"testing"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
)

func stubHandler(reply string) HandlerFunc {
	return func(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
		return domain.Say(reply), nil
	}
}

// TestRouterRegisterDuplicateSelectorFails tests that a duplicate
// registration is rejected instead of silently overriding
func TestRouterRegisterDuplicateSelectorFails(t *testing.T) {
	router := NewRouter(stubHandler("default"))

	if err := router.Register("PostTweet", stubHandler("a")); err != nil {
		t.Fatalf("expected first registration to succeed, got %v", err)
	}

	err := router.Register("PostTweet", stubHandler("b"))
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if !errors.Is(err, domain.ErrDuplicateSelector) {
		t.Errorf("expected ErrDuplicateSelector, got %v", err)
	}

	// The original registration is untouched
	handler := router.Resolve(domain.SkillRequest{Type: domain.RequestTypeIntent, Intent: "PostTweet"})
	envelope, _ := handler(nil, domain.SkillRequest{})
	if envelope.SpeechText != "a" {
		t.Errorf("expected original handler to remain registered, got %q", envelope.SpeechText)
	}
}

// TestRouterRegisterEmptySelectorFails tests the empty-selector guard
func TestRouterRegisterEmptySelectorFails(t *testing.T) {
	router := NewRouter(stubHandler("default"))

	if err := router.Register("", stubHandler("a")); err == nil {
		t.Error("expected empty selector registration to fail")
	}
}

// TestRouterResolveNeverReturnsNil tests that every selector resolves,
// unknown and empty ones included
func TestRouterResolveNeverReturnsNil(t *testing.T) {
	router := NewRouter(stubHandler("default"))

	requests := []domain.SkillRequest{
		{Type: domain.RequestTypeIntent, Intent: "NoSuchIntent"},
		{Type: "WeirdRequestType"},
		{},
	}

	for _, request := range requests {
		handler := router.Resolve(request)
		if handler == nil {
			t.Fatalf("expected a handler for %+v, got nil", request)
		}
		envelope, err := handler(nil, request)
		if err != nil {
			t.Errorf("expected default handler to succeed, got %v", err)
		}
		if envelope.SpeechText != "default" {
			t.Errorf("expected default handler for %+v, got %q", request, envelope.SpeechText)
		}
	}
}

// TestRouterResolvePrefersIntentOverRequestType tests the selector keying
func TestRouterResolvePrefersIntentOverRequestType(t *testing.T) {
	router := NewRouter(stubHandler("default"))

	if err := router.Register(string(domain.RequestTypeIntent), stubHandler("by-type")); err != nil {
		t.Fatal(err)
	}
	if err := router.Register("ReadTweets", stubHandler("by-intent")); err != nil {
		t.Fatal(err)
	}

	handler := router.Resolve(domain.SkillRequest{Type: domain.RequestTypeIntent, Intent: "ReadTweets"})
	envelope, _ := handler(nil, domain.SkillRequest{})
	if envelope.SpeechText != "by-intent" {
		t.Errorf("expected intent name to win over request type, got %q", envelope.SpeechText)
	}
}
