package application

import (
	"errors"
	"strings"
	"testing"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/output"
)

func linkingTwitterClient() *MockTwitterClient {
	return &MockTwitterClient{
		ExchangeTokenFunc: func(oauthToken, oauthVerifier string) (output.LinkedAccount, error) {
			return output.LinkedAccount{
				Credentials: domain.Credentials{Token: "tok-1", Secret: "sec-1"},
				UserID:      "12345",
				ScreenName:  "testuser",
			}, nil
		},
	}
}

// TestCompleteLoginWritesThroughStoreUpdate tests that linking lands via
// the store's serialized update path, keyed by the access token
func TestCompleteLoginWritesThroughStoreUpdate(t *testing.T) {
	store := NewMockSessionStore()
	service := NewLinkService(linkingTwitterClient(), store)

	screenName, err := service.CompleteLogin("amzn-user-1", "req-tok", "verifier")
	if err != nil {
		t.Fatalf("expected login to complete, got %v", err)
	}
	if screenName != "testuser" {
		t.Errorf("expected the linked screen name, got %q", screenName)
	}
	if store.UpdateCalls != 1 {
		t.Errorf("expected exactly one store update, got %d", store.UpdateCalls)
	}

	session, ok := store.Sessions["tok-1"]
	if !ok {
		t.Fatal("expected a session keyed by the access token")
	}
	if !session.Credentials.Linked() {
		t.Error("expected credentials to be stored")
	}
	if session.DisplayName != "testuser" || session.ExternalUserID != "amzn-user-1" {
		t.Errorf("expected account fields to be stored, got %+v", session)
	}
}

// TestLinkTakesEffectOnNextTurn tests the handoff between the two
// services: a turn before linking gets the prompt, the link completes,
// the next turn for the same identity dispatches normally
func TestLinkTakesEffectOnNextTurn(t *testing.T) {
	store := NewMockSessionStore()
	twitter := linkingTwitterClient()
	dialog := newTestService(t, twitter, store)
	link := NewLinkService(twitter, store)

	before := dialog.HandleRequest(intentRequest("tok-1", IntentHelp, nil))
	if before.Card == nil {
		t.Fatal("expected the link prompt before linking")
	}

	if _, err := link.CompleteLogin("amzn-user-1", "req-tok", "verifier"); err != nil {
		t.Fatalf("expected login to complete, got %v", err)
	}

	after := dialog.HandleRequest(intentRequest("tok-1", IntentHelp, nil))
	if after.Card != nil {
		t.Error("expected no link prompt after linking")
	}
	if !strings.Contains(after.SpeechText, "You can post a tweet") {
		t.Errorf("expected the help response, got %q", after.SpeechText)
	}
}

// TestCompleteLoginExchangeFailureSurfaces tests that a failed token
// exchange creates no session
func TestCompleteLoginExchangeFailureSurfaces(t *testing.T) {
	store := NewMockSessionStore()
	twitter := &MockTwitterClient{
		ExchangeTokenFunc: func(oauthToken, oauthVerifier string) (output.LinkedAccount, error) {
			return output.LinkedAccount{}, errors.New("denied")
		},
	}
	service := NewLinkService(twitter, store)

	if _, err := service.CompleteLogin("amzn-user-1", "req-tok", "verifier"); err == nil {
		t.Fatal("expected the exchange failure to surface")
	}
	if len(store.Sessions) != 0 {
		t.Error("expected no session after a failed exchange")
	}
}
