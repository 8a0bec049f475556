package application

import (
	"fmt"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// LinkService struct - Application service implementing the account linking
// flow. The voice platform cannot perform the OAuth dance itself, so the
// user follows the card link in a browser: StartLogin redirects to Twitter,
// CompleteLogin receives the callback and creates the session.
type LinkService struct {
	twitter output.TwitterClient
	store   output.SessionStore
}

// NewLinkService func - Creates new account link service
func NewLinkService(twitter output.TwitterClient, store output.SessionStore) *LinkService {
	return &LinkService{
		twitter: twitter,
		store:   store,
	}
}

// StartLogin func - Use case: begin the OAuth handshake for a platform user
func (s *LinkService) StartLogin(externalUserID, callbackURL string) (string, error) {
	authURL, err := s.twitter.RequestAuthorization(callbackURL)
	if err != nil {
		return "", fmt.Errorf("request authorization for %s: %w", externalUserID, err)
	}

	logrus.Infof("Started account linking: externalUserID=%s", externalUserID)
	return authURL, nil
}

// CompleteLogin func - Use case: finish linking after Twitter redirects back.
// The access token becomes the canonical identity: it is what the voice
// platform presents on every subsequent request for this account. Linking
// the same Twitter account from a second platform user rebinds the existing
// session rather than creating another one.
func (s *LinkService) CompleteLogin(externalUserID, oauthToken, oauthVerifier string) (string, error) {
	account, err := s.twitter.ExchangeToken(oauthToken, oauthVerifier)
	if err != nil {
		return "", fmt.Errorf("exchange token for %s: %w", externalUserID, err)
	}

	// The store's update serializes this against any turn in flight for the
	// same account, so a link never lands mid-handler.
	if err := s.store.Update(account.Credentials.Token, func(session *domain.UserSession) error {
		session.Credentials = account.Credentials
		session.DisplayName = account.ScreenName
		session.ExternalUserID = externalUserID
		return nil
	}); err != nil {
		return "", fmt.Errorf("store linked session: %w", err)
	}

	logrus.Infof("Linked account: externalUserID=%s, screenName=%s", externalUserID, account.ScreenName)
	return account.ScreenName, nil
}
