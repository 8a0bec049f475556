package output

import "github.com/anjishnu/ask-alexa-twitter/internal/domain"

// LinkedAccount holds the result of a completed OAuth token exchange
type LinkedAccount struct {
	Credentials domain.Credentials
	UserID      string
	ScreenName  string
}

// TwitterClient interface - Output port
// Defines what the application needs from the Twitter REST API. Fetches
// return items in the order the API produced them. Calls with unusable
// credentials fail with domain.ErrCredentialsNotFound rather than a
// generic error so the engine can answer with a link prompt.
type TwitterClient interface {
	// HomeTimeline fetches the authenticated user's home timeline
	HomeTimeline(creds domain.Credentials) ([]domain.Tweet, error)

	// PostTweet posts a new status and returns a spoken result message
	PostTweet(creds domain.Credentials, message string) (string, error)

	// PostReply posts a reply to the tweet with the given id
	PostReply(creds domain.Credentials, message, inReplyToID string) (string, error)

	// RequestAuthorization obtains a request token and returns the
	// authorization URL to redirect the linking browser to
	RequestAuthorization(callbackURL string) (string, error)

	// ExchangeToken trades an authorized request token and verifier for
	// the access pair identifying the linked account
	ExchangeToken(oauthToken, oauthVerifier string) (LinkedAccount, error)
}
