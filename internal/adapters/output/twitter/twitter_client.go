package twitter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/output"

	"github.com/dghubble/oauth1"
	twitterauth "github.com/dghubble/oauth1/twitter"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

// Compile-time check to ensure TwitterClientAdapter implements TwitterClient interface
var _ output.TwitterClient = (*TwitterClientAdapter)(nil)

// TwitterClientAdapter struct - Output adapter for the Twitter REST API.
// Signs requests with OAuth1 using the app's consumer pair plus the access
// pair of whichever account the call is made for. Request-token secrets for
// in-flight logins are held in memory only; a login interrupted by a
// restart simply starts over.
type TwitterClientAdapter struct {
	config  *oauth1.Config
	baseURL string

	mu             sync.Mutex
	requestSecrets map[string]string // request token -> request secret
}

// apiTweet mirrors the timeline JSON returned by the API
type apiTweet struct {
	IDStr string `json:"id_str"`
	Text  string `json:"text"`
	User  struct {
		Name       string `json:"name"`
		ScreenName string `json:"screen_name"`
	} `json:"user"`
}

// apiProfile mirrors the verify_credentials JSON returned by the API
type apiProfile struct {
	IDStr      string `json:"id_str"`
	ScreenName string `json:"screen_name"`
}

// NewTwitterClientAdapter func - Creates new Twitter client adapter.
// baseURL defaults to the public API host when empty.
func NewTwitterClientAdapter(consumerKey, consumerSecret, baseURL string) *TwitterClientAdapter {
	if baseURL == "" {
		baseURL = "https://api.twitter.com"
	}

	return &TwitterClientAdapter{
		config: &oauth1.Config{
			ConsumerKey:    consumerKey,
			ConsumerSecret: consumerSecret,
			Endpoint:       twitterauth.AuthorizeEndpoint,
		},
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		requestSecrets: make(map[string]string),
	}
}

// RequestAuthorization - Obtains a request token and returns the URL to
// send the linking browser to
func (a *TwitterClientAdapter) RequestAuthorization(callbackURL string) (string, error) {
	config := *a.config
	config.CallbackURL = callbackURL

	requestToken, requestSecret, err := config.RequestToken()
	if err != nil {
		return "", fmt.Errorf("failed to obtain request token: %w", err)
	}

	a.mu.Lock()
	a.requestSecrets[requestToken] = requestSecret
	a.mu.Unlock()

	authURL, err := config.AuthorizationURL(requestToken)
	if err != nil {
		return "", fmt.Errorf("failed to build authorization URL: %w", err)
	}
	return authURL.String(), nil
}

// ExchangeToken - Trades an authorized request token and verifier for the
// access pair, then resolves the account's display name
func (a *TwitterClientAdapter) ExchangeToken(oauthToken, oauthVerifier string) (output.LinkedAccount, error) {
	a.mu.Lock()
	requestSecret, ok := a.requestSecrets[oauthToken]
	delete(a.requestSecrets, oauthToken)
	a.mu.Unlock()

	if !ok {
		return output.LinkedAccount{}, fmt.Errorf("unknown or expired request token")
	}

	accessToken, accessSecret, err := a.config.AccessToken(oauthToken, requestSecret, oauthVerifier)
	if err != nil {
		return output.LinkedAccount{}, fmt.Errorf("failed to exchange access token: %w", err)
	}

	creds := domain.Credentials{Token: accessToken, Secret: accessSecret}

	profile, err := a.verifyCredentials(creds)
	if err != nil {
		return output.LinkedAccount{}, fmt.Errorf("failed to verify linked account: %w", err)
	}

	return output.LinkedAccount{
		Credentials: creds,
		UserID:      profile.IDStr,
		ScreenName:  profile.ScreenName,
	}, nil
}

// HomeTimeline - Fetches the home timeline in the order the API returns it
func (a *TwitterClientAdapter) HomeTimeline(creds domain.Credentials) ([]domain.Tweet, error) {
	body, err := a.do(creds, http.MethodGet, "/1.1/statuses/home_timeline.json", nil)
	if err != nil {
		return nil, err
	}

	var raw []apiTweet
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode home timeline: %w", err)
	}

	tweets := make([]domain.Tweet, 0, len(raw))
	for _, t := range raw {
		tweets = append(tweets, domain.Tweet{
			ID:     t.IDStr,
			Author: t.User.Name,
			Text:   t.Text,
		})
	}

	logrus.Infof("Fetched %d timeline tweets", len(tweets))
	return tweets, nil
}

// PostTweet - Posts a new status
func (a *TwitterClientAdapter) PostTweet(creds domain.Credentials, message string) (string, error) {
	params := url.Values{"status": {message}}
	if _, err := a.do(creds, http.MethodPost, "/1.1/statuses/update.json", params); err != nil {
		return "", err
	}

	return fmt.Sprintf("Successfully posted your tweet, %s.", message), nil
}

// PostReply - Posts a reply threaded onto an existing tweet
func (a *TwitterClientAdapter) PostReply(creds domain.Credentials, message, inReplyToID string) (string, error) {
	params := url.Values{
		"status":                {message},
		"in_reply_to_status_id": {inReplyToID},
	}
	if _, err := a.do(creds, http.MethodPost, "/1.1/statuses/update.json", params); err != nil {
		return "", err
	}

	return fmt.Sprintf("Successfully posted your reply, %s.", message), nil
}

// verifyCredentials resolves the profile behind an access pair
func (a *TwitterClientAdapter) verifyCredentials(creds domain.Credentials) (*apiProfile, error) {
	body, err := a.do(creds, http.MethodGet, "/1.1/account/verify_credentials.json", nil)
	if err != nil {
		return nil, err
	}

	var profile apiProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// do performs one signed API call. Unusable credentials surface as
// domain.ErrCredentialsNotFound so the dialog layer can prompt for linking
// instead of apologizing.
func (a *TwitterClientAdapter) do(creds domain.Credentials, method, path string, params url.Values) ([]byte, error) {
	if !creds.Linked() {
		return nil, domain.ErrCredentialsNotFound
	}

	client := a.config.Client(oauth1.NoContext, oauth1.NewToken(creds.Token, creds.Secret))
	client.Timeout = requestTimeout

	endpoint := a.baseURL + path
	var (
		resp *http.Response
		err  error
	)
	if method == http.MethodGet {
		if len(params) > 0 {
			endpoint += "?" + params.Encode()
		}
		resp, err = client.Get(endpoint)
	} else {
		resp, err = client.PostForm(endpoint, params)
	}
	if err != nil {
		return nil, fmt.Errorf("twitter request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read twitter response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrCredentialsNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter request %s %s returned status %d", method, path, resp.StatusCode)
	}
	return body, nil
}
