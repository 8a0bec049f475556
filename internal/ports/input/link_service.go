package input

// AccountLinkService interface - Input port (use case)
// Defines the browser-driven account linking flow that produces the
// identity consumed by the dialog engine.
type AccountLinkService interface {
	// StartLogin begins the OAuth handshake for a platform user and returns
	// the authorization URL the browser should be redirected to.
	// callbackURL is where the provider sends the user after authorizing.
	StartLogin(externalUserID, callbackURL string) (string, error)

	// CompleteLogin exchanges the verifier for an access pair, creates the
	// session for the new identity and persists it. Returns the linked
	// account's display name.
	CompleteLogin(externalUserID, oauthToken, oauthVerifier string) (string, error)
}
