package domain

// PendingActionKind tags the side effect a staged action will perform
type PendingActionKind string

const (
	// PendingActionPost - Post a new tweet
	PendingActionPost PendingActionKind = "post"
	// PendingActionReply - Reply to an existing tweet
	PendingActionReply PendingActionKind = "reply"
)

// PendingAction represents a staged, not-yet-executed side effect awaiting
// spoken confirmation. It is a plain data variant rather than a closure so
// it can be inspected and tested without the Twitter collaborator; the
// dialog engine dispatches on Kind when the user confirms.
//
// Pending actions are deliberately not serialized with the session: an
// action outstanding across a process restart is lost, and the session
// reloads without it. That is an accepted data-loss boundary.
type PendingAction struct {
	Kind        PendingActionKind
	Description string
	Payload     string
	TargetID    string
}

// Credentials represents the OAuth access pair for one linked account.
// Opaque to the dialog engine; only the Twitter adapter interprets it.
type Credentials struct {
	Token  string `json:"token"`
	Secret string `json:"secret"`
}

// Linked reports whether the pair has been populated by account linking
func (c Credentials) Linked() bool {
	return c.Token != "" && c.Secret != ""
}

// FocusItem represents the single tweet the user is implicitly referring
// to ("reply to that one"), resolved by position against the full queue
type FocusItem struct {
	Position int   `json:"position"`
	Item     Tweet `json:"item"`
}

// UserSession represents the conversational state for one linked identity.
// The dialog engine owns a session exclusively for the duration of a turn;
// all mutation happens under the engine's per-identity lock.
type UserSession struct {
	Identity       string         `json:"identity"`
	Credentials    Credentials    `json:"credentials"`
	DisplayName    string         `json:"displayName"`
	ExternalUserID string         `json:"externalUserId"`
	Pending        *PendingAction `json:"-"`
	Focus          *FocusItem     `json:"focus,omitempty"`
	Queue          *TweetQueue    `json:"queue,omitempty"`
}

// NewUserSession creates an empty session for an identity. The session is
// in the unlinked state until credentials are attached.
func NewUserSession(identity string) *UserSession {
	return &UserSession{Identity: identity}
}

// StagePending stages an action awaiting confirmation. At most one action
// is outstanding per session; staging a new one silently discards any
// unconfirmed prior one (last wins).
func (s *UserSession) StagePending(action PendingAction) {
	s.Pending = &action
}

// TakePending removes and returns the outstanding pending action.
// Returns ok=false when nothing is staged. The caller executes the action
// at most once; because the entry is removed before execution, no
// confirm/cancel interleaving can run it twice.
func (s *UserSession) TakePending() (PendingAction, bool) {
	if s.Pending == nil {
		return PendingAction{}, false
	}

	action := *s.Pending
	s.Pending = nil
	return action, true
}

// CancelPending discards the outstanding pending action without executing
// it. Reports whether anything was staged; cancelling an empty ledger is
// a no-op, not an error.
func (s *UserSession) CancelPending() bool {
	if s.Pending == nil {
		return false
	}

	s.Pending = nil
	return true
}

// SetFocus records the tweet the user is currently referring to
func (s *UserSession) SetFocus(position int, item Tweet) {
	s.Focus = &FocusItem{Position: position, Item: item}
}

// ClearFocus drops the focus reference after a reply consumed it
func (s *UserSession) ClearFocus() {
	s.Focus = nil
}
