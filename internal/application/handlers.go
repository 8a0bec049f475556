package application

import (
	"errors"
	"fmt"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Intent names and slot names from the skill's interaction model
const (
	IntentPostTweet  = "PostTweet"
	IntentReadTweets = "ReadTweets"
	IntentReplyTweet = "ReplyTweet"
	IntentTweetInfo  = "TweetInfo"
	IntentHelp       = "AMAZON.HelpIntent"
	IntentYes        = "AMAZON.YesIntent"
	IntentNo         = "AMAZON.NoIntent"
	IntentNext       = "AMAZON.NextIntent"
	IntentPrevious   = "AMAZON.PreviousIntent"
	IntentStop       = "AMAZON.StopIntent"
	IntentCancel     = "AMAZON.CancelIntent"

	SlotTweet = "Tweet"
	SlotIndex = "Index"
	SlotReply = "Reply"
)

// Handlers struct - The intent handlers behind the router. Each handler
// runs with the session already locked by the dialog engine and mutates it
// freely; the engine persists after the handler returns without error.
type Handlers struct {
	twitter  output.TwitterClient
	pageSize int
}

// NewHandlers func - Creates the handler set.
// pageSize controls how many tweets are spoken per read-out chunk.
func NewHandlers(twitter output.TwitterClient, pageSize int) *Handlers {
	return &Handlers{
		twitter:  twitter,
		pageSize: pageSize,
	}
}

// BuildRouter registers every handler and returns the routing table.
// Fails on duplicate selectors so misconfiguration aborts startup.
func (h *Handlers) BuildRouter() (*Router, error) {
	router := NewRouter(h.Default)

	registrations := []struct {
		selector string
		handler  HandlerFunc
	}{
		{string(domain.RequestTypeLaunch), h.Launch},
		{string(domain.RequestTypeSessionEnded), h.SessionEnded},
		{IntentHelp, h.Help},
		{IntentStop, h.SessionEnded},
		{IntentCancel, h.SessionEnded},
		{IntentPostTweet, h.PostTweet},
		{IntentReadTweets, h.ReadTweets},
		{IntentNext, h.NextTweets},
		{IntentPrevious, h.PreviousTweets},
		{IntentYes, h.Confirm},
		{IntentNo, h.Cancel},
		{IntentReplyTweet, h.ReplyTweet},
		{IntentTweetInfo, h.TweetInfo},
	}

	for _, reg := range registrations {
		if err := router.Register(reg.selector, reg.handler); err != nil {
			return nil, err
		}
	}
	return router, nil
}

// Default func - Invoked for any selector without a registered handler
func (h *Handlers) Default(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	return domain.Say("Just ask."), nil
}

// Launch func - Skill opened without an intent
func (h *Handlers) Launch(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	if session.DisplayName != "" {
		return domain.Say(fmt.Sprintf("Welcome back, %s.", session.DisplayName)), nil
	}
	return domain.Say("Welcome to Twitter."), nil
}

// SessionEnded func - Platform closed the session, or the user asked to stop
func (h *Handlers) SessionEnded(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	return domain.SayAndEnd("Goodbye!"), nil
}

// Help func
func (h *Handlers) Help(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	return domain.Say("You can post a tweet by saying, post hello world. " +
		"Say, read my tweets, to hear your timeline, then say next or previous to move through it. " +
		"Say, reply to tweet three, to reply to something you heard."), nil
}

// PostTweet func - Stages a post for confirmation. Posting is a side
// effect, so it never happens on the turn that asked for it; the user
// must confirm with yes on a following turn.
func (h *Handlers) PostTweet(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	message := request.Slot(SlotTweet)
	if message == "" {
		return domain.Say("I'm sorry, I couldn't understand what you wanted to tweet. " +
			"Please prepend the message with either post or tweet."), nil
	}

	session.StagePending(domain.PendingAction{
		Kind:        domain.PendingActionPost,
		Description: fmt.Sprintf("post the tweet: %s", message),
		Payload:     message,
	})
	return domain.Say(fmt.Sprintf("You want to tweet, %s. Should I post it?", message)), nil
}

// ReadTweets func - Fetches the home timeline and replaces the session's
// queue with a fresh one. A staged pending action is left untouched.
func (h *Handlers) ReadTweets(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	tweets, err := h.twitter.HomeTimeline(session.Credentials)
	if errors.Is(err, domain.ErrCredentialsNotFound) {
		return domain.Say("I couldn't find your credentials. Have you logged in?"), nil
	}
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("fetch home timeline: %w", err)
	}

	if len(tweets) == 0 {
		session.Queue = nil
		return domain.Say("Your timeline is empty."), nil
	}

	session.Queue = domain.NewTweetQueue(tweets, h.pageSize)
	text, exhausted := session.Queue.ReadNext()
	if exhausted {
		return domain.Say(text), nil
	}
	return domain.Say(text + " Say next to hear more."), nil
}

// NextTweets func - Advances the read-out cursor
func (h *Handlers) NextTweets(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	if session.Queue == nil {
		return domain.Say("You don't have a tweet queue. Say, read my tweets, to start one."), nil
	}

	text, exhausted := session.Queue.ReadNext()
	if text == "" {
		return domain.Say("There is nothing in your queue."), nil
	}
	if exhausted {
		return domain.Say(text + " That's the end of your queue."), nil
	}
	return domain.Say(text + " Say next to hear more."), nil
}

// PreviousTweets func - Steps the read-out cursor back one chunk
func (h *Handlers) PreviousTweets(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	if session.Queue == nil {
		return domain.Say("You don't have a tweet queue. Say, read my tweets, to start one."), nil
	}

	text, ok := session.Queue.ReadPrev()
	if !ok {
		return domain.Say("There is nothing to repeat."), nil
	}
	return domain.Say(text), nil
}

// Confirm func - Executes the staged pending action exactly once.
// Confirming with nothing staged is a neutral acknowledgement.
func (h *Handlers) Confirm(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	action, ok := session.TakePending()
	if !ok {
		return domain.Say("Okay."), nil
	}

	message, err := h.executePending(session, action)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("execute pending action (%s): %w", action.Kind, err)
	}
	return domain.Say(message), nil
}

// Cancel func - Discards the staged pending action without executing it
func (h *Handlers) Cancel(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	if session.CancelPending() {
		return domain.Say("Okay, I won't do that."), nil
	}
	return domain.Say("Okay."), nil
}

// ReplyTweet func - Resolves which tweet the user means and stages a reply.
// An explicit ordinal ("reply to tweet three") resolves against the full
// fetched list and updates the focus; without one, the current focus item
// is used. No resolvable focus yields a clarification prompt, not an error.
func (h *Handlers) ReplyTweet(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	if position, ok := domain.ParseOrdinal(request.Slot(SlotIndex)); ok && session.Queue != nil {
		item, err := session.Queue.Underlying(position)
		if err != nil {
			return domain.Say(fmt.Sprintf("I only have %d tweets in your queue. Which one do you mean?",
				session.Queue.Len())), nil
		}
		session.SetFocus(position, item)
	}

	if session.Focus == nil {
		return domain.Say("Which tweet do you want to reply to? Say the tweet number."), nil
	}

	message := request.Slot(SlotReply)
	if message == "" {
		return domain.Say(fmt.Sprintf("What would you like to reply to %s?", session.Focus.Item.Author)), nil
	}

	session.StagePending(domain.PendingAction{
		Kind:        domain.PendingActionReply,
		Description: fmt.Sprintf("reply to %s: %s", session.Focus.Item.Author, message),
		Payload:     message,
		TargetID:    session.Focus.Item.ID,
	})
	return domain.Say(fmt.Sprintf("You want to reply to %s with, %s. Should I post it?",
		session.Focus.Item.Author, message)), nil
}

// TweetInfo func - Speaks the full text of the tweet the user is looking at
func (h *Handlers) TweetInfo(session *domain.UserSession, request domain.SkillRequest) (domain.Envelope, error) {
	if position, ok := domain.ParseOrdinal(request.Slot(SlotIndex)); ok && session.Queue != nil {
		item, err := session.Queue.Underlying(position)
		if err != nil {
			return domain.Say(fmt.Sprintf("I only have %d tweets in your queue. Which one do you mean?",
				session.Queue.Len())), nil
		}
		session.SetFocus(position, item)
	}

	if session.Focus == nil {
		return domain.Say("Which tweet do you mean? Say the tweet number."), nil
	}

	focus := session.Focus
	return domain.Say(fmt.Sprintf("Tweet number %d is by %s. %s",
		focus.Position, focus.Item.Author, domain.StripLinks(focus.Item.Text))), nil
}

// executePending dispatches a confirmed action to the Twitter collaborator.
// The ledger entry was already removed by TakePending, so the action runs
// at most once even if the collaborator fails.
func (h *Handlers) executePending(session *domain.UserSession, action domain.PendingAction) (string, error) {
	switch action.Kind {
	case domain.PendingActionPost:
		return h.twitter.PostTweet(session.Credentials, action.Payload)

	case domain.PendingActionReply:
		message, err := h.twitter.PostReply(session.Credentials, action.Payload, action.TargetID)
		if err != nil {
			return "", err
		}
		// The reply consumed the focus item
		session.ClearFocus()
		return message, nil

	default:
		logrus.Warnf("Dropping pending action with unknown kind: %s", action.Kind)
		return "Okay.", nil
	}
}
