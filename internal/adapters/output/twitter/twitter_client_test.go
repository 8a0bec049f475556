package twitter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
)

var testCreds = domain.Credentials{Token: "tok", Secret: "sec"}

// newTestAdapter points the adapter at a stub API server
func newTestAdapter(handler http.Handler) (*TwitterClientAdapter, *httptest.Server) {
	server := httptest.NewServer(handler)
	adapter := NewTwitterClientAdapter("ck", "cs", server.URL)
	return adapter, server
}

// TestHomeTimelineDecodesInOrder tests timeline decoding and that upstream
// order is preserved
func TestHomeTimelineDecodesInOrder(t *testing.T) {
	adapter, server := newTestAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1.1/statuses/home_timeline.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") == "" {
			t.Error("expected a signed request")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id_str": "100", "text": "first tweet", "user": {"name": "Alice", "screen_name": "alice"}},
			{"id_str": "99", "text": "second tweet https://t.co/x", "user": {"name": "Bob", "screen_name": "bob"}}
		]`))
	}))
	defer server.Close()

	tweets, err := adapter.HomeTimeline(testCreds)
	if err != nil {
		t.Fatalf("expected timeline fetch to succeed, got %v", err)
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}
	if tweets[0].ID != "100" || tweets[0].Author != "Alice" {
		t.Errorf("expected upstream order preserved, got %+v", tweets[0])
	}
	if tweets[1].Text != "second tweet https://t.co/x" {
		t.Errorf("expected raw text kept on the item, got %q", tweets[1].Text)
	}
}

// TestUnauthorizedMapsToCredentialsNotFound tests the distinguished
// failure for revoked tokens
func TestUnauthorizedMapsToCredentialsNotFound(t *testing.T) {
	adapter, server := newTestAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := adapter.HomeTimeline(testCreds)
	if !errors.Is(err, domain.ErrCredentialsNotFound) {
		t.Errorf("expected ErrCredentialsNotFound on 401, got %v", err)
	}
}

// TestUnlinkedCredentialsShortCircuit tests that no request is made for an
// unlinked account
func TestUnlinkedCredentialsShortCircuit(t *testing.T) {
	adapter, server := newTestAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no request for unlinked credentials")
	}))
	defer server.Close()

	_, err := adapter.HomeTimeline(domain.Credentials{})
	if !errors.Is(err, domain.ErrCredentialsNotFound) {
		t.Errorf("expected ErrCredentialsNotFound, got %v", err)
	}
}

// TestPostTweetSendsStatus tests the update call and the spoken result
func TestPostTweetSendsStatus(t *testing.T) {
	var form url.Values
	adapter, server := newTestAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/1.1/statuses/update.json" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		r.ParseForm()
		form = r.PostForm
		w.Write([]byte(`{"id_str": "101"}`))
	}))
	defer server.Close()

	message, err := adapter.PostTweet(testCreds, "hello world")
	if err != nil {
		t.Fatalf("expected post to succeed, got %v", err)
	}
	if form.Get("status") != "hello world" {
		t.Errorf("expected status param, got %v", form)
	}
	if message != "Successfully posted your tweet, hello world." {
		t.Errorf("unexpected spoken result %q", message)
	}
}

// TestPostReplyThreadsOntoTarget tests that replies carry the target id
func TestPostReplyThreadsOntoTarget(t *testing.T) {
	var form url.Values
	adapter, server := newTestAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		form = r.PostForm
		w.Write([]byte(`{"id_str": "102"}`))
	}))
	defer server.Close()

	if _, err := adapter.PostReply(testCreds, "nice one", "100"); err != nil {
		t.Fatalf("expected reply to succeed, got %v", err)
	}
	if form.Get("in_reply_to_status_id") != "100" {
		t.Errorf("expected in_reply_to_status_id param, got %v", form)
	}
}

// TestServerErrorSurfaces tests that a 5xx does not masquerade as a
// credentials problem
func TestServerErrorSurfaces(t *testing.T) {
	adapter, server := newTestAdapter(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := adapter.HomeTimeline(testCreds)
	if err == nil {
		t.Fatal("expected an error on 503")
	}
	if errors.Is(err, domain.ErrCredentialsNotFound) {
		t.Error("expected a generic error, not ErrCredentialsNotFound")
	}
}
