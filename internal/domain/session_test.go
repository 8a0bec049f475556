package domain

import "testing"

// TestStageThenCancelLeavesNothing tests that cancel discards the staged
// action without it ever being handed out for execution
func TestStageThenCancelLeavesNothing(t *testing.T) {
	session := NewUserSession("token-1")

	session.StagePending(PendingAction{Kind: PendingActionPost, Payload: "hello"})
	if session.Pending == nil {
		t.Fatal("expected pending action after staging")
	}

	if !session.CancelPending() {
		t.Error("expected CancelPending to report a discarded action")
	}
	if session.Pending != nil {
		t.Error("expected no pending action after cancel")
	}

	// Nothing left to take, so nothing can execute
	if _, ok := session.TakePending(); ok {
		t.Error("expected TakePending to find nothing after cancel")
	}
}

// TestStageThenTakeRemovesEntry tests that confirm-style take returns the
// action exactly once
func TestStageThenTakeRemovesEntry(t *testing.T) {
	session := NewUserSession("token-1")

	session.StagePending(PendingAction{
		Kind:     PendingActionReply,
		Payload:  "nice one",
		TargetID: "id-42",
	})

	action, ok := session.TakePending()
	if !ok {
		t.Fatal("expected TakePending to return the staged action")
	}
	if action.Kind != PendingActionReply || action.TargetID != "id-42" {
		t.Errorf("expected the staged reply action back, got %+v", action)
	}
	if session.Pending != nil {
		t.Error("expected ledger to be empty after take")
	}

	// A second take finds nothing: the action cannot run twice
	if _, ok := session.TakePending(); ok {
		t.Error("expected second TakePending to find nothing")
	}
}

// TestStagingOverwritesPriorAction tests the last-wins policy
func TestStagingOverwritesPriorAction(t *testing.T) {
	session := NewUserSession("token-1")

	session.StagePending(PendingAction{Kind: PendingActionPost, Payload: "old"})
	session.StagePending(PendingAction{Kind: PendingActionPost, Payload: "new"})

	action, ok := session.TakePending()
	if !ok {
		t.Fatal("expected a pending action")
	}
	if action.Payload != "new" {
		t.Errorf("expected the later staging to win, got payload %q", action.Payload)
	}
	if _, ok := session.TakePending(); ok {
		t.Error("expected only one action outstanding")
	}
}

// TestCancelWithNothingStagedIsNoop tests that cancel on an empty ledger
// is not an error
func TestCancelWithNothingStagedIsNoop(t *testing.T) {
	session := NewUserSession("token-1")

	if session.CancelPending() {
		t.Error("expected CancelPending to report nothing discarded")
	}
}

// TestFocusSetAndClear tests the focus item lifecycle
func TestFocusSetAndClear(t *testing.T) {
	session := NewUserSession("token-1")

	session.SetFocus(3, Tweet{ID: "id-3", Author: "someone"})
	if session.Focus == nil || session.Focus.Position != 3 {
		t.Fatalf("expected focus at position 3, got %+v", session.Focus)
	}

	session.ClearFocus()
	if session.Focus != nil {
		t.Error("expected focus to be cleared")
	}
}

// TestCredentialsLinked tests the linked-state check
func TestCredentialsLinked(t *testing.T) {
	if (Credentials{}).Linked() {
		t.Error("expected empty credentials to be unlinked")
	}
	if (Credentials{Token: "t"}).Linked() {
		t.Error("expected half-filled credentials to be unlinked")
	}
	if !(Credentials{Token: "t", Secret: "s"}).Linked() {
		t.Error("expected full pair to be linked")
	}
}
