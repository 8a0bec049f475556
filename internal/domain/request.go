package domain

// RequestType represents the type of request sent by the voice platform
type RequestType string

const (
	// RequestTypeLaunch - Skill opened without an intent
	RequestTypeLaunch RequestType = "LaunchRequest"
	// RequestTypeIntent - Spoken intent with optional slots
	RequestTypeIntent RequestType = "IntentRequest"
	// RequestTypeSessionEnded - Platform closed the voice session
	RequestTypeSessionEnded RequestType = "SessionEndedRequest"
)

// SkillRequest represents one parsed, validated voice request (domain entity).
// Identity is the access token of the linked Twitter account; it is empty
// until the user has completed account linking. ExternalUserID is the
// platform-assigned user id of the device making the request.
type SkillRequest struct {
	Type           RequestType
	Intent         string
	Slots          map[string]string
	Identity       string
	ExternalUserID string
}

// Selector returns the routing key for this request: the intent name when
// the request carries one, otherwise the request type tag.
func (r SkillRequest) Selector() string {
	if r.Intent != "" {
		return r.Intent
	}
	return string(r.Type)
}

// Slot returns the value of a named slot, or an empty string when the slot
// is absent or was not filled by the platform.
func (r SkillRequest) Slot(name string) string {
	if r.Slots == nil {
		return ""
	}
	return r.Slots[name]
}
