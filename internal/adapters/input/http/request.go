package http

type (
	// SkillRequestBody struct - HTTP request DTO for the voice platform's
	// request envelope. Only the fields the dialog engine consumes are
	// mapped; everything else in the platform payload is ignored.
	SkillRequestBody struct {
		Version string       `json:"version"`
		Session SkillSession `json:"session"`
		Request SkillRequest `json:"request" validate:"required"`
	}

	// SkillSession struct - Platform session block carrying the user
	SkillSession struct {
		SessionID string    `json:"sessionId"`
		User      SkillUser `json:"user"`
	}

	// SkillUser struct - Platform user block. AccessToken is present only
	// after account linking and becomes the dialog engine's identity.
	SkillUser struct {
		UserID      string `json:"userId" validate:"required"`
		AccessToken string `json:"accessToken"`
	}

	// SkillRequest struct - The request block with type, id and intent
	SkillRequest struct {
		Type      string       `json:"type" validate:"required"`
		RequestID string       `json:"requestId"`
		Intent    *SkillIntent `json:"intent"`
	}

	// SkillIntent struct - Intent name plus slot values
	SkillIntent struct {
		Name  string               `json:"name"`
		Slots map[string]SkillSlot `json:"slots"`
	}

	// SkillSlot struct - One filled or empty slot
	SkillSlot struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
)
