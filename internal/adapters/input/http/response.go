package http

import "github.com/anjishnu/ask-alexa-twitter/internal/domain"

type (
	// SkillResponseBody struct - HTTP response DTO matching the voice
	// platform's response schema
	SkillResponseBody struct {
		Version  string        `json:"version"`
		Response SkillResponse `json:"response"`
	}

	// SkillResponse struct
	SkillResponse struct {
		OutputSpeech OutputSpeech `json:"outputSpeech"`
		// Card must be omitted entirely when the envelope has none;
		// the platform rejects a null card.
		Card             *SkillCard `json:"card,omitempty"`
		ShouldEndSession bool       `json:"shouldEndSession"`
	}

	// OutputSpeech struct
	OutputSpeech struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}

	// SkillCard struct
	SkillCard struct {
		Type    string `json:"type"`
		Title   string `json:"title"`
		Content string `json:"content"`
	}
)

// newSkillResponseBody converts a domain envelope to the platform schema
func newSkillResponseBody(envelope domain.Envelope) SkillResponseBody {
	response := SkillResponse{
		OutputSpeech: OutputSpeech{
			Type: "PlainText",
			Text: envelope.SpeechText,
		},
		ShouldEndSession: envelope.ShouldEndSession,
	}

	if envelope.Card != nil {
		response.Card = &SkillCard{
			Type:    "Simple",
			Title:   envelope.Card.Title,
			Content: envelope.Card.Content,
		}
	}

	return SkillResponseBody{
		Version:  "1.0",
		Response: response,
	}
}
