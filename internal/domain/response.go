package domain

// Card represents the visual companion card shown in the platform app
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Envelope represents the outbound response consumed by the transport layer.
// Card is nil when the response is speech-only; the transport adapter must
// omit the card field entirely in that case.
type Envelope struct {
	SpeechText       string `json:"speechText"`
	Card             *Card  `json:"card,omitempty"`
	ShouldEndSession bool   `json:"shouldEndSession"`
}

// NewResponse builds a response envelope with exactly the given fields
func NewResponse(message string, card *Card, endSession bool) Envelope {
	return Envelope{
		SpeechText:       message,
		Card:             card,
		ShouldEndSession: endSession,
	}
}

// Say builds a speech-only response that keeps the voice session open
func Say(message string) Envelope {
	return NewResponse(message, nil, false)
}

// SayAndEnd builds a speech-only response that ends the voice session
func SayAndEnd(message string) Envelope {
	return NewResponse(message, nil, true)
}
