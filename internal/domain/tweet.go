package domain

import (
	"fmt"
	"strings"
)

// Tweet represents one timeline item fetched from the content collaborator.
// Items keep the order produced by the upstream fetch.
type Tweet struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Text   string `json:"text"`
}

// SpokenText renders the tweet for sequential read-out. The position is the
// 1-based place of the tweet in the full timeline, not in the current page.
func (t Tweet) SpokenText(position int) string {
	return fmt.Sprintf("tweet number %d by %s. %s.", position, t.Author, StripLinks(t.Text))
}

// StripLinks removes URL tokens from tweet text, which are useless when
// spoken aloud
func StripLinks(text string) string {
	out := make([]string, 0, 8)
	for _, token := range strings.Fields(text) {
		if strings.HasPrefix(token, "http:") || strings.HasPrefix(token, "https:") {
			continue
		}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}
