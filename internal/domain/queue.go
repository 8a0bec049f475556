package domain

import "strings"

// TweetQueue is a cursor-addressable, chunked view over a fetched timeline,
// used for sequential spoken delivery ("read my tweets", "next", "previous").
// The cursor moves at chunk granularity and only via ReadNext/ReadPrev.
// A queue is always created fresh from a full fetch, never partially updated.
type TweetQueue struct {
	Items    []Tweet  `json:"items"`
	Chunks   []string `json:"chunks"`
	Cursor   int      `json:"cursor"`
	PageSize int      `json:"pageSize"`
}

// NewTweetQueue partitions items into fixed-size chunks of pre-rendered
// speech. The last chunk may be shorter. The cursor starts at the beginning.
func NewTweetQueue(items []Tweet, pageSize int) *TweetQueue {
	if pageSize < 1 {
		pageSize = 1
	}

	chunks := make([]string, 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}

		rendered := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rendered = append(rendered, items[i].SpokenText(i+1))
		}
		chunks = append(chunks, strings.Join(rendered, " "))
	}

	return &TweetQueue{
		Items:    items,
		Chunks:   chunks,
		Cursor:   0,
		PageSize: pageSize,
	}
}

// ReadNext returns the next chunk of speech and advances the cursor.
// Once the queue is exhausted it reports exhausted=true and does not
// advance further; the returned text is then empty.
func (q *TweetQueue) ReadNext() (string, bool) {
	if q.Cursor >= len(q.Chunks) {
		return "", true
	}

	text := q.Chunks[q.Cursor]
	q.Cursor++
	return text, q.Cursor >= len(q.Chunks)
}

// ReadPrev moves the cursor back one chunk and returns it again.
// Returns ok=false when the cursor is already at the start and there is
// nothing to repeat.
func (q *TweetQueue) ReadPrev() (string, bool) {
	if q.Cursor <= 0 {
		return "", false
	}

	q.Cursor--
	return q.Chunks[q.Cursor], true
}

// Underlying returns the item at a 1-based position in the full fetched
// list, independent of the chunked delivery window. Ordinal references in
// spoken requests ("reply to tweet three") resolve through here; the
// 1-based to 0-based conversion happens only at this boundary.
func (q *TweetQueue) Underlying(position int) (Tweet, error) {
	if position < 1 || position > len(q.Items) {
		return Tweet{}, ErrNoSuchItem
	}
	return q.Items[position-1], nil
}

// Len returns the number of items in the full fetched list
func (q *TweetQueue) Len() int {
	return len(q.Items)
}
