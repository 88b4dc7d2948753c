package models

import "slices"

// ChatMessage is one turn of an assistant conversation. Timestamp is epoch milliseconds.
type ChatMessage struct {
	Role      ChatRole `json:"role"`
	Text      string   `json:"text"`
	Timestamp int64    `json:"timestamp"`
}

// AIChat is a saved assistant conversation owned by a team
type AIChat struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Messages   []ChatMessage `json:"messages"`
	LastUpdate int64         `json:"lastUpdate"`
}

// Clone returns a deep copy of the chat
func (c AIChat) Clone() AIChat {
	c.Messages = slices.Clone(c.Messages)
	return c
}

// ChatTitle derives a chat title from the first user message
func ChatTitle(firstMessage string) string {
	runes := []rune(firstMessage)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	return string(runes) + "..."
}
