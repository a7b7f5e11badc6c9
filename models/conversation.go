package models

import "time"

type Conversation struct {
	ID            int       `json:"id"`
	Name          string    `json:"name,omitempty"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}

// ConversationWithUsers is a conversation hydrated with its joined
// participant list and its full, ordered, hydrated message history.
type ConversationWithUsers struct {
	Conversation
	Participants []ParticipantWithUser  `json:"participants"`
	Messages     []MessageWithRelations `json:"messages"`
}
