package models

// Participant is the join row between a conversation and a user.
type Participant struct {
	ID             int `json:"id"`
	ConversationID int `json:"conversationId"`
	UserID         int `json:"userId"`
}

type ParticipantWithUser struct {
	Participant
	User User `json:"user"`
}
