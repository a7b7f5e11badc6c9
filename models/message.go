package models

import "time"

// Message delivery statuses. The store only ever sets "sent" at creation;
// later transitions belong to whatever transport sits above it.
const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

type Message struct {
	ID             int       `json:"id"`
	ConversationID int       `json:"conversationId"`
	SenderID       int       `json:"senderId"`
	Content        string    `json:"content"`
	Timestamp      time.Time `json:"timestamp"`
	Status         string    `json:"status"`
	ReplyToID      *int      `json:"replyToId"`
	HasAttachment  bool      `json:"hasAttachment"`
}

// MessageWithRelations is a message hydrated for display: sender, reactions
// (each with its user), attachment and the bare reply target. Any of the
// relations may legitimately be absent, so they are pointers, not zero
// values. ReplyTo is resolved one level deep only.
type MessageWithRelations struct {
	Message
	Sender     *User              `json:"sender,omitempty"`
	Reactions  []ReactionWithUser `json:"reactions"`
	Attachment *Attachment        `json:"attachment,omitempty"`
	ReplyTo    *Message           `json:"replyTo,omitempty"`
}

// CreateMessageParams is what the store accepts for a new message. Timestamp
// and status are deliberately absent: the store stamps both.
type CreateMessageParams struct {
	ConversationID int
	SenderID       int
	Content        string
	ReplyToID      *int
	HasAttachment  bool
}

// CreateMessageRequest is the POST /api/messages body.
type CreateMessageRequest struct {
	ConversationID int                `json:"conversationId" binding:"required"`
	SenderID       int                `json:"senderId" binding:"required"`
	Content        string             `json:"content" binding:"required" conform:"trim"`
	ReplyToID      *int               `json:"replyToId"`
	HasAttachment  bool               `json:"hasAttachment"`
	Attachment     *AttachmentPayload `json:"attachment"`
}
