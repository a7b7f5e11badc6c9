package models

type Reaction struct {
	ID        int    `json:"id"`
	MessageID int    `json:"messageId"`
	UserID    int    `json:"userId"`
	Emoji     string `json:"emoji"`
}

type ReactionWithUser struct {
	Reaction
	User *User `json:"user,omitempty"`
}

type CreateReactionParams struct {
	MessageID int
	UserID    int
	Emoji     string
}

// CreateReactionRequest is the POST /api/messages/:id/reactions body. The
// message id comes from the path.
type CreateReactionRequest struct {
	UserID int    `json:"userId" binding:"required"`
	Emoji  string `json:"emoji" binding:"required" conform:"trim"`
}
