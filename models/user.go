package models

// User statuses shown in the conversation header.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusAway    = "away"
)

type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	Status      string `json:"status"`
}

// CreateUserParams carries the caller-supplied fields for a new user. The
// store assigns the id. Username uniqueness is the caller's problem; check
// with GetUserByUsername first if it matters.
type CreateUserParams struct {
	Username    string `json:"username" binding:"required,min=2" conform:"trim"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"displayName" binding:"required" conform:"trim"`
	AvatarURL   string `json:"avatarUrl"`
	Status      string `json:"status"`
}
