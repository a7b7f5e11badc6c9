package store

import "github.com/osahenru/converse/models"

// Storage is the single authority over entity identity, referential lookups
// and cascade rules. Lookups return nil for absent records instead of
// errors; partial hydration (a message whose sender record is gone) is
// tolerated everywhere except GetParticipants, where a missing user means
// the store itself is corrupt.
type Storage interface {
	// User operations
	GetUser(id int) *models.User
	GetUserByUsername(username string) *models.User
	CreateUser(params models.CreateUserParams) *models.User

	// Message operations
	GetMessage(id int) *models.Message
	GetMessageWithRelations(id int) *models.MessageWithRelations
	GetMessagesByConversation(conversationID int) []models.MessageWithRelations
	CreateMessage(params models.CreateMessageParams) *models.Message
	DeleteMessage(id int) bool

	// Attachment operations
	GetAttachment(id int) *models.Attachment
	GetAttachmentByMessage(messageID int) *models.Attachment
	CreateAttachment(params models.CreateAttachmentParams) *models.Attachment

	// Reaction operations
	GetReactionsByMessage(messageID int) []models.ReactionWithUser
	CreateReaction(params models.CreateReactionParams) *models.Reaction
	DeleteReaction(id int) bool

	// Conversation operations
	GetConversation(id int) *models.Conversation
	GetConversationWithUsers(id int) (*models.ConversationWithUsers, error)
	CreateConversation(name string) *models.Conversation

	// Participant operations
	AddParticipant(conversationID, userID int) *models.Participant
	GetParticipants(conversationID int) ([]models.ParticipantWithUser, error)
}
