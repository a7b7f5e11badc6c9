package services

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	errs "github.com/osahenru/converse/errors"
	"github.com/osahenru/converse/models"
	"github.com/osahenru/converse/store"
	"github.com/osahenru/converse/views"
)

// ChatService sits between the handlers and the store: it composes the
// multi-entity writes (message plus attachment, reaction plus list re-read)
// and runs read results through the view assembler where the endpoint asks
// for grouped output.
type ChatService interface {
	CurrentConversation() (*models.ConversationWithUsers, error)
	ListMessages(conversationID int) ([]models.MessageWithRelations, error)
	ListMessageGroups(conversationID int) ([]views.MessageGroup, error)
	PostMessage(req models.CreateMessageRequest) (*models.MessageWithRelations, error)
	RemoveMessage(id int) error
	AddReaction(messageID int, req models.CreateReactionRequest) ([]models.ReactionWithUser, error)
	RemoveReaction(id int) error
}

type chatService struct {
	storage store.Storage
}

// NewChatService creates a new instance of ChatService over the given store.
func NewChatService(storage store.Storage) ChatService {
	return &chatService{storage: storage}
}

func (cs *chatService) CurrentConversation() (*models.ConversationWithUsers, error) {
	conversation, err := cs.storage.GetConversationWithUsers(store.DemoConversationID)
	if err != nil {
		return nil, errs.New(err.Error(), http.StatusInternalServerError)
	}
	if conversation == nil {
		return nil, errs.New("conversation not found", http.StatusNotFound)
	}
	return conversation, nil
}

func (cs *chatService) ListMessages(conversationID int) ([]models.MessageWithRelations, error) {
	return cs.storage.GetMessagesByConversation(conversationID), nil
}

func (cs *chatService) ListMessageGroups(conversationID int) ([]views.MessageGroup, error) {
	messages := cs.storage.GetMessagesByConversation(conversationID)
	return views.GroupMessagesByDate(messages), nil
}

// PostMessage creates the message, attaches the file metadata when the
// request carries it, and returns the re-hydrated result.
func (cs *chatService) PostMessage(req models.CreateMessageRequest) (*models.MessageWithRelations, error) {
	message := cs.storage.CreateMessage(models.CreateMessageParams{
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		Content:        req.Content,
		ReplyToID:      req.ReplyToID,
		HasAttachment:  req.HasAttachment,
	})

	if req.HasAttachment && req.Attachment != nil {
		url := req.Attachment.URL
		if url == "" {
			url = fmt.Sprintf("/files/%s.%s", uuid.New().String(), req.Attachment.FileType)
		}
		cs.storage.CreateAttachment(models.CreateAttachmentParams{
			MessageID: message.ID,
			FileName:  req.Attachment.FileName,
			FileSize:  req.Attachment.FileSize,
			FileType:  req.Attachment.FileType,
			URL:       url,
		})
	}

	hydrated := cs.storage.GetMessageWithRelations(message.ID)
	if hydrated == nil {
		return nil, errs.New("failed to create message", http.StatusInternalServerError)
	}
	return hydrated, nil
}

func (cs *chatService) RemoveMessage(id int) error {
	if cs.storage.GetMessage(id) == nil {
		return errs.New("message not found", http.StatusNotFound)
	}
	if !cs.storage.DeleteMessage(id) {
		return errs.New("failed to delete message", http.StatusInternalServerError)
	}
	return nil
}

func (cs *chatService) AddReaction(messageID int, req models.CreateReactionRequest) ([]models.ReactionWithUser, error) {
	cs.storage.CreateReaction(models.CreateReactionParams{
		MessageID: messageID,
		UserID:    req.UserID,
		Emoji:     req.Emoji,
	})
	return cs.storage.GetReactionsByMessage(messageID), nil
}

func (cs *chatService) RemoveReaction(id int) error {
	if !cs.storage.DeleteReaction(id) {
		return errs.New("failed to delete reaction", http.StatusInternalServerError)
	}
	return nil
}
