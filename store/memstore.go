package store

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/osahenru/converse/models"
)

// MemStore keeps every entity in a map keyed by its auto-increment id, with
// one monotonic counter per entity kind. Ids start at 1 and are never
// reused. A single lock serializes operations so multi-step ones (cascade
// delete, replace-on-conflict, the conversation timestamp bump) can never
// observe each other half-applied.
type MemStore struct {
	mu sync.RWMutex

	users         map[int]models.User
	messages      map[int]models.Message
	attachments   map[int]models.Attachment
	reactions     map[int]models.Reaction
	conversations map[int]models.Conversation
	participants  map[int]models.Participant

	userID         int
	messageID      int
	attachmentID   int
	reactionID     int
	conversationID int
	participantID  int
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	return &MemStore{
		users:         make(map[int]models.User),
		messages:      make(map[int]models.Message),
		attachments:   make(map[int]models.Attachment),
		reactions:     make(map[int]models.Reaction),
		conversations: make(map[int]models.Conversation),
		participants:  make(map[int]models.Participant),

		userID:         1,
		messageID:      1,
		attachmentID:   1,
		reactionID:     1,
		conversationID: 1,
		participantID:  1,
	}
}

// User operations

func (s *MemStore) GetUser(id int) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getUser(id)
}

func (s *MemStore) GetUserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u
		}
	}
	return nil
}

func (s *MemStore) CreateUser(params models.CreateUserParams) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := params.Status
	if status == "" {
		status = models.StatusOffline
	}

	user := models.User{
		ID:          s.userID,
		Username:    params.Username,
		Password:    params.Password,
		DisplayName: params.DisplayName,
		AvatarURL:   params.AvatarURL,
		Status:      status,
	}
	s.userID++
	s.users[user.ID] = user
	return &user
}

// Message operations

func (s *MemStore) GetMessage(id int) *models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMessage(id)
}

func (s *MemStore) GetMessageWithRelations(id int) *models.MessageWithRelations {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMessageWithRelations(id)
}

func (s *MemStore) GetMessagesByConversation(conversationID int) []models.MessageWithRelations {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMessagesByConversation(conversationID)
}

// CreateMessage stamps the timestamp and the "sent" status itself; callers
// cannot supply either. The parent conversation's LastMessageAt is bumped in
// the same critical section. A missing parent conversation is not an error;
// the bump is just skipped.
func (s *MemStore) CreateMessage(params models.CreateMessageParams) *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := models.Message{
		ID:             s.messageID,
		ConversationID: params.ConversationID,
		SenderID:       params.SenderID,
		Content:        params.Content,
		Timestamp:      time.Now(),
		Status:         models.MessageStatusSent,
		ReplyToID:      params.ReplyToID,
		HasAttachment:  params.HasAttachment,
	}
	s.messageID++
	s.messages[message.ID] = message

	if conversation, ok := s.conversations[message.ConversationID]; ok {
		conversation.LastMessageAt = message.Timestamp
		s.conversations[conversation.ID] = conversation
	}

	return &message
}

// DeleteMessage removes the message's reactions and attachments first, then
// the message itself. Messages replying to the deleted one are left alone:
// their ReplyToID dangles and hydrates to nothing from then on.
func (s *MemStore) DeleteMessage(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.messages[id]; !ok {
		return false
	}

	for reactionID, reaction := range s.reactions {
		if reaction.MessageID == id {
			delete(s.reactions, reactionID)
		}
	}
	for attachmentID, attachment := range s.attachments {
		if attachment.MessageID == id {
			delete(s.attachments, attachmentID)
		}
	}
	delete(s.messages, id)
	return true
}

// Attachment operations

func (s *MemStore) GetAttachment(id int) *models.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.attachments[id]
	if !ok {
		return nil
	}
	return &a
}

func (s *MemStore) GetAttachmentByMessage(messageID int) *models.Attachment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getAttachmentByMessage(messageID)
}

// CreateAttachment trusts its input: neither the referenced message's
// existence nor one-attachment-per-message is checked here.
func (s *MemStore) CreateAttachment(params models.CreateAttachmentParams) *models.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	attachment := models.Attachment{
		ID:        s.attachmentID,
		MessageID: params.MessageID,
		FileName:  params.FileName,
		FileSize:  params.FileSize,
		FileType:  params.FileType,
		URL:       params.URL,
	}
	s.attachmentID++
	s.attachments[attachment.ID] = attachment
	return &attachment
}

// Reaction operations

func (s *MemStore) GetReactionsByMessage(messageID int) []models.ReactionWithUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getReactionsByMessage(messageID)
}

// CreateReaction enforces at most one reaction per (message, user): an
// existing reaction from the same user on the same message is deleted before
// the new one is stored under a fresh id.
func (s *MemStore) CreateReaction(params models.CreateReactionParams) *models.Reaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	for reactionID, existing := range s.reactions {
		if existing.MessageID == params.MessageID && existing.UserID == params.UserID {
			delete(s.reactions, reactionID)
		}
	}

	reaction := models.Reaction{
		ID:        s.reactionID,
		MessageID: params.MessageID,
		UserID:    params.UserID,
		Emoji:     params.Emoji,
	}
	s.reactionID++
	s.reactions[reaction.ID] = reaction
	return &reaction
}

func (s *MemStore) DeleteReaction(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reactions[id]; !ok {
		return false
	}
	delete(s.reactions, id)
	return true
}

// Conversation operations

func (s *MemStore) GetConversation(id int) *models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[id]
	if !ok {
		return nil
	}
	return &c
}

func (s *MemStore) GetConversationWithUsers(id int) (*models.ConversationWithUsers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return nil, nil
	}

	participants, err := s.getParticipants(id)
	if err != nil {
		return nil, err
	}

	return &models.ConversationWithUsers{
		Conversation: conversation,
		Participants: participants,
		Messages:     s.getMessagesByConversation(id),
	}, nil
}

func (s *MemStore) CreateConversation(name string) *models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation := models.Conversation{
		ID:            s.conversationID,
		Name:          name,
		LastMessageAt: time.Now(),
	}
	s.conversationID++
	s.conversations[conversation.ID] = conversation
	return &conversation
}

// Participant operations

func (s *MemStore) AddParticipant(conversationID, userID int) *models.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()

	participant := models.Participant{
		ID:             s.participantID,
		ConversationID: conversationID,
		UserID:         userID,
	}
	s.participantID++
	s.participants[participant.ID] = participant
	return &participant
}

func (s *MemStore) GetParticipants(conversationID int) ([]models.ParticipantWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getParticipants(conversationID)
}

// Internal helpers. Callers must hold the lock.

func (s *MemStore) getUser(id int) *models.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &u
}

func (s *MemStore) getMessage(id int) *models.Message {
	m, ok := s.messages[id]
	if !ok {
		return nil
	}
	return &m
}

func (s *MemStore) getAttachmentByMessage(messageID int) *models.Attachment {
	for _, a := range s.attachments {
		if a.MessageID == messageID {
			a := a
			return &a
		}
	}
	return nil
}

func (s *MemStore) getReactionsByMessage(messageID int) []models.ReactionWithUser {
	ids := make([]int, 0)
	for _, r := range s.reactions {
		if r.MessageID == messageID {
			ids = append(ids, r.ID)
		}
	}
	sort.Ints(ids)

	out := make([]models.ReactionWithUser, 0, len(ids))
	for _, id := range ids {
		reaction := s.reactions[id]
		out = append(out, models.ReactionWithUser{
			Reaction: reaction,
			User:     s.getUser(reaction.UserID),
		})
	}
	return out
}

func (s *MemStore) getMessagesByConversation(conversationID int) []models.MessageWithRelations {
	ids := make([]int, 0)
	for _, m := range s.messages {
		if m.ConversationID == conversationID {
			ids = append(ids, m.ID)
		}
	}
	// ties broken by id so map iteration order never leaks into responses
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.messages[ids[i]], s.messages[ids[j]]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.ID < b.ID
	})

	out := make([]models.MessageWithRelations, 0, len(ids))
	for _, id := range ids {
		if mwr := s.getMessageWithRelations(id); mwr != nil {
			out = append(out, *mwr)
		}
	}
	return out
}

func (s *MemStore) getMessageWithRelations(id int) *models.MessageWithRelations {
	message, ok := s.messages[id]
	if !ok {
		return nil
	}

	mwr := models.MessageWithRelations{
		Message:    message,
		Sender:     s.getUser(message.SenderID),
		Reactions:  s.getReactionsByMessage(id),
		Attachment: s.getAttachmentByMessage(id),
	}
	if message.ReplyToID != nil {
		mwr.ReplyTo = s.getMessage(*message.ReplyToID)
	}
	return &mwr
}

func (s *MemStore) getParticipants(conversationID int) ([]models.ParticipantWithUser, error) {
	ids := make([]int, 0)
	for _, p := range s.participants {
		if p.ConversationID == conversationID {
			ids = append(ids, p.ID)
		}
	}
	sort.Ints(ids)

	out := make([]models.ParticipantWithUser, 0, len(ids))
	for _, id := range ids {
		participant := s.participants[id]
		user := s.getUser(participant.UserID)
		if user == nil {
			return nil, errors.Errorf("participant %d references missing user %d", participant.ID, participant.UserID)
		}
		out = append(out, models.ParticipantWithUser{
			Participant: participant,
			User:        *user,
		})
	}
	return out, nil
}
