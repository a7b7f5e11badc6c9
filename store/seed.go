package store

import (
	"time"

	"github.com/osahenru/converse/logger"
	"github.com/osahenru/converse/models"
)

// DemoConversationID is the conversation the demo client renders. SeedDemoData
// creates it first, so on a fresh store it always gets id 1.
const DemoConversationID = 1

// SeedDemoData loads the fixture the demo client renders: two users, one
// conversation, three messages from yesterday (one carrying an attachment),
// and one from today replying to the first, with a single reaction. Entities
// are written directly so the fixture keeps its historical timestamps and
// read statuses, which CreateMessage would overwrite.
func (s *MemStore) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	user1 := models.User{
		ID:          s.userID,
		Username:    "sarah",
		Password:    "password",
		DisplayName: "Sarah Johnson",
		Status:      models.StatusOnline,
		AvatarURL:   "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=64&h=64&q=80",
	}
	s.userID++
	user2 := models.User{
		ID:          s.userID,
		Username:    "currentuser",
		Password:    "password",
		DisplayName: "You",
		Status:      models.StatusOnline,
	}
	s.userID++
	s.users[user1.ID] = user1
	s.users[user2.ID] = user2

	yesterday := time.Now().AddDate(0, 0, -1)
	today := time.Now()
	at := func(day time.Time, hour, min int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
	}

	conversation := models.Conversation{
		ID:            s.conversationID,
		LastMessageAt: at(today, 12, 25),
	}
	s.conversationID++
	s.conversations[conversation.ID] = conversation

	for _, userID := range []int{user1.ID, user2.ID} {
		participant := models.Participant{
			ID:             s.participantID,
			ConversationID: conversation.ID,
			UserID:         userID,
		}
		s.participantID++
		s.participants[participant.ID] = participant
	}

	message1 := models.Message{
		ID:             s.messageID,
		ConversationID: conversation.ID,
		SenderID:       user1.ID,
		Content:        "Hi! How's your day going? Just checking in to see if you've had a chance to look at the project proposal I sent yesterday.",
		Timestamp:      at(yesterday, 10, 32),
		Status:         models.MessageStatusRead,
	}
	s.messageID++
	message2 := models.Message{
		ID:             s.messageID,
		ConversationID: conversation.ID,
		SenderID:       user1.ID,
		Content:        "Here's the full document with all the details.",
		Timestamp:      at(yesterday, 10, 33),
		Status:         models.MessageStatusRead,
		HasAttachment:  true,
	}
	s.messageID++
	message3 := models.Message{
		ID:             s.messageID,
		ConversationID: conversation.ID,
		SenderID:       user2.ID,
		Content:        "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco labori",
		Timestamp:      at(yesterday, 11, 25),
		Status:         models.MessageStatusRead,
	}
	s.messageID++
	message4 := models.Message{
		ID:             s.messageID,
		ConversationID: conversation.ID,
		SenderID:       user2.ID,
		Content:        "Do androids truly dream of electric sheep?",
		Timestamp:      at(today, 12, 25),
		Status:         models.MessageStatusSent,
		ReplyToID:      &message1.ID,
	}
	s.messageID++
	for _, m := range []models.Message{message1, message2, message3, message4} {
		s.messages[m.ID] = m
	}

	attachment := models.Attachment{
		ID:        s.attachmentID,
		MessageID: message2.ID,
		FileName:  "Design_project_2025.docx",
		FileSize:  "2.5gb",
		FileType:  "docx",
		URL:       "/files/design_project.docx",
	}
	s.attachmentID++
	s.attachments[attachment.ID] = attachment

	reaction := models.Reaction{
		ID:        s.reactionID,
		MessageID: message3.ID,
		UserID:    user1.ID,
		Emoji:     "👍",
	}
	s.reactionID++
	s.reactions[reaction.ID] = reaction

	logger.L().Infow("seeded demo conversation",
		"conversation", conversation.ID,
		"users", s.userID-1,
		"messages", s.messageID-1,
	)
}
