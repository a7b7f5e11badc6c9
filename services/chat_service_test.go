package services

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/osahenru/converse/errors"
	"github.com/osahenru/converse/models"
	"github.com/osahenru/converse/store"
)

func newService(t *testing.T) (ChatService, *store.MemStore) {
	t.Helper()
	memStore := store.NewMemStore()
	return NewChatService(memStore), memStore
}

func TestCurrentConversation(t *testing.T) {
	cs, memStore := newService(t)

	_, err := cs.CurrentConversation()
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.Status(err, 0))

	memStore.SeedDemoData()
	conv, err := cs.CurrentConversation()
	require.NoError(t, err)
	assert.Equal(t, store.DemoConversationID, conv.ID)
}

func TestPostMessageGeneratesAttachmentURL(t *testing.T) {
	cs, memStore := newService(t)
	u := memStore.CreateUser(models.CreateUserParams{Username: "sarah", Password: "pw", DisplayName: "Sarah"})
	conv := memStore.CreateConversation("")

	m, err := cs.PostMessage(models.CreateMessageRequest{
		ConversationID: conv.ID,
		SenderID:       u.ID,
		Content:        "see attached",
		HasAttachment:  true,
		Attachment: &models.AttachmentPayload{
			FileName: "notes.txt",
			FileSize: "12kb",
			FileType: "txt",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, m.Attachment)
	assert.True(t, strings.HasPrefix(m.Attachment.URL, "/files/"))
	assert.True(t, strings.HasSuffix(m.Attachment.URL, ".txt"))
}

func TestPostMessageKeepsSuppliedAttachmentURL(t *testing.T) {
	cs, memStore := newService(t)
	u := memStore.CreateUser(models.CreateUserParams{Username: "sarah", Password: "pw", DisplayName: "Sarah"})
	conv := memStore.CreateConversation("")

	m, err := cs.PostMessage(models.CreateMessageRequest{
		ConversationID: conv.ID,
		SenderID:       u.ID,
		Content:        "see attached",
		HasAttachment:  true,
		Attachment: &models.AttachmentPayload{
			FileName: "notes.txt",
			FileSize: "12kb",
			FileType: "txt",
			URL:      "/files/notes.txt",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, m.Attachment)
	assert.Equal(t, "/files/notes.txt", m.Attachment.URL)
}

func TestPostMessageWithoutAttachmentPayload(t *testing.T) {
	cs, memStore := newService(t)
	u := memStore.CreateUser(models.CreateUserParams{Username: "sarah", Password: "pw", DisplayName: "Sarah"})
	conv := memStore.CreateConversation("")

	// hasAttachment set but no payload: message is created bare
	m, err := cs.PostMessage(models.CreateMessageRequest{
		ConversationID: conv.ID,
		SenderID:       u.ID,
		Content:        "no payload",
		HasAttachment:  true,
	})
	require.NoError(t, err)
	assert.Nil(t, m.Attachment)
}

func TestRemoveMessageStatuses(t *testing.T) {
	cs, memStore := newService(t)
	u := memStore.CreateUser(models.CreateUserParams{Username: "sarah", Password: "pw", DisplayName: "Sarah"})
	conv := memStore.CreateConversation("")
	m := memStore.CreateMessage(models.CreateMessageParams{ConversationID: conv.ID, SenderID: u.ID, Content: "bye"})

	err := cs.RemoveMessage(m.ID + 99)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.Status(err, 0))

	require.NoError(t, cs.RemoveMessage(m.ID))
}

func TestRemoveReactionFailure(t *testing.T) {
	cs, _ := newService(t)
	err := cs.RemoveReaction(42)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, errs.Status(err, 0))
}
