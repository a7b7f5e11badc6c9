package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osahenru/converse/models"
)

func message(id, senderID int, ts time.Time) models.MessageWithRelations {
	return models.MessageWithRelations{
		Message: models.Message{
			ID:        id,
			SenderID:  senderID,
			Content:   "m",
			Timestamp: ts,
			Status:    models.MessageStatusSent,
		},
	}
}

func TestGroupMessagesByDate(t *testing.T) {
	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	older := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.Local)

	msgs := []models.MessageWithRelations{
		message(1, 1, older),
		message(2, 1, time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 10, 32, 0, 0, time.Local)),
		message(3, 2, time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 11, 25, 0, 0, time.Local)),
		message(4, 2, today),
	}

	groups := GroupMessagesByDate(msgs)
	require.Len(t, groups, 3)

	assert.Equal(t, "March 14, 2025", groups[0].FormattedDate)
	assert.Equal(t, "Yesterday", groups[1].FormattedDate)
	assert.Equal(t, "Today", groups[2].FormattedDate)

	require.Len(t, groups[1].Messages, 2)
	assert.Equal(t, 2, groups[1].Messages[0].ID)
	assert.Equal(t, 3, groups[1].Messages[1].ID)

	// bucket dates are normalized to midnight
	for _, g := range groups {
		assert.Equal(t, 0, g.Date.Hour())
		assert.Equal(t, 0, g.Date.Minute())
		assert.Equal(t, 0, g.Date.Second())
	}
}

func TestGroupMessagesByDateIgnoresInputOrder(t *testing.T) {
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.Local)
	msgs := []models.MessageWithRelations{
		message(1, 1, base),
		message(2, 1, base.Add(2*time.Hour)),
		message(3, 2, base.AddDate(0, 0, 1)),
		message(4, 2, base.AddDate(0, 0, 1).Add(time.Minute)),
	}
	shuffled := []models.MessageWithRelations{msgs[3], msgs[0], msgs[2], msgs[1]}

	assert.Equal(t, GroupMessagesByDate(msgs), GroupMessagesByDate(shuffled))

	// grouping already-grouped output again changes nothing
	once := GroupMessagesByDate(msgs)
	flat := make([]models.MessageWithRelations, 0, len(msgs))
	for _, g := range once {
		flat = append(flat, g.Messages...)
	}
	assert.Equal(t, once, GroupMessagesByDate(flat))
}

func TestGroupMessagesByDateEmpty(t *testing.T) {
	assert.Empty(t, GroupMessagesByDate(nil))
}

func TestShouldShowSenderHeader(t *testing.T) {
	noon := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)
	a := message(1, 1, noon)

	assert.True(t, ShouldShowSenderHeader(a, nil))

	b := message(2, 1, noon.Add(4*time.Minute+59*time.Second))
	assert.False(t, ShouldShowSenderHeader(b, &a))

	atGap := message(3, 1, noon.Add(5*time.Minute))
	assert.False(t, ShouldShowSenderHeader(atGap, &a))

	pastGap := message(4, 1, noon.Add(5*time.Minute+time.Second))
	assert.True(t, ShouldShowSenderHeader(pastGap, &a))

	otherSender := message(5, 2, noon.Add(time.Second))
	assert.True(t, ShouldShowSenderHeader(otherSender, &a))
}

func TestCountReactionsByEmoji(t *testing.T) {
	assert.Empty(t, CountReactionsByEmoji(nil))

	reactions := []models.ReactionWithUser{
		{Reaction: models.Reaction{ID: 1, MessageID: 1, UserID: 1, Emoji: "👍"}},
		{Reaction: models.Reaction{ID: 2, MessageID: 1, UserID: 2, Emoji: "👍"}},
		{Reaction: models.Reaction{ID: 3, MessageID: 1, UserID: 3, Emoji: "❤️"}},
	}
	counts := CountReactionsByEmoji(reactions)
	assert.Equal(t, map[string]int{"👍": 2, "❤️": 1}, counts)
}

func TestFormatMessageDate(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Today", FormatMessageDate(now))
	assert.Equal(t, "Yesterday", FormatMessageDate(now.AddDate(0, 0, -1)))
	assert.Equal(t, "March 14, 2025", FormatMessageDate(time.Date(2025, time.March, 14, 23, 59, 0, 0, time.Local)))
}

func TestFormatMessageTime(t *testing.T) {
	assert.Equal(t, "12:05 PM", FormatMessageTime(time.Date(2025, time.June, 1, 12, 5, 0, 0, time.Local)))
	assert.Equal(t, "9:07 AM", FormatMessageTime(time.Date(2025, time.June, 1, 9, 7, 0, 0, time.Local)))
}
