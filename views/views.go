// Package views turns hydrated message lists into display-ready groups. All
// functions are pure: they never touch the store and never mutate their
// input.
package views

import (
	"sort"
	"time"

	"github.com/osahenru/converse/models"
)

// senderHeaderGap is how far apart two messages from the same sender must be
// before the second one shows the avatar and name again.
const senderHeaderGap = 5 * time.Minute

// MessageGroup is one date bucket of messages, rendered under a single date
// separator.
type MessageGroup struct {
	Date          time.Time                     `json:"date"`
	FormattedDate string                        `json:"formattedDate"`
	Messages      []models.MessageWithRelations `json:"messages"`
}

// GroupMessagesByDate partitions messages into calendar-day buckets. Buckets
// come out sorted ascending by date and messages are re-sorted ascending
// within each bucket, so the result is the same for any permutation of the
// input.
func GroupMessagesByDate(messages []models.MessageWithRelations) []MessageGroup {
	buckets := make(map[time.Time][]models.MessageWithRelations)
	for _, message := range messages {
		day := startOfDay(message.Timestamp)
		buckets[day] = append(buckets[day], message)
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	groups := make([]MessageGroup, 0, len(days))
	for _, day := range days {
		bucket := buckets[day]
		sort.Slice(bucket, func(i, j int) bool {
			if !bucket[i].Timestamp.Equal(bucket[j].Timestamp) {
				return bucket[i].Timestamp.Before(bucket[j].Timestamp)
			}
			return bucket[i].ID < bucket[j].ID
		})
		groups = append(groups, MessageGroup{
			Date:          day,
			FormattedDate: FormatMessageDate(day),
			Messages:      bucket,
		})
	}
	return groups
}

// ShouldShowSenderHeader reports whether a message opens a new visual run:
// it is the first message, the sender changed, or more than five minutes
// passed since the previous message.
func ShouldShowSenderHeader(message models.MessageWithRelations, previous *models.MessageWithRelations) bool {
	if previous == nil {
		return true
	}
	if previous.SenderID != message.SenderID {
		return true
	}
	return message.Timestamp.Sub(previous.Timestamp) > senderHeaderGap
}

// CountReactionsByEmoji tallies reactions per emoji. A nil or empty list
// yields an empty map.
func CountReactionsByEmoji(reactions []models.ReactionWithUser) map[string]int {
	counts := make(map[string]int)
	for _, reaction := range reactions {
		counts[reaction.Emoji]++
	}
	return counts
}

// FormatMessageDate labels a date for a group separator: "Today",
// "Yesterday", or the long calendar form.
func FormatMessageDate(t time.Time) string {
	day := startOfDay(t)
	today := startOfDay(time.Now())
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("January 2, 2006")
	}
}

// FormatMessageTime renders a timestamp the way the message row shows it.
func FormatMessageTime(t time.Time) string {
	return t.Format("3:04 PM")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
