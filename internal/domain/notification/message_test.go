//go:build unit

package notification_test

import (
	"strings"
	"testing"
	"time"

	"hirebot/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatusChange(t *testing.T) {
	t.Run("hired uses bespoke copy", func(t *testing.T) {
		msg := notification.RenderStatusChange("Go Internship", notification.StatusHired, nil)
		assert.True(t, strings.HasPrefix(msg, "✅ Your application for the 'Go Internship' programme has been approved!"))
		assert.NotContains(t, msg, "has changed to")
	})

	t.Run("rejected uses bespoke copy", func(t *testing.T) {
		msg := notification.RenderStatusChange("Go Internship", notification.StatusRejected, nil)
		assert.True(t, strings.HasPrefix(msg, "❌ Unfortunately"))
		assert.NotContains(t, msg, "has changed to")
	})

	t.Run("every other status uses the generic template", func(t *testing.T) {
		for _, st := range []notification.ApplicationStatus{
			notification.StatusPending,
			notification.StatusUnderReview,
			notification.StatusInterview,
			notification.StatusOffer,
			notification.StatusWithdrawn,
		} {
			msg := notification.RenderStatusChange("Backend", st, nil)
			assert.Equal(t, "ℹ️ The status of your application for the 'Backend' programme has changed to: "+st.Label(), msg)
		}
	})

	t.Run("distinct copy per status", func(t *testing.T) {
		seen := map[string]notification.ApplicationStatus{}
		for _, s := range []string{"pending", "under_review", "interview", "offer", "hired", "rejected", "withdrawn"} {
			st, err := notification.ParseApplicationStatus(s)
			require.NoError(t, err)
			msg := notification.RenderStatusChange("X", st, nil)
			_, dup := seen[msg]
			assert.False(t, dup, "duplicate copy for %s", s)
			seen[msg] = st
		}
	})

	t.Run("comment is appended with unescaped newlines", func(t *testing.T) {
		comment := `Bring your passport.\nRoom 204.`
		msg := notification.RenderStatusChange("Backend", notification.StatusInterview, &comment)
		assert.True(t, strings.HasSuffix(msg, "\n\nHR comment:\nBring your passport.\nRoom 204."))
	})

	t.Run("blank comment is ignored", func(t *testing.T) {
		comment := "   "
		msg := notification.RenderStatusChange("Backend", notification.StatusOffer, &comment)
		assert.NotContains(t, msg, "HR comment")
	})

	t.Run("empty title falls back", func(t *testing.T) {
		msg := notification.RenderStatusChange("", notification.StatusOffer, nil)
		assert.Contains(t, msg, notification.DefaultTargetTitle)
	})
}

func TestParseApplicationStatus(t *testing.T) {
	_, err := notification.ParseApplicationStatus("archived")
	assert.ErrorIs(t, err, notification.ErrUnknownStatus)
}

func TestRenderActivityTimeChange(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	msg := notification.RenderActivityTimeChange("Career day", 5, start, end, time.UTC)

	assert.Contains(t, msg, "'Career day' (ID: 5)")
	assert.Contains(t, msg, "▶️ Start: 10.03.2026 at 09:00 UTC")
	assert.Contains(t, msg, "⏹️ End: 10.03.2026 at 11:00 UTC")
}

func TestReminderKey(t *testing.T) {
	key := notification.NewReminderKey(7, 3, notification.ReminderKind24h)

	assert.Equal(t, "activity_reminder_user7_activity3_type24h", key.JobID())
	assert.Equal(t, key.JobID(), notification.NewReminderKey(7, 3, notification.ReminderKind24h).JobID())
	assert.NotEqual(t, key.JobID(), notification.NewReminderKey(3, 7, notification.ReminderKind24h).JobID())

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, start.Add(-24*time.Hour), key.FireAt(start))

	kind, err := notification.ParseReminderKind("24h")
	require.NoError(t, err)
	assert.Equal(t, notification.ReminderKind24h, kind)

	_, err = notification.ParseReminderKind("1h")
	assert.ErrorIs(t, err, notification.ErrUnknownReminderKind)
}
