package notification

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultTargetTitle = "Unknown target"
	timeLayout         = "02.01.2006 at 15:04 MST"
)

// RenderStatusChange builds the text sent when an application changes status.
// Hired and rejected get their own copy; every other status uses the generic line.
func RenderStatusChange(title string, status ApplicationStatus, comment *string) string {
	if title == "" {
		title = DefaultTargetTitle
	}

	var b strings.Builder
	switch status {
	case StatusHired:
		fmt.Fprintf(&b, "✅ Your application for the '%s' programme has been approved!\n\n", title)
		b.WriteString("We are glad to let you know that you passed the selection and we invite you to join.\n")
		b.WriteString("An HR specialist will contact you shortly to discuss the next steps.")
	case StatusRejected:
		fmt.Fprintf(&b, "❌ Unfortunately, your application for the '%s' programme has been declined.\n\n", title)
		b.WriteString("We appreciate your interest in our company and wish you luck in finding the right opportunity.")
	default:
		fmt.Fprintf(&b, "ℹ️ The status of your application for the '%s' programme has changed to: %s", title, status.Label())
	}

	if comment != nil && strings.TrimSpace(*comment) != "" {
		// back-office tools store line breaks as literal "\n"
		text := strings.ReplaceAll(*comment, `\n`, "\n")
		fmt.Fprintf(&b, "\n\nHR comment:\n%s", text)
	}

	return b.String()
}

func RenderActivityTimeChange(title string, activityID int64, start, end time.Time, loc *time.Location) string {
	return fmt.Sprintf(
		"🔔 Important activity update!\n\n"+
			"The time of the activity '%s' (ID: %d) has changed.\n\n"+
			"New time:\n"+
			"▶️ Start: %s\n"+
			"⏹️ End: %s\n\n"+
			"Please check the current schedule.",
		title, activityID, FormatTime(start, loc), FormatTime(end, loc),
	)
}

func RenderReminder(title string, activityID int64, startText string) string {
	return fmt.Sprintf(
		"👋 Reminder!\n\n"+
			"The activity '%s' (ID: %d) you signed up for starts in about 24 hours - %s.\n\n"+
			"Don't miss it!",
		title, activityID, startText,
	)
}

func FormatTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(timeLayout)
}
