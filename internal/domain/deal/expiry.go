package deal

import (
	"fmt"
	"time"
)

// UrgencyTier classifies time-to-expiry for display emphasis.
type UrgencyTier string

const (
	UrgencyCritical UrgencyTier = "critical" // 3 hours or less
	UrgencyWarning  UrgencyTier = "warning"  // 12 hours or less
	UrgencyNormal   UrgencyTier = "normal"
)

const expiredLabel = "Expired"

// FormatAge renders elapsed time since t as the catalog displays it.
// Only the day unit pluralizes; the shorter units keep their fixed
// abbreviations regardless of count.
func FormatAge(t, now time.Time) string {
	secs := int(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	if secs < 60 {
		return fmt.Sprintf("%d sec ago", secs)
	}
	mins := secs / 60
	if mins < 60 {
		return fmt.Sprintf("%d min ago", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%d hr ago", hours)
	}
	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// FormatRemaining renders time until t in condensed units, or exactly
// "Expired" once t is at or before now.
func FormatRemaining(t, now time.Time) string {
	secs := int(t.Sub(now).Seconds())
	if secs <= 0 {
		return expiredLabel
	}
	if secs < 60 {
		return fmt.Sprintf("%ds left", secs)
	}
	mins := secs / 60
	if mins < 60 {
		return fmt.Sprintf("%dm left", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh left", hours)
	}
	return fmt.Sprintf("%dd left", hours/24)
}

// Urgency maps time-to-expiry onto a display tier. Expired deals report
// critical.
func Urgency(t, now time.Time) UrgencyTier {
	remaining := t.Sub(now)
	switch {
	case remaining <= 3*time.Hour:
		return UrgencyCritical
	case remaining <= 12*time.Hour:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}
