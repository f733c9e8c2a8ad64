package promotion

import "time"

// expiringSoonWindow is how close (in days, inclusive) an end date must be
// for a running promotion to show the expiring-soon badge.
const expiringSoonWindow = 3

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify derives the temporal badge of a promotion from the wall clock.
// The result is display state only: it never affects workflow status or
// permissions, and it is recomputed on every read rather than cached.
func (p *Promotion) Classify(now time.Time) TemporalStatus {
	today := dateOf(now)
	start := dateOf(p.startDate)
	end := dateOf(p.endDate)

	switch {
	case end.Before(today):
		return TemporalEnded
	case start.After(today):
		return TemporalUpcoming
	case end.Sub(today) <= expiringSoonWindow*24*time.Hour:
		return TemporalExpiringSoon
	default:
		return TemporalActive
	}
}

// IsRunning reports whether the promotion should appear in the active
// promotions view: approved and not yet past its end date.
func (p *Promotion) IsRunning(now time.Time) bool {
	return p.status == StatusApproved && !dateOf(p.endDate).Before(dateOf(now))
}
