package entity

import "time"

// Setting holds the global knobs consulted by the daily trigger. It
// is passed explicitly to whoever needs it, never read as ambient
// state.
type Setting struct {
	ID              int64  `db:"id"`
	BotName         string `db:"bot_name"`
	KickoffTime     string `db:"kickoff_time"` // HH:MM, 24-hour
	AutoSkipTimeout int    `db:"auto_skip_timeout"` // minutes
	SkipWeekends    bool   `db:"skip_weekends"`
}

// SkipToday reports whether the daily standup should not run at all
// for the given instant.
func (s *Setting) SkipToday(now time.Time) bool {
	if !s.SkipWeekends {
		return false
	}
	wd := now.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
