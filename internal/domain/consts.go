package domain

// MaxAutoSkips is how many times the auto-skip policy may push an
// unresponsive standup back to the end of the queue before marking
// the user not available for the day.
const MaxAutoSkips = 2

// DayFormat is the layout for a standup's calendar day. The day is
// fixed when the record is created and never recomputed afterwards.
const DayFormat = "2006-01-02"

// MentionFallbackName replaces a <@ID> mention whose user cannot be
// resolved.
const MentionFallbackName = "User Not Available"
