package domain

// Message-catalog keys. The catalog maps each key to a template; the
// key is what the core selects, the wording is presentation detail
// that a deployment may replace wholesale.
const (
	KeyStatusIdle                = "standup.status.idle"
	KeyStatusActive              = "standup.status.active"
	KeyStatusAnsweringYesterday  = "standup.status.answering_yesterday"
	KeyStatusAnsweringToday      = "standup.status.answering_today"
	KeyStatusAnsweringConflicts  = "standup.status.answering_conflicts"
	KeyStatusDone                = "standup.status.done"
	KeyStatusNotAvailable        = "standup.status.not_available"
	KeyStatusOnVacation          = "standup.status.on_vacation"
	KeyStatusUnknown             = "standup.status.unknown"
	KeyQuestion1Monday           = "standup.question_1_monday"
	KeyQuestion1NotMonday        = "standup.question_1_not_monday"
	KeyQuestion2                 = "standup.question_2"
	KeyQuestion3                 = "standup.question_3"
	KeySkipNotAllowed            = "incoming_message.skip.not_allowed"
	KeySkipNeedToWait            = "incoming_message.skip.need_to_wait"
	KeySkipAlreadyCompleted      = "incoming_message.skip.already_completed"
	KeySkipOtherAnswering        = "incoming_message.skip.other_answering"
	KeySkipLastPending           = "incoming_message.skip.last_man_answering"
	KeySkipDone                  = "incoming_message.skip.skip"
)

// Messages holds the default English catalog. Templates with a %s
// slot take the subject user's Slack ID.
var Messages = map[string]string{
	KeyStatusIdle:               "<@%s> is waiting for their turn",
	KeyStatusActive:             "<@%s> is up next",
	KeyStatusAnsweringYesterday: "<@%s> is telling us what they did yesterday",
	KeyStatusAnsweringToday:     "<@%s> is telling us what they will do today",
	KeyStatusAnsweringConflicts: "<@%s> is telling us about their blockers",
	KeyStatusDone:               "<@%s> already finished today's standup",
	KeyStatusNotAvailable:       "<@%s> is not available today",
	KeyStatusOnVacation:         "<@%s> is on vacation",
	KeyStatusUnknown:            "<@%s> is in an unknown state",
	KeyQuestion1Monday:          "What did you do last Friday?",
	KeyQuestion1NotMonday:       "What did you do yesterday?",
	KeyQuestion2:                "What will you do today?",
	KeyQuestion3:                "Anything blocking your progress?",
	KeySkipNotAllowed:           "only admins can skip users",
	KeySkipNeedToWait:           "<@%s> must wait their turn",
	KeySkipAlreadyCompleted:     "<@%s> already completed today's standup",
	KeySkipOtherAnswering:       "<@%s> is answering right now and cannot be skipped",
	KeySkipLastPending:          "nobody else is waiting, so the user cannot be skipped",
	KeySkipDone:                 "<@%s> was skipped and moved to the end of the queue",
}
