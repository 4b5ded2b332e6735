package entity

import (
	"fmt"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
)

// State is the lifecycle state of a standup record.
type State string

const (
	StateIdle         State = "idle"
	StateActive       State = "active"
	StateAnswering    State = "answering"
	StateDone         State = "done"
	StateNotAvailable State = "not_available"
	StateVacation     State = "vacation"
)

// Event drives a standup from one state to the next.
type Event string

const (
	EventInit         Event = "init"
	EventSkip         Event = "skip"
	EventStart        Event = "start"
	EventEdit         Event = "edit"
	EventNotAvailable Event = "not_available"
	EventVacation     Event = "vacation"
	EventFinish       Event = "finish"
)

// transitions maps each event to its single allowed source and target
// state. An event fired from any other state is refused and leaves
// the record untouched.
var transitions = map[Event]struct{ from, to State }{
	EventInit:         {StateIdle, StateActive},
	EventSkip:         {StateActive, StateIdle},
	EventStart:        {StateActive, StateAnswering},
	EventEdit:         {StateDone, StateAnswering},
	EventNotAvailable: {StateActive, StateNotAvailable},
	EventVacation:     {StateActive, StateVacation},
	EventFinish:       {StateAnswering, StateDone},
}

// InvalidTransitionError reports an event fired from a state it is
// not valid in. The record's state is unchanged; the caller should
// re-read the current state before retrying.
type InvalidTransitionError struct {
	Event Event
	From  State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: event %q not allowed from state %q", e.Event, e.From)
}

// Standup is one user's daily status-update record for one channel.
type Standup struct {
	ID               int64     `db:"id"`
	ChannelID        int64     `db:"channel_id"`
	UserID           int64     `db:"user_id"`
	StandupDate      string    `db:"standup_date"` // YYYY-MM-DD, fixed at creation
	QueueOrder       int       `db:"queue_order"`
	State            State     `db:"state"`
	Yesterday        string    `db:"yesterday"`
	Today            string    `db:"today"`
	Conflicts        string    `db:"conflicts"`
	AutoSkippedCount int       `db:"auto_skipped_count"`
	Reason           string    `db:"reason"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Apply fires an event against the state machine. On success the
// state is updated in place; otherwise an *InvalidTransitionError is
// returned and nothing changes.
func (s *Standup) Apply(event Event) error {
	t, ok := transitions[event]
	if !ok || s.State != t.from {
		return &InvalidTransitionError{Event: event, From: s.State}
	}
	s.State = t.to
	return nil
}

// Can reports whether an event is valid from the current state.
func (s *Standup) Can(event Event) bool {
	t, ok := transitions[event]
	return ok && s.State == t.from
}

// Completed reports whether the standup reached one of its terminal
// outcomes for the day.
func (s *Standup) Completed() bool {
	return s.State == StateDone || s.State == StateNotAvailable || s.State == StateVacation
}

// InProgress reports whether the standup currently holds the
// channel's turn.
func (s *Standup) InProgress() bool {
	return s.State == StateActive || s.State == StateAnswering
}

// RecordAnswer stores text into the first unset slot, in
// yesterday → today → conflicts order. When the record is already
// full the call is a no-op (a stray message to a finished standup).
// Filling the last slot fires finish automatically.
func (s *Standup) RecordAnswer(text string) error {
	switch {
	case s.Yesterday == "":
		s.Yesterday = text
	case s.Today == "":
		s.Today = text
	case s.Conflicts == "":
		s.Conflicts = text
	default:
		return nil
	}

	if s.Yesterday != "" && s.Today != "" && s.Conflicts != "" {
		return s.Apply(EventFinish)
	}
	return nil
}

// DeleteAnswer clears exactly one slot. Slot numbers outside 1-3 are
// ignored. State is never touched: deleting an answer from a done
// standup does not reopen it, the edit event does that explicitly.
func (s *Standup) DeleteAnswer(slot int) {
	switch slot {
	case 1:
		s.Yesterday = ""
	case 2:
		s.Today = ""
	case 3:
		s.Conflicts = ""
	}
}

// QuestionForSlot returns the catalog key for a slot's prompt. The
// first question asks about Friday on Mondays.
func QuestionForSlot(slot int, now time.Time) string {
	switch slot {
	case 1:
		if now.Weekday() == time.Monday {
			return domain.KeyQuestion1Monday
		}
		return domain.KeyQuestion1NotMonday
	case 2:
		return domain.KeyQuestion2
	case 3:
		return domain.KeyQuestion3
	}
	return ""
}

// CurrentQuestion returns the catalog key for the next prompt, based
// on which slot is first unset. Empty once all slots are filled.
func (s *Standup) CurrentQuestion(now time.Time) string {
	switch {
	case s.Yesterday == "":
		return QuestionForSlot(1, now)
	case s.Today == "":
		return QuestionForSlot(2, now)
	case s.Conflicts == "":
		return QuestionForSlot(3, now)
	}
	return ""
}

// Status maps the record to its message-catalog status key. Within
// answering the key tracks which question is being answered; within
// the terminal states it tracks which outcome was reached.
func (s *Standup) Status() string {
	switch s.State {
	case StateIdle:
		return domain.KeyStatusIdle
	case StateActive:
		return domain.KeyStatusActive
	case StateAnswering:
		switch {
		case s.Yesterday == "":
			return domain.KeyStatusAnsweringYesterday
		case s.Today == "":
			return domain.KeyStatusAnsweringToday
		default:
			return domain.KeyStatusAnsweringConflicts
		}
	case StateDone:
		return domain.KeyStatusDone
	case StateNotAvailable:
		return domain.KeyStatusNotAvailable
	case StateVacation:
		return domain.KeyStatusOnVacation
	}
	return domain.KeyStatusUnknown
}
