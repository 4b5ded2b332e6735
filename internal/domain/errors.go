package domain

// CommandError is a user-facing validation failure. It carries the
// message-catalog key so handlers can render the exact reason back to
// the person who issued the command. These are routine outcomes of
// user interaction, never process failures.
type CommandError struct {
	Key     string
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Skip command validation errors, in the order the guards run.
var (
	ErrSkipNotAllowed = &CommandError{
		Key:     KeySkipNotAllowed,
		Message: "only admins can skip users",
	}
	ErrSkipNeedToWait = &CommandError{
		Key:     KeySkipNeedToWait,
		Message: "the user must wait their turn",
	}
	ErrSkipAlreadyCompleted = &CommandError{
		Key:     KeySkipAlreadyCompleted,
		Message: "the user already completed today's standup",
	}
	ErrSkipOtherAnswering = &CommandError{
		Key:     KeySkipOtherAnswering,
		Message: "the user is answering right now and cannot be skipped",
	}
	ErrSkipLastPending = &CommandError{
		Key:     KeySkipLastPending,
		Message: "nobody else is waiting, so the user cannot be skipped",
	}
)
