package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdSkip        CommandType = "skip"
	CmdStatus      CommandType = "status"
	CmdEdit        CommandType = "edit"
	CmdDelete      CommandType = "delete"
	CmdVacation    CommandType = "vacation"
	CmdUnavailable CommandType = "unavailable"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "skip":
		cmd.Type = CmdSkip
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "status":
		cmd.Type = CmdStatus
	case "edit":
		cmd.Type = CmdEdit
	case "delete", "del":
		cmd.Type = CmdDelete
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "vacation":
		cmd.Type = CmdVacation
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "unavailable", "na":
		cmd.Type = CmdUnavailable
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Standup:*
• ` + "`/standup status`" + ` - Show everyone's standup status for today
• ` + "`/standup edit`" + ` - Reopen your finished standup to correct answers
• ` + "`/standup delete N`" + ` - Clear your answer to question N (1-3)

*Absence:*
• ` + "`/standup vacation [reason]`" + ` - Mark yourself on vacation for today
• ` + "`/standup unavailable [reason]`" + ` - Mark yourself not available for today

*Admin:*
• ` + "`/standup skip @user`" + ` - Skip the current user and move them to the end of the queue`
}

// ExtractUserID strips the <@U123> or <@U123|name> wrapping from a
// Slack mention argument.
func ExtractUserID(mention string) string {
	id := strings.TrimSpace(mention)
	id = strings.TrimPrefix(id, "<@")
	id = strings.TrimSuffix(id, ">")
	if i := strings.IndexByte(id, '|'); i >= 0 {
		id = id[:i]
	}
	return id
}
