package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/slack-standup-bot/internal/slack"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

var timeNow = time.Now

type SlackHandler struct {
	slackClient    contract.SlackClient
	standupService contract.StandupService
	dm             contract.DataManager
	signingSecret  string
}

func New(slackClient contract.SlackClient, standupService contract.StandupService, dm contract.DataManager, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:    slackClient,
		standupService: standupService,
		dm:             dm,
		signingSecret:  signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.ephemeral(err.Error()))
		return
	}

	h.respond(w, h.handleCommand(r, cmd, &s))
}

// verifiedBody reads the request body and checks the Slack signature.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}
	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}
	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(msg)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdSkip:
		return h.handleSkip(r, cmd, slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(r, slashCmd)
	case slackcmd.CmdEdit:
		return h.handleEdit(r, slashCmd)
	case slackcmd.CmdDelete:
		return h.handleDelete(r, cmd, slashCmd)
	case slackcmd.CmdVacation:
		return h.handleAbsence(r, cmd, slashCmd, entity.EventVacation)
	case slackcmd.CmdUnavailable:
		return h.handleAbsence(r, cmd, slashCmd, entity.EventNotAvailable)
	case slackcmd.CmdHelp:
		return h.ephemeral(slackcmd.GetHelpText())
	default:
		return h.ephemeral("Unknown command")
	}
}

func (h *SlackHandler) handleSkip(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.ephemeral("Please mention the user: `/standup skip @user`")
	}

	channel, err := h.dm.Channel().GetBySlackID(slashCmd.ChannelID)
	if err != nil || channel == nil {
		return h.ephemeral("This channel has no standup configured")
	}

	caller, err := h.dm.User().GetByChannelAndSlackID(channel.ID, slashCmd.UserID)
	if err != nil || caller == nil {
		return h.ephemeral("You are not a member of this standup")
	}

	targetSlackID := slackcmd.ExtractUserID(cmd.Args[0])
	target, err := h.dm.User().GetByChannelAndSlackID(channel.ID, targetSlackID)
	if err != nil || target == nil {
		return h.ephemeral("That user is not a member of this standup")
	}

	standup, err := h.standupService.CurrentStandup(r.Context(), target.ID, channel.ID)
	if err != nil || standup == nil {
		return h.ephemeral("That user has no standup today")
	}

	if err := h.standupService.Skip(r.Context(), caller, standup.ID); err != nil {
		return h.ephemeral(h.renderError(err, targetSlackID))
	}

	// The skip only vacates the turn; hand it to whoever is next.
	next, err := h.standupService.ActivateNext(r.Context(), channel.ID)
	if err != nil {
		log.Printf("Failed to activate next standup in channel %s: %v", slashCmd.ChannelID, err)
	}
	if next != nil {
		if user, err := h.dm.User().GetByID(next.UserID); err == nil && user != nil {
			return &slack.Msg{
				ResponseType: slack.ResponseTypeInChannel,
				Text:         fmt.Sprintf("<@%s>, you are up!", user.SlackUserID),
			}
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf(domain.Messages[domain.KeySkipDone], targetSlackID),
	}
}

func (h *SlackHandler) handleStatus(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	channel, err := h.dm.Channel().GetBySlackID(slashCmd.ChannelID)
	if err != nil || channel == nil {
		return h.ephemeral("This channel has no standup configured")
	}

	standups, err := h.standupService.TodayStandups(r.Context(), channel.ID)
	if err != nil {
		return h.ephemeral("Failed to load today's standups")
	}
	if len(standups) == 0 {
		return h.ephemeral("No standups today")
	}

	var sb strings.Builder
	sb.WriteString("*Today's standup:*\n")
	for _, standup := range standups {
		user, err := h.dm.User().GetByID(standup.UserID)
		if err != nil || user == nil {
			continue
		}
		sb.WriteString("• ")
		sb.WriteString(h.renderStatus(standup, user))
		sb.WriteString("\n")
	}

	return h.ephemeral(sb.String())
}

func (h *SlackHandler) handleEdit(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	standup, msg := h.callerStandup(r, slashCmd)
	if msg != nil {
		return msg
	}

	if err := h.standupService.EditAnswers(r.Context(), standup.ID); err != nil {
		return h.ephemeral(h.renderError(err, slashCmd.UserID))
	}

	return h.ephemeral("Your standup is open for corrections. Send your answers again.")
}

func (h *SlackHandler) handleDelete(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.ephemeral("Tell me which answer to clear: `/standup delete 2`")
	}
	slot, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return h.ephemeral("The answer number must be 1, 2 or 3")
	}

	standup, msg := h.callerStandup(r, slashCmd)
	if msg != nil {
		return msg
	}

	if err := h.standupService.DeleteAnswer(r.Context(), standup.ID, slot); err != nil {
		return h.ephemeral("Failed to clear the answer")
	}

	return h.ephemeral(fmt.Sprintf("Answer %d cleared", slot))
}

func (h *SlackHandler) handleAbsence(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand, event entity.Event) *slack.Msg {
	standup, msg := h.callerStandup(r, slashCmd)
	if msg != nil {
		return msg
	}

	reason := strings.Join(cmd.Args, " ")

	var err error
	if event == entity.EventVacation {
		err = h.standupService.MarkVacation(r.Context(), standup.ID, reason)
	} else {
		err = h.standupService.MarkNotAvailable(r.Context(), standup.ID, reason)
	}
	if err != nil {
		return h.ephemeral(h.renderError(err, slashCmd.UserID))
	}

	if _, err := h.standupService.ActivateNext(r.Context(), standup.ChannelID); err != nil {
		log.Printf("Failed to activate next standup in channel %s: %v", slashCmd.ChannelID, err)
	}

	return h.ephemeral("Noted, see you tomorrow!")
}

func (h *SlackHandler) callerStandup(r *http.Request, slashCmd *slack.SlashCommand) (*entity.Standup, *slack.Msg) {
	channel, err := h.dm.Channel().GetBySlackID(slashCmd.ChannelID)
	if err != nil || channel == nil {
		return nil, h.ephemeral("This channel has no standup configured")
	}

	caller, err := h.dm.User().GetByChannelAndSlackID(channel.ID, slashCmd.UserID)
	if err != nil || caller == nil {
		return nil, h.ephemeral("You are not a member of this standup")
	}

	standup, err := h.standupService.CurrentStandup(r.Context(), caller.ID, channel.ID)
	if err != nil || standup == nil {
		return nil, h.ephemeral("You have no standup today")
	}

	return standup, nil
}

// HandleEvents receives the Events API callbacks and feeds channel
// messages from the user whose turn it is into the answer protocol.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))

	case slackevents.CallbackEvent:
		if msg, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.handleMessage(r, msg)
		}
		w.WriteHeader(http.StatusOK)

	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *SlackHandler) handleMessage(r *http.Request, msg *slackevents.MessageEvent) {
	if msg.BotID != "" || msg.SubType != "" || msg.Text == "" {
		return
	}

	channel, err := h.dm.Channel().GetBySlackID(msg.Channel)
	if err != nil || channel == nil {
		return
	}
	user, err := h.dm.User().GetByChannelAndSlackID(channel.ID, msg.User)
	if err != nil || user == nil {
		return
	}

	standup, err := h.standupService.CurrentStandup(r.Context(), user.ID, channel.ID)
	if err != nil || standup == nil {
		return
	}

	// The first message of a turn moves the standup into answering.
	if standup.State == entity.StateActive {
		if err := h.standupService.StartAnswering(r.Context(), standup.ID); err != nil {
			log.Printf("Failed to start answering for standup %d: %v", standup.ID, err)
			return
		}
	} else if standup.State != entity.StateAnswering {
		return
	}

	updated, err := h.standupService.ProcessAnswer(r.Context(), standup.ID, msg.Text)
	if err != nil {
		log.Printf("Failed to process answer for standup %d: %v", standup.ID, err)
		return
	}

	if updated.Completed() {
		h.post(channel.SlackChannelID, fmt.Sprintf("Thanks <@%s>, that's all for today!", user.SlackUserID))
		if _, err := h.standupService.ActivateNext(r.Context(), channel.ID); err != nil {
			log.Printf("Failed to activate next standup in channel %s: %v", msg.Channel, err)
		}
		return
	}

	if key := updated.CurrentQuestion(timeNow()); key != "" {
		h.post(channel.SlackChannelID, domain.Messages[key])
	}
}

func (h *SlackHandler) post(slackChannelID, text string) {
	_, _, err := h.slackClient.PostMessage(slackChannelID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("Failed to post message to channel %s: %v", slackChannelID, err)
	}
}

// renderStatus formats a standup's status line for its user.
func (h *SlackHandler) renderStatus(standup *entity.Standup, user *entity.User) string {
	return renderTemplate(domain.Messages[standup.Status()], user.SlackUserID)
}

// renderError maps domain errors to their user-facing catalog text.
func (h *SlackHandler) renderError(err error, subjectSlackID string) string {
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		return renderTemplate(domain.Messages[cmdErr.Key], subjectSlackID)
	}

	var transErr *entity.InvalidTransitionError
	if errors.As(err, &transErr) {
		return "That action is not possible right now"
	}

	return "Something went wrong, please try again"
}

func renderTemplate(tmpl, slackID string) string {
	if strings.Contains(tmpl, "%s") {
		return fmt.Sprintf(tmpl, slackID)
	}
	return tmpl
}
