package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/contract"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// scheduler drives the two external triggers of the standup
// lifecycle: the daily kickoff that creates and activates today's
// standups, and the auto-skip sweep that advances a stuck turn.
type scheduler struct {
	dm          contract.DataManager
	standups    *standupService
	slackClient contract.SlackClient
	stopChan    chan struct{}
	running     bool
	now         func() time.Time

	lastKickoffDay string
}

func newScheduler(dm contract.DataManager, standups *standupService, slackClient contract.SlackClient) *scheduler {
	return &scheduler{
		dm:          dm,
		standups:    standups,
		slackClient: slackClient,
		stopChan:    make(chan struct{}),
		running:     false,
		now:         time.Now,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick(context.Background())
		case <-s.stopChan:
			return
		}
	}
}

func (s *scheduler) tick(ctx context.Context) {
	setting, err := s.dm.Setting().Get()
	if err != nil {
		log.Printf("Error loading settings: %v", err)
		return
	}
	if setting == nil {
		return
	}

	now := s.now()

	if s.shouldKickoff(setting, now) {
		s.lastKickoffDay = now.Format(domain.DayFormat)
		s.kickoffAll(ctx)
	}

	s.autoSkipSweep(ctx, setting, now)
}

// shouldKickoff is true once per day, at or after the configured
// kickoff time, unless the weekend-skip policy says today is off.
func (s *scheduler) shouldKickoff(setting *entity.Setting, now time.Time) bool {
	if setting.SkipToday(now) {
		return false
	}
	if s.lastKickoffDay == now.Format(domain.DayFormat) {
		return false
	}

	kickoff, err := time.Parse("15:04", setting.KickoffTime)
	if err != nil {
		log.Printf("Invalid kickoff time %q: %v", setting.KickoffTime, err)
		return false
	}

	todayKickoff := time.Date(now.Year(), now.Month(), now.Day(),
		kickoff.Hour(), kickoff.Minute(), 0, 0, now.Location())
	return !now.Before(todayKickoff)
}

// kickoffAll creates today's standups for every member of every
// active channel and hands the turn to the first one in the queue.
func (s *scheduler) kickoffAll(ctx context.Context) {
	channels, err := s.dm.Channel().GetActiveChannels()
	if err != nil {
		log.Printf("Error getting active channels: %v", err)
		return
	}

	for _, channel := range channels {
		if err := s.kickoffChannel(ctx, channel); err != nil {
			log.Printf("Failed to kick off standup for channel %s: %v", channel.SlackChannelID, err)
		}
	}
}

func (s *scheduler) kickoffChannel(ctx context.Context, channel *entity.Channel) error {
	users, err := s.dm.User().GetActiveUsersByChannel(channel.ID)
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	for _, user := range users {
		// Members who left the workspace are dropped instead of
		// getting a standup they can never answer.
		if slackUser, err := s.slackClient.GetUserInfo(user.SlackUserID); err == nil && slackUser != nil && slackUser.Deleted {
			if err := s.dm.User().Delete(user.ID); err != nil {
				log.Printf("Failed to remove deleted user %s: %v", user.SlackUserID, err)
			}
			continue
		}
		if _, err := s.standups.CreateIfNeeded(ctx, user.ID, channel.ID); err != nil {
			return err
		}
	}

	first, err := s.standups.ActivateNext(ctx, channel.ID)
	if err != nil {
		return err
	}
	if first == nil {
		return nil
	}

	user, err := s.dm.User().GetByID(first.UserID)
	if err != nil || user == nil {
		return fmt.Errorf("failed to load user %d: %w", first.UserID, err)
	}

	question := domain.Messages[entity.QuestionForSlot(1, s.now())]
	message := fmt.Sprintf("Good morning! <@%s>, you are up first.\n%s", user.SlackUserID, question)
	_, _, err = s.slackClient.PostMessage(channel.SlackChannelID, slack.MsgOptionText(message, false))
	if err != nil {
		// The standup is already active, delivery is best-effort.
		log.Printf("Failed to send kickoff message to channel %s: %v", channel.SlackChannelID, err)
		s.deactivateIfGone(channel, err)
	}
	return nil
}

// deactivateIfGone takes a channel out of the daily rotation when
// Slack reports it no longer accepts messages.
func (s *scheduler) deactivateIfGone(channel *entity.Channel, postErr error) {
	switch postErr.Error() {
	case "channel_not_found", "is_archived":
	default:
		return
	}

	channel.IsActive = false
	if err := s.dm.Channel().Update(channel); err != nil {
		log.Printf("Failed to deactivate channel %s: %v", channel.SlackChannelID, err)
	}
}

// autoSkipSweep finds active standups whose turn has been idle past
// the configured timeout and pushes them through the auto-skip
// policy, then hands the turn to the next person waiting.
func (s *scheduler) autoSkipSweep(ctx context.Context, setting *entity.Setting, now time.Time) {
	if setting.AutoSkipTimeout <= 0 {
		return
	}
	timeout := time.Duration(setting.AutoSkipTimeout) * time.Minute

	channels, err := s.dm.Channel().GetActiveChannels()
	if err != nil {
		log.Printf("Error getting active channels: %v", err)
		return
	}

	for _, channel := range channels {
		standups, err := s.standups.TodayStandups(ctx, channel.ID)
		if err != nil {
			log.Printf("Error listing standups for channel %s: %v", channel.SlackChannelID, err)
			continue
		}

		for _, standup := range standups {
			if standup.State != entity.StateActive {
				continue
			}
			if now.Sub(standup.UpdatedAt) < timeout {
				continue
			}

			if err := s.standups.AutoSkip(ctx, standup.ID); err != nil {
				log.Printf("Failed to auto-skip standup %d: %v", standup.ID, err)
				continue
			}
			if _, err := s.standups.ActivateNext(ctx, channel.ID); err != nil {
				log.Printf("Failed to activate next standup in channel %s: %v", channel.SlackChannelID, err)
			}
		}
	}
}
