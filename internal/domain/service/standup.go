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

type standupService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	now         func() time.Time
}

func newStandup(dm contract.DataManager, slackClient contract.SlackClient) *standupService {
	return &standupService{
		dm:          dm,
		slackClient: slackClient,
		now:         time.Now,
	}
}

func (s *standupService) today() string {
	return s.now().Format(domain.DayFormat)
}

// CreateIfNeeded returns today's standup for the user in the channel,
// creating an idle one at the back of the queue when it does not
// exist yet. Bots never get a standup; repeated calls on the same day
// return the same record.
func (s *standupService) CreateIfNeeded(ctx context.Context, userID, channelID int64) (*entity.Standup, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}
	if user.IsBot {
		return nil, nil
	}

	day := s.today()

	existing, err := s.dm.Standup().GetByUserChannelAndDay(userID, channelID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing standup: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	var standup *entity.Standup
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		maxOrder, err := tx.Standup().MaxOrderByChannelAndDay(channelID, day)
		if err != nil {
			return err
		}

		standup = &entity.Standup{
			ChannelID:   channelID,
			UserID:      userID,
			StandupDate: day,
			QueueOrder:  maxOrder + 1,
			State:       entity.StateIdle,
		}
		return tx.Standup().Create(standup)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create standup: %w", err)
	}

	return standup, nil
}

// ActivateNext promotes the first idle standup in today's queue to
// active. Returns nil when nobody is waiting.
func (s *standupService) ActivateNext(ctx context.Context, channelID int64) (*entity.Standup, error) {
	standups, err := s.dm.Standup().ListByChannelAndDay(channelID, s.today())
	if err != nil {
		return nil, fmt.Errorf("failed to list standups: %w", err)
	}

	for _, standup := range standups {
		if standup.InProgress() {
			// Somebody already holds the turn, do not promote.
			return nil, nil
		}
	}

	for _, standup := range standups {
		if standup.State != entity.StateIdle {
			continue
		}
		if err := standup.Apply(entity.EventInit); err != nil {
			return nil, err
		}
		if err := s.dm.Standup().Update(standup); err != nil {
			return nil, fmt.Errorf("failed to update standup: %w", err)
		}
		return standup, nil
	}

	return nil, nil
}

func (s *standupService) StartAnswering(ctx context.Context, standupID int64) error {
	return s.applyAndSave(standupID, entity.EventStart, "")
}

func (s *standupService) EditAnswers(ctx context.Context, standupID int64) error {
	return s.applyAndSave(standupID, entity.EventEdit, "")
}

func (s *standupService) MarkNotAvailable(ctx context.Context, standupID int64, reason string) error {
	return s.applyAndSave(standupID, entity.EventNotAvailable, reason)
}

func (s *standupService) MarkVacation(ctx context.Context, standupID int64, reason string) error {
	return s.applyAndSave(standupID, entity.EventVacation, reason)
}

func (s *standupService) applyAndSave(standupID int64, event entity.Event, reason string) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return fmt.Errorf("failed to get standup: %w", err)
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	if err := standup.Apply(event); err != nil {
		return err
	}
	if reason != "" {
		standup.Reason = reason
	}

	if err := s.dm.Standup().Update(standup); err != nil {
		return fmt.Errorf("failed to update standup: %w", err)
	}
	return nil
}

// ProcessAnswer rewrites user mentions in text and stores it into the
// first unset answer slot. Filling the last slot finishes the
// standup. A message to an already-full record changes nothing.
func (s *standupService) ProcessAnswer(ctx context.Context, standupID int64, text string) (*entity.Standup, error) {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get standup: %w", err)
	}
	if standup == nil {
		return nil, fmt.Errorf("standup %d not found", standupID)
	}

	// A stray message to a full record changes nothing, including
	// updated_at, which feeds the elapsed-time measurement.
	if standup.Yesterday != "" && standup.Today != "" && standup.Conflicts != "" {
		return standup, nil
	}

	rewritten := entity.ReplaceUserMentions(text, s.resolveMention)

	if err := standup.RecordAnswer(rewritten); err != nil {
		return nil, err
	}

	if err := s.dm.Standup().Update(standup); err != nil {
		return nil, fmt.Errorf("failed to update standup: %w", err)
	}

	return standup, nil
}

// resolveMention maps a mentioned Slack ID to a display name, local
// members first and the Slack API for anyone not in the workspace
// roster we track.
func (s *standupService) resolveMention(slackID string) (string, bool) {
	user, err := s.dm.User().GetBySlackID(slackID)
	if err != nil {
		log.Printf("Error resolving mention %s: %v", slackID, err)
		return "", false
	}
	if user != nil {
		return user.FullName, true
	}

	slackUser, err := s.slackClient.GetUserInfo(slackID)
	if err != nil || slackUser == nil {
		return "", false
	}
	if slackUser.RealName != "" {
		return slackUser.RealName, true
	}
	return slackUser.Name, slackUser.Name != ""
}

// DeleteAnswer clears one answer slot. The standup's state is left
// alone; reopening a finished standup is the edit command's job.
func (s *standupService) DeleteAnswer(ctx context.Context, standupID int64, slot int) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return fmt.Errorf("failed to get standup: %w", err)
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	standup.DeleteAnswer(slot)

	if err := s.dm.Standup().Update(standup); err != nil {
		return fmt.Errorf("failed to update standup: %w", err)
	}
	return nil
}

type skipGuard struct {
	violated func() bool
	err      *domain.CommandError
}

// Skip is the admin override: it validates the five preconditions in
// order, stopping at the first violation, then returns the standup to
// idle at the back of the queue and notifies the channel. The state
// flip and the reorder commit together or not at all.
func (s *standupService) Skip(ctx context.Context, caller *entity.User, standupID int64) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return fmt.Errorf("failed to get standup: %w", err)
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	pending, err := s.dm.Standup().CountPendingByChannelAndDay(standup.ChannelID, standup.StandupDate)
	if err != nil {
		return fmt.Errorf("failed to count pending standups: %w", err)
	}

	guards := []skipGuard{
		{func() bool { return !caller.IsAdmin }, domain.ErrSkipNotAllowed},
		{func() bool { return standup.State == entity.StateIdle }, domain.ErrSkipNeedToWait},
		{func() bool { return standup.Completed() }, domain.ErrSkipAlreadyCompleted},
		{func() bool { return standup.State == entity.StateAnswering }, domain.ErrSkipOtherAnswering},
		{func() bool { return pending == 0 }, domain.ErrSkipLastPending},
	}
	for _, g := range guards {
		if g.violated() {
			return g.err
		}
	}

	if err := s.skipAndReorder(ctx, standup); err != nil {
		return err
	}

	s.notifySkip(standup)
	return nil
}

// skipAndReorder fires the skip transition and moves the record to
// the back of the queue in a single transaction, so two concurrent
// skips in the same channel never compute the same order.
func (s *standupService) skipAndReorder(ctx context.Context, standup *entity.Standup) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		current, err := tx.Standup().GetByID(standup.ID)
		if err != nil {
			return err
		}

		maxOrder, err := tx.Standup().MaxOrderByChannelAndDay(current.ChannelID, current.StandupDate)
		if err != nil {
			return err
		}

		if err := current.Apply(entity.EventSkip); err != nil {
			return err
		}
		current.QueueOrder = maxOrder + 1
		current.AutoSkippedCount = standup.AutoSkippedCount

		if err := tx.Standup().Update(current); err != nil {
			return err
		}

		*standup = *current
		return nil
	})
}

// notifySkip posts the skip notification. Delivery is best-effort:
// the transition is already committed and a Slack failure must not
// undo it.
func (s *standupService) notifySkip(standup *entity.Standup) {
	channel, err := s.dm.Channel().GetByID(standup.ChannelID)
	if err != nil || channel == nil {
		log.Printf("Failed to load channel %d for skip notification: %v", standup.ChannelID, err)
		return
	}
	user, err := s.dm.User().GetByID(standup.UserID)
	if err != nil || user == nil {
		log.Printf("Failed to load user %d for skip notification: %v", standup.UserID, err)
		return
	}

	message := fmt.Sprintf(domain.Messages[domain.KeySkipDone], user.SlackUserID)
	_, _, err = s.slackClient.PostMessage(channel.SlackChannelID, slack.MsgOptionText(message, false))
	if err != nil {
		log.Printf("Failed to send skip notification to channel %s: %v", channel.SlackChannelID, err)
	}
}

// AutoSkip is the inactivity policy's entry point. It reuses the same
// skip transition while the record is under the auto-skip budget and
// marks the user not available once it is spent.
func (s *standupService) AutoSkip(ctx context.Context, standupID int64) error {
	standup, err := s.dm.Standup().GetByID(standupID)
	if err != nil {
		return fmt.Errorf("failed to get standup: %w", err)
	}
	if standup == nil {
		return fmt.Errorf("standup %d not found", standupID)
	}

	if standup.AutoSkippedCount >= domain.MaxAutoSkips {
		return s.applyAndSave(standupID, entity.EventNotAvailable, "unresponsive")
	}

	standup.AutoSkippedCount++
	return s.skipAndReorder(ctx, standup)
}

func (s *standupService) TodayStandups(ctx context.Context, channelID int64) ([]*entity.Standup, error) {
	return s.dm.Standup().ListByChannelAndDay(channelID, s.today())
}

func (s *standupService) CurrentStandup(ctx context.Context, userID, channelID int64) (*entity.Standup, error) {
	return s.dm.Standup().GetByUserChannelAndDay(userID, channelID, s.today())
}

// TimeElapsedInTodaysStandup measures from the first record's
// creation to the most recent update in today's group.
func (s *standupService) TimeElapsedInTodaysStandup(ctx context.Context, channelID int64) (time.Duration, error) {
	day := s.today()

	started, err := s.dm.Standup().FirstCreatedAtByChannelAndDay(channelID, day)
	if err != nil {
		return 0, err
	}
	ended, err := s.dm.Standup().LastUpdatedAtByChannelAndDay(channelID, day)
	if err != nil {
		return 0, err
	}
	if started.IsZero() || ended.IsZero() {
		return 0, nil
	}

	return ended.Sub(started), nil
}
