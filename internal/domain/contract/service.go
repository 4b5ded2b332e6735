package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

type StandupService interface {
	CreateIfNeeded(ctx context.Context, userID, channelID int64) (*entity.Standup, error)
	ActivateNext(ctx context.Context, channelID int64) (*entity.Standup, error)
	StartAnswering(ctx context.Context, standupID int64) error
	ProcessAnswer(ctx context.Context, standupID int64, text string) (*entity.Standup, error)
	DeleteAnswer(ctx context.Context, standupID int64, slot int) error
	EditAnswers(ctx context.Context, standupID int64) error
	MarkNotAvailable(ctx context.Context, standupID int64, reason string) error
	MarkVacation(ctx context.Context, standupID int64, reason string) error
	Skip(ctx context.Context, caller *entity.User, standupID int64) error
	AutoSkip(ctx context.Context, standupID int64) error
	TodayStandups(ctx context.Context, channelID int64) ([]*entity.Standup, error)
	CurrentStandup(ctx context.Context, userID, channelID int64) (*entity.Standup, error)
	TimeElapsedInTodaysStandup(ctx context.Context, channelID int64) (time.Duration, error)
}
