package contract

import (
	"context"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	User() UserRepo
	Standup() StandupRepo
	Setting() SettingRepo
}

// ChannelRepo defines the contract for channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	GetByID(id int64) (*entity.Channel, error)
	Update(channel *entity.Channel) error
	GetActiveChannels() ([]*entity.Channel, error)
}

// UserRepo defines the contract for user repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.User, error)
	GetBySlackID(slackUserID string) (*entity.User, error)
	GetActiveUsersByChannel(channelID int64) ([]*entity.User, error)
	Delete(userID int64) error
}

// StandupRepo defines the contract for standup repository
type StandupRepo interface {
	Create(standup *entity.Standup) error
	GetByID(id int64) (*entity.Standup, error)
	GetByUserChannelAndDay(userID, channelID int64, day string) (*entity.Standup, error)
	ListByChannelAndDay(channelID int64, day string) ([]*entity.Standup, error)
	CountPendingByChannelAndDay(channelID int64, day string) (int, error)
	MaxOrderByChannelAndDay(channelID int64, day string) (int, error)
	FirstCreatedAtByChannelAndDay(channelID int64, day string) (time.Time, error)
	LastUpdatedAtByChannelAndDay(channelID int64, day string) (time.Time, error)
	Update(standup *entity.Standup) error
}

// SettingRepo defines the contract for the settings repository
type SettingRepo interface {
	Get() (*entity.Setting, error)
	Update(setting *entity.Setting) error
}
