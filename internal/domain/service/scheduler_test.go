package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(m allMocks) *scheduler {
	standups := newTestStandupService(m)
	s := newScheduler(m.mockDataManager, standups, m.mockSlackClient)
	s.now = standups.now
	return s
}

func Test_scheduler_shouldKickoff(t *testing.T) {
	setting := &entity.Setting{KickoffTime: "09:00", SkipWeekends: true}

	tests := []struct {
		name           string
		now            time.Time
		lastKickoffDay string
		want           bool
	}{
		{
			name: "fires at the configured time on a weekday",
			now:  time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "fires late in the day too",
			now:  time.Date(2024, 1, 2, 17, 30, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "does not fire before the configured time",
			now:  time.Date(2024, 1, 2, 8, 59, 0, 0, time.UTC),
			want: false,
		},
		{
			name:           "fires at most once per day",
			now:            time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
			lastKickoffDay: "2024-01-02",
			want:           false,
		},
		{
			name: "does not fire on a saturday when weekends are skipped",
			now:  time.Date(2024, 1, 6, 10, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newTestScheduler(m)
			s.lastKickoffDay = tt.lastKickoffDay

			assert.Equal(t, tt.want, s.shouldKickoff(setting, tt.now))
		})
	}
}

func Test_scheduler_kickoffChannel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTestScheduler(m)

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123"}
	alice := &entity.User{ID: 5, ChannelID: 1, SlackUserID: "U555"}
	bob := &entity.User{ID: 6, ChannelID: 1, SlackUserID: "U666"}

	m.mockUserRepo.EXPECT().
		GetActiveUsersByChannel(int64(1)).
		Return([]*entity.User{alice, bob}, nil).Times(1)

	// Both members still exist in the workspace.
	m.mockSlackClient.EXPECT().GetUserInfo("U555").Return(&slack.User{}, nil).Times(1)
	m.mockSlackClient.EXPECT().GetUserInfo("U666").Return(&slack.User{}, nil).Times(1)

	// Both already have today's record, so no inserts happen.
	m.mockUserRepo.EXPECT().GetByID(int64(5)).Return(alice, nil).Times(1)
	m.mockStandupRepo.EXPECT().
		GetByUserChannelAndDay(int64(5), int64(1), testDay).
		Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 5, QueueOrder: 1, State: entity.StateIdle}, nil).Times(1)
	m.mockUserRepo.EXPECT().GetByID(int64(6)).Return(bob, nil).Times(1)
	m.mockStandupRepo.EXPECT().
		GetByUserChannelAndDay(int64(6), int64(1), testDay).
		Return(&entity.Standup{ID: 11, ChannelID: 1, UserID: 6, QueueOrder: 2, State: entity.StateIdle}, nil).Times(1)

	m.mockStandupRepo.EXPECT().
		ListByChannelAndDay(int64(1), testDay).
		Return([]*entity.Standup{
			{ID: 10, ChannelID: 1, UserID: 5, QueueOrder: 1, State: entity.StateIdle},
			{ID: 11, ChannelID: 1, UserID: 6, QueueOrder: 2, State: entity.StateIdle},
		}, nil).Times(1)
	m.mockStandupRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *entity.Standup) error {
			require.Equal(t, int64(10), updated.ID)
			require.Equal(t, entity.StateActive, updated.State)
			return nil
		}).Times(1)

	m.mockUserRepo.EXPECT().GetByID(int64(5)).Return(alice, nil).Times(1)
	m.mockSlackClient.EXPECT().
		PostMessage("C123", gomock.Any()).
		Return("", "", nil).Times(1)

	err := s.kickoffChannel(context.Background(), channel)
	require.NoError(t, err)
}

func Test_scheduler_kickoffChannel_RemovesDeletedMember(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTestScheduler(m)

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123"}
	alice := &entity.User{ID: 5, ChannelID: 1, SlackUserID: "U555"}
	bob := &entity.User{ID: 6, ChannelID: 1, SlackUserID: "U666"}

	m.mockUserRepo.EXPECT().
		GetActiveUsersByChannel(int64(1)).
		Return([]*entity.User{alice, bob}, nil).Times(1)

	// Alice left the workspace: dropped, and no standup is created.
	m.mockSlackClient.EXPECT().GetUserInfo("U555").Return(&slack.User{Deleted: true}, nil).Times(1)
	m.mockUserRepo.EXPECT().Delete(int64(5)).Return(nil).Times(1)

	m.mockSlackClient.EXPECT().GetUserInfo("U666").Return(&slack.User{}, nil).Times(1)
	m.mockUserRepo.EXPECT().GetByID(int64(6)).Return(bob, nil).Times(1)
	m.mockStandupRepo.EXPECT().
		GetByUserChannelAndDay(int64(6), int64(1), testDay).
		Return(&entity.Standup{ID: 11, ChannelID: 1, UserID: 6, QueueOrder: 1, State: entity.StateIdle}, nil).Times(1)

	m.mockStandupRepo.EXPECT().
		ListByChannelAndDay(int64(1), testDay).
		Return([]*entity.Standup{
			{ID: 11, ChannelID: 1, UserID: 6, QueueOrder: 1, State: entity.StateIdle},
		}, nil).Times(1)
	m.mockStandupRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	m.mockUserRepo.EXPECT().GetByID(int64(6)).Return(bob, nil).Times(1)
	m.mockSlackClient.EXPECT().
		PostMessage("C123", gomock.Any()).
		Return("", "", nil).Times(1)

	err := s.kickoffChannel(context.Background(), channel)
	require.NoError(t, err)
}

func Test_scheduler_kickoffChannel_DeactivatesArchivedChannel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTestScheduler(m)

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123", IsActive: true}
	alice := &entity.User{ID: 5, ChannelID: 1, SlackUserID: "U555"}

	m.mockUserRepo.EXPECT().
		GetActiveUsersByChannel(int64(1)).
		Return([]*entity.User{alice}, nil).Times(1)
	m.mockSlackClient.EXPECT().GetUserInfo("U555").Return(&slack.User{}, nil).Times(1)
	m.mockUserRepo.EXPECT().GetByID(int64(5)).Return(alice, nil).Times(1)
	m.mockStandupRepo.EXPECT().
		GetByUserChannelAndDay(int64(5), int64(1), testDay).
		Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 5, QueueOrder: 1, State: entity.StateIdle}, nil).Times(1)

	m.mockStandupRepo.EXPECT().
		ListByChannelAndDay(int64(1), testDay).
		Return([]*entity.Standup{
			{ID: 10, ChannelID: 1, UserID: 5, QueueOrder: 1, State: entity.StateIdle},
		}, nil).Times(1)
	m.mockStandupRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	m.mockUserRepo.EXPECT().GetByID(int64(5)).Return(alice, nil).Times(1)

	m.mockSlackClient.EXPECT().
		PostMessage("C123", gomock.Any()).
		Return("", "", errors.New("is_archived")).Times(1)
	m.mockChannelRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *entity.Channel) error {
			require.Equal(t, int64(1), updated.ID)
			require.False(t, updated.IsActive)
			return nil
		}).Times(1)

	err := s.kickoffChannel(context.Background(), channel)
	require.NoError(t, err)
}

func Test_scheduler_kickoffChannel_NoUsers(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTestScheduler(m)

	m.mockUserRepo.EXPECT().
		GetActiveUsersByChannel(int64(1)).
		Return(nil, nil).Times(1)

	err := s.kickoffChannel(context.Background(), &entity.Channel{ID: 1, SlackChannelID: "C123"})
	require.NoError(t, err)
}

func Test_scheduler_autoSkipSweep(t *testing.T) {
	t.Run("Should do nothing when the timeout is disabled", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newTestScheduler(m)

		s.autoSkipSweep(context.Background(), &entity.Setting{AutoSkipTimeout: 0}, testNow)
	})

	t.Run("Should leave a fresh turn alone", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newTestScheduler(m)

		m.mockChannelRepo.EXPECT().
			GetActiveChannels().
			Return([]*entity.Channel{{ID: 1, SlackChannelID: "C123"}}, nil).Times(1)
		m.mockStandupRepo.EXPECT().
			ListByChannelAndDay(int64(1), testDay).
			Return([]*entity.Standup{
				{ID: 10, ChannelID: 1, State: entity.StateActive, UpdatedAt: testNow.Add(-time.Minute)},
			}, nil).Times(1)

		s.autoSkipSweep(context.Background(), &entity.Setting{AutoSkipTimeout: 10}, testNow)
	})

	t.Run("Should auto-skip a turn stuck past the timeout", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()
		s := newTestScheduler(m)

		m.mockChannelRepo.EXPECT().
			GetActiveChannels().
			Return([]*entity.Channel{{ID: 1, SlackChannelID: "C123"}}, nil).Times(1)
		m.mockStandupRepo.EXPECT().
			ListByChannelAndDay(int64(1), testDay).
			Return([]*entity.Standup{
				{ID: 10, ChannelID: 1, StandupDate: testDay, QueueOrder: 1,
					State: entity.StateActive, UpdatedAt: testNow.Add(-30 * time.Minute)},
			}, nil).Times(1)

		// AutoSkip path: under the budget, so it reorders.
		m.mockStandupRepo.EXPECT().
			GetByID(int64(10)).
			Return(&entity.Standup{
				ID: 10, ChannelID: 1, StandupDate: testDay,
				QueueOrder: 1, State: entity.StateActive,
			}, nil).Times(2)
		expectTransactionPassthrough(m)
		m.mockStandupRepo.EXPECT().
			MaxOrderByChannelAndDay(int64(1), testDay).
			Return(2, nil).Times(1)
		m.mockStandupRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(updated *entity.Standup) error {
				require.Equal(t, entity.StateIdle, updated.State)
				require.Equal(t, 3, updated.QueueOrder)
				require.Equal(t, 1, updated.AutoSkippedCount)
				return nil
			}).Times(1)

		// Then the turn moves on to whoever is next.
		m.mockStandupRepo.EXPECT().
			ListByChannelAndDay(int64(1), testDay).
			Return([]*entity.Standup{
				{ID: 11, ChannelID: 1, QueueOrder: 2, State: entity.StateIdle},
			}, nil).Times(1)
		m.mockStandupRepo.EXPECT().
			Update(gomock.Any()).
			DoAndReturn(func(updated *entity.Standup) error {
				require.Equal(t, int64(11), updated.ID)
				require.Equal(t, entity.StateActive, updated.State)
				return nil
			}).Times(1)

		s.autoSkipSweep(context.Background(), &entity.Setting{AutoSkipTimeout: 10}, testNow)
	})
}

func Test_scheduler_StartStop(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	s := newTestScheduler(m)

	s.Start()
	assert.True(t, s.running)

	// Second start is a no-op.
	s.Start()

	s.Stop()
	assert.False(t, s.running)
}
