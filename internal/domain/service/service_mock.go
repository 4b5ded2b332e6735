package service

import (
	"testing"

	"github.com/diegoclair/slack-standup-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockChannelRepo *mocks.MockChannelRepo
	mockUserRepo    *mocks.MockUserRepo
	mockStandupRepo *mocks.MockStandupRepo
	mockSettingRepo *mocks.MockSettingRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	standupRepo := mocks.NewMockStandupRepo(ctrl)
	dm.EXPECT().Standup().Return(standupRepo).AnyTimes()

	settingRepo := mocks.NewMockSettingRepo(ctrl)
	dm.EXPECT().Setting().Return(settingRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockChannelRepo: channelRepo,
		mockUserRepo:    userRepo,
		mockStandupRepo: standupRepo,
		mockSettingRepo: settingRepo,
		mockSlackClient: slackClient,
	}

	// validate service creation
	standupService := newStandup(dm, slackClient)
	require.NotNil(t, standupService)

	return
}
