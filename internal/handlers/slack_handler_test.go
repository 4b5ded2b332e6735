package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/diegoclair/slack-standup-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestSlackHandler_HandleSlashCommand_Skip(t *testing.T) {
	type args struct {
		command   string
		text      string
		channelID string
		userID    string
		teamID    string
	}

	defaultArgs := args{
		command:   "/standup",
		text:      "skip <@U123456789|testuser>",
		channelID: "C123456789",
		userID:    "U987654321",
		teamID:    "T123456789",
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should skip the user and announce who is next",
			args: defaultArgs,
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.channelID}
				caller := &entity.User{ID: 2, IsAdmin: true}
				target := &entity.User{ID: 5, SlackUserID: "U123456789"}

				m.ChannelRepoMock.EXPECT().
					GetBySlackID(args.channelID).
					Return(channel, nil).Times(1)
				m.UserRepoMock.EXPECT().
					GetByChannelAndSlackID(int64(1), args.userID).
					Return(caller, nil).Times(1)
				m.UserRepoMock.EXPECT().
					GetByChannelAndSlackID(int64(1), "U123456789").
					Return(target, nil).Times(1)

				m.StandupServiceMock.EXPECT().
					CurrentStandup(gomock.Any(), int64(5), int64(1)).
					Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 5, State: entity.StateActive}, nil).Times(1)
				m.StandupServiceMock.EXPECT().
					Skip(gomock.Any(), caller, int64(10)).
					Return(nil).Times(1)
				m.StandupServiceMock.EXPECT().
					ActivateNext(gomock.Any(), int64(1)).
					Return(&entity.Standup{ID: 11, ChannelID: 1, UserID: 6, State: entity.StateActive}, nil).Times(1)
				m.UserRepoMock.EXPECT().
					GetByID(int64(6)).
					Return(&entity.User{ID: 6, SlackUserID: "U666"}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "<@U666>, you are up!")
			},
		},
		{
			name: "Should announce the skip when nobody else is waiting to be activated",
			args: defaultArgs,
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.channelID}
				caller := &entity.User{ID: 2, IsAdmin: true}
				target := &entity.User{ID: 5, SlackUserID: "U123456789"}

				m.ChannelRepoMock.EXPECT().GetBySlackID(args.channelID).Return(channel, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), args.userID).Return(caller, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U123456789").Return(target, nil).Times(1)

				m.StandupServiceMock.EXPECT().
					CurrentStandup(gomock.Any(), int64(5), int64(1)).
					Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 5, State: entity.StateActive}, nil).Times(1)
				m.StandupServiceMock.EXPECT().
					Skip(gomock.Any(), caller, int64(10)).
					Return(nil).Times(1)
				m.StandupServiceMock.EXPECT().
					ActivateNext(gomock.Any(), int64(1)).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "<@U123456789> was skipped")
			},
		},
		{
			name: "Should render the catalog message when the caller is not an admin",
			args: defaultArgs,
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.channelID}
				caller := &entity.User{ID: 2, IsAdmin: false}
				target := &entity.User{ID: 5, SlackUserID: "U123456789"}

				m.ChannelRepoMock.EXPECT().GetBySlackID(args.channelID).Return(channel, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), args.userID).Return(caller, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U123456789").Return(target, nil).Times(1)

				m.StandupServiceMock.EXPECT().
					CurrentStandup(gomock.Any(), int64(5), int64(1)).
					Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 5, State: entity.StateActive}, nil).Times(1)
				m.StandupServiceMock.EXPECT().
					Skip(gomock.Any(), caller, int64(10)).
					Return(domain.ErrSkipNotAllowed).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "only admins can skip users")
			},
		},
		{
			name: "Should render the catalog message when the target is answering",
			args: defaultArgs,
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.channelID}
				caller := &entity.User{ID: 2, IsAdmin: true}
				target := &entity.User{ID: 5, SlackUserID: "U123456789"}

				m.ChannelRepoMock.EXPECT().GetBySlackID(args.channelID).Return(channel, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), args.userID).Return(caller, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U123456789").Return(target, nil).Times(1)

				m.StandupServiceMock.EXPECT().
					CurrentStandup(gomock.Any(), int64(5), int64(1)).
					Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 5, State: entity.StateAnswering}, nil).Times(1)
				m.StandupServiceMock.EXPECT().
					Skip(gomock.Any(), caller, int64(10)).
					Return(domain.ErrSkipOtherAnswering).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "<@U123456789> is answering right now")
			},
		},
		{
			name: "Should ask for a mention when none was given",
			args: args{
				command:   "/standup",
				text:      "skip",
				channelID: "C123456789",
				userID:    "U987654321",
				teamID:    "T123456789",
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Please mention the user")
			},
		},
		{
			name: "Should reject a caller who is not a member",
			args: defaultArgs,
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.channelID}

				m.ChannelRepoMock.EXPECT().GetBySlackID(args.channelID).Return(channel, nil).Times(1)
				m.UserRepoMock.EXPECT().
					GetByChannelAndSlackID(int64(1), args.userID).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "not a member of this standup")
			},
		},
		{
			name: "Should report when the target has no standup today",
			args: defaultArgs,
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				channel := &entity.Channel{ID: 1, SlackChannelID: args.channelID}
				caller := &entity.User{ID: 2, IsAdmin: true}
				target := &entity.User{ID: 5, SlackUserID: "U123456789"}

				m.ChannelRepoMock.EXPECT().GetBySlackID(args.channelID).Return(channel, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), args.userID).Return(caller, nil).Times(1)
				m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U123456789").Return(target, nil).Times(1)

				m.StandupServiceMock.EXPECT().
					CurrentStandup(gomock.Any(), int64(5), int64(1)).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, resp.Code)
				response := decodeMsg(t, resp)

				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "no standup today")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			req := test.CreateSlackRequest(t, tt.args.command, tt.args.text,
				tt.args.channelID, "test-channel", tt.args.userID, tt.args.teamID, test.SigningSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Status(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123456789"}
	m.ChannelRepoMock.EXPECT().GetBySlackID("C123456789").Return(channel, nil).Times(1)

	m.StandupServiceMock.EXPECT().
		TodayStandups(gomock.Any(), int64(1)).
		Return([]*entity.Standup{
			{ID: 10, UserID: 5, State: entity.StateDone, Yesterday: "a", Today: "b", Conflicts: "c"},
			{ID: 11, UserID: 6, State: entity.StateActive},
			{ID: 12, UserID: 7, State: entity.StateAnswering, Yesterday: "a"},
		}, nil).Times(1)

	m.UserRepoMock.EXPECT().GetByID(int64(5)).Return(&entity.User{ID: 5, SlackUserID: "U555"}, nil).Times(1)
	m.UserRepoMock.EXPECT().GetByID(int64(6)).Return(&entity.User{ID: 6, SlackUserID: "U666"}, nil).Times(1)
	m.UserRepoMock.EXPECT().GetByID(int64(7)).Return(&entity.User{ID: 7, SlackUserID: "U777"}, nil).Times(1)

	req := test.CreateSlackRequest(t, "/standup", "status",
		"C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	response := decodeMsg(t, resp)

	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "<@U555> already finished today's standup")
	assert.Contains(t, response.Text, "<@U666> is up next")
	assert.Contains(t, response.Text, "<@U777> is telling us what they will do today")
}

func TestSlackHandler_HandleSlashCommand_Delete(t *testing.T) {
	t.Run("Should clear the requested answer", func(t *testing.T) {
		m, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		channel := &entity.Channel{ID: 1, SlackChannelID: "C123456789"}
		caller := &entity.User{ID: 2, SlackUserID: "U987654321"}

		m.ChannelRepoMock.EXPECT().GetBySlackID("C123456789").Return(channel, nil).Times(1)
		m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U987654321").Return(caller, nil).Times(1)
		m.StandupServiceMock.EXPECT().
			CurrentStandup(gomock.Any(), int64(2), int64(1)).
			Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 2, State: entity.StateDone}, nil).Times(1)
		m.StandupServiceMock.EXPECT().
			DeleteAnswer(gomock.Any(), int64(10), 2).
			Return(nil).Times(1)

		req := test.CreateSlackRequest(t, "/standup", "delete 2",
			"C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		response := decodeMsg(t, resp)
		assert.Contains(t, response.Text, "Answer 2 cleared")
	})

	t.Run("Should reject a non-numeric answer number", func(t *testing.T) {
		_, handler, ctrl := test.GetHandlerTest(t)
		defer ctrl.Finish()

		req := test.CreateSlackRequest(t, "/standup", "delete two",
			"C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)
		resp := test.CreateTestRecorder()

		handler.HandleSlashCommand(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		response := decodeMsg(t, resp)
		assert.Contains(t, response.Text, "must be 1, 2 or 3")
	})
}

func TestSlackHandler_HandleSlashCommand_Vacation(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123456789"}
	caller := &entity.User{ID: 2, SlackUserID: "U987654321"}

	m.ChannelRepoMock.EXPECT().GetBySlackID("C123456789").Return(channel, nil).Times(1)
	m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U987654321").Return(caller, nil).Times(1)
	m.StandupServiceMock.EXPECT().
		CurrentStandup(gomock.Any(), int64(2), int64(1)).
		Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 2, State: entity.StateIdle}, nil).Times(1)
	m.StandupServiceMock.EXPECT().
		MarkVacation(gomock.Any(), int64(10), "beach week").
		Return(nil).Times(1)
	m.StandupServiceMock.EXPECT().
		ActivateNext(gomock.Any(), int64(1)).
		Return(nil, nil).Times(1)

	req := test.CreateSlackRequest(t, "/standup", "vacation beach week",
		"C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	response := decodeMsg(t, resp)
	assert.Contains(t, response.Text, "Noted, see you tomorrow!")
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/standup", "dance",
		"C123456789", "test-channel", "U987654321", "T123456789", test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	response := decodeMsg(t, resp)
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	assert.Contains(t, response.Text, "unknown command")
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/standup", "status",
		"C123456789", "test-channel", "U987654321", "T123456789", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestSlackHandler_HandleEvents_URLVerification(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	payload := `{"type":"url_verification","challenge":"challenge-token"}`
	req := test.CreateSlackEventRequest(t, payload, test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleEvents(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "challenge-token", resp.Body.String())
}

func TestSlackHandler_HandleEvents_Message(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123456789"}
	user := &entity.User{ID: 2, SlackUserID: "U111"}

	m.ChannelRepoMock.EXPECT().GetBySlackID("C123456789").Return(channel, nil).Times(1)
	m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U111").Return(user, nil).Times(1)

	m.StandupServiceMock.EXPECT().
		CurrentStandup(gomock.Any(), int64(2), int64(1)).
		Return(&entity.Standup{ID: 10, ChannelID: 1, UserID: 2, State: entity.StateActive}, nil).Times(1)

	// First message of the turn moves the standup into answering.
	m.StandupServiceMock.EXPECT().
		StartAnswering(gomock.Any(), int64(10)).
		Return(nil).Times(1)
	m.StandupServiceMock.EXPECT().
		ProcessAnswer(gomock.Any(), int64(10), "fixed the importer").
		Return(&entity.Standup{
			ID: 10, ChannelID: 1, UserID: 2,
			State: entity.StateAnswering, Yesterday: "fixed the importer",
		}, nil).Times(1)

	// The bot asks the second question next.
	m.SlackClientMock.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("", "", nil).Times(1)

	payload := `{
		"type": "event_callback",
		"event": {
			"type": "message",
			"channel": "C123456789",
			"user": "U111",
			"text": "fixed the importer",
			"ts": "1704189600.000100"
		}
	}`
	req := test.CreateSlackEventRequest(t, payload, test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleEvents(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
}

func TestSlackHandler_HandleEvents_CompletedStandup(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	channel := &entity.Channel{ID: 1, SlackChannelID: "C123456789"}
	user := &entity.User{ID: 2, SlackUserID: "U111"}

	m.ChannelRepoMock.EXPECT().GetBySlackID("C123456789").Return(channel, nil).Times(1)
	m.UserRepoMock.EXPECT().GetByChannelAndSlackID(int64(1), "U111").Return(user, nil).Times(1)

	m.StandupServiceMock.EXPECT().
		CurrentStandup(gomock.Any(), int64(2), int64(1)).
		Return(&entity.Standup{
			ID: 10, ChannelID: 1, UserID: 2,
			State: entity.StateAnswering, Yesterday: "a", Today: "b",
		}, nil).Times(1)
	m.StandupServiceMock.EXPECT().
		ProcessAnswer(gomock.Any(), int64(10), "no blockers").
		Return(&entity.Standup{
			ID: 10, ChannelID: 1, UserID: 2,
			State: entity.StateDone, Yesterday: "a", Today: "b", Conflicts: "no blockers",
		}, nil).Times(1)

	// Thanks message, then the next user is activated.
	m.SlackClientMock.EXPECT().
		PostMessage("C123456789", gomock.Any()).
		Return("", "", nil).Times(1)
	m.StandupServiceMock.EXPECT().
		ActivateNext(gomock.Any(), int64(1)).
		Return(nil, nil).Times(1)

	payload := `{
		"type": "event_callback",
		"event": {
			"type": "message",
			"channel": "C123456789",
			"user": "U111",
			"text": "no blockers",
			"ts": "1704189600.000200"
		}
	}`
	req := test.CreateSlackEventRequest(t, payload, test.SigningSecret)
	resp := test.CreateTestRecorder()

	handler.HandleEvents(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
}
