package database

import (
	"testing"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dm := NewInstance(db)

	channel := createTestChannel(t, dm)

	user := &entity.User{
		ChannelID:     channel.ID,
		SlackUserID:   "U111",
		SlackUserName: "alice",
		FullName:      "Alice Doe",
		IsAdmin:       true,
		IsActive:      true,
	}
	require.NoError(t, dm.User().Create(user))
	require.NotZero(t, user.ID)

	got, err := dm.User().GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.SlackUserName)
	assert.Equal(t, "Alice Doe", got.FullName)
	assert.True(t, got.IsAdmin)

	bySlack, err := dm.User().GetBySlackID("U111")
	require.NoError(t, err)
	require.NotNil(t, bySlack)
	assert.Equal(t, user.ID, bySlack.ID)

	missing, err := dm.User().GetBySlackID("U999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_GetActiveUsersByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dm := NewInstance(db)

	channel := createTestChannel(t, dm)
	active := createTestUser(t, dm, channel.ID, "U111")

	inactive := &entity.User{
		ChannelID:   channel.ID,
		SlackUserID: "U222",
		IsActive:    false,
	}
	require.NoError(t, dm.User().Create(inactive))

	users, err := dm.User().GetActiveUsersByChannel(channel.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, active.ID, users[0].ID)
}

func TestUserRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)
	dm := NewInstance(db)

	channel := createTestChannel(t, dm)
	user := createTestUser(t, dm, channel.ID, "U111")

	require.NoError(t, dm.User().Delete(user.ID))

	got, err := dm.User().GetByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
