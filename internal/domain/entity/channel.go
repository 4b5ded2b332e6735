package entity

import "time"

type Channel struct {
	ID               int64     `db:"id"`
	SlackChannelID   string    `db:"slack_channel_id"`
	SlackChannelName string    `db:"slack_channel_name"`
	SlackTeamID      string    `db:"slack_team_id"`
	IsActive         bool      `db:"is_active"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}
