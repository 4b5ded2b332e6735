package entity

import "time"

type User struct {
	ID            int64     `db:"id"`
	ChannelID     int64     `db:"channel_id"`
	SlackUserID   string    `db:"slack_user_id"`
	SlackUserName string    `db:"slack_user_name"`
	FullName      string    `db:"full_name"`
	IsAdmin       bool      `db:"is_admin"`
	IsBot         bool      `db:"is_bot"`
	IsActive      bool      `db:"is_active"`
	JoinedAt      time.Time `db:"joined_at"`
}
